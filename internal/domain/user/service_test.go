package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// fakeRepo 内存仓储实现（单元测试用）
type fakeRepo struct {
	nextID uint
	users  map[uint]*User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, users: make(map[uint]*User)}
}

func (r *fakeRepo) Create(ctx context.Context, u *User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return apperrors.ErrEmailDuplicate
		}
	}
	u.ID = r.nextID
	r.nextID++
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeRepo) FindByID(ctx context.Context, id uint) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeRepo) Update(ctx context.Context, u *User) error {
	if _, ok := r.users[u.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

// TestRegister 测试用户注册
func TestRegister(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	t.Run("正常注册", func(t *testing.T) {
		u, err := svc.Register(ctx, "alice@example.com", "password123")
		require.NoError(t, err)

		assert.NotZero(t, u.ID)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.Equal(t, RoleUser, u.Role, "新用户默认为普通用户")
		assert.NotEqual(t, "password123", u.Password, "密码必须加密存储")

		// 注册后可以用原密码登录
		logged, err := svc.Login(ctx, "alice@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, u.ID, logged.ID)
	})

	t.Run("邮箱格式非法", func(t *testing.T) {
		_, err := svc.Register(ctx, "not-an-email", "password123")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.GetAppError(err).Code)
	})

	t.Run("密码强度不足", func(t *testing.T) {
		// 太短
		_, err := svc.Register(ctx, "bob@example.com", "ab1")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)

		// 只有字母
		_, err = svc.Register(ctx, "bob@example.com", "abcdefgh")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)

		// 只有数字
		_, err = svc.Register(ctx, "bob@example.com", "12345678")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
	})

	t.Run("邮箱重复", func(t *testing.T) {
		_, err := svc.Register(ctx, "dup@example.com", "password123")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "dup@example.com", "password456")
		assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)
	})
}

// TestLogin 测试用户登录
func TestLogin(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "carol@example.com", "password123")
	require.NoError(t, err)

	t.Run("密码错误", func(t *testing.T) {
		_, err := svc.Login(ctx, "carol@example.com", "wrongpass1")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("用户不存在", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

// TestUpdateRole 测试角色变更（按邮箱匹配）
func TestUpdateRole(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "dave@example.com", "password123")
	require.NoError(t, err)

	t.Run("提升为管理员_角色不区分大小写", func(t *testing.T) {
		u, err := svc.UpdateRole(ctx, "dave@example.com", "admin")
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, u.Role)
		assert.True(t, u.IsAdmin())
	})

	t.Run("降级为普通用户", func(t *testing.T) {
		u, err := svc.UpdateRole(ctx, "dave@example.com", "User")
		require.NoError(t, err)
		assert.Equal(t, RoleUser, u.Role)
	})

	t.Run("角色非法", func(t *testing.T) {
		_, err := svc.UpdateRole(ctx, "dave@example.com", "SUPERUSER")
		assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
	})

	t.Run("邮箱未注册", func(t *testing.T) {
		_, err := svc.UpdateRole(ctx, "ghost@example.com", "ADMIN")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeEmailNotFound, apperrors.GetAppError(err).Code)
	})
}
