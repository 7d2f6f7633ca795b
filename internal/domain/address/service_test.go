package address

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo 内存仓储实现(单元测试用)
type fakeRepo struct {
	nextID    uint
	addresses map[uint]*Address
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, addresses: make(map[uint]*Address)}
}

func (r *fakeRepo) Create(ctx context.Context, addr *Address) error {
	addr.ID = r.nextID
	r.nextID++
	clone := *addr
	r.addresses[addr.ID] = &clone
	return nil
}

func (r *fakeRepo) FindByID(ctx context.Context, id uint) (*Address, error) {
	addr, ok := r.addresses[id]
	if !ok {
		return nil, ErrAddressNotFound
	}
	clone := *addr
	return &clone, nil
}

func (r *fakeRepo) FindAllByUserID(ctx context.Context, userID uint) ([]*Address, error) {
	result := make([]*Address, 0)
	for _, addr := range r.addresses {
		if addr.UserID == userID {
			clone := *addr
			result = append(result, &clone)
		}
	}
	return result, nil
}

// validInput 构造一条合法地址输入
func validInput() *CreateInput {
	return &CreateInput{
		LineOne:        "42 MG Road",
		City:           "Bangalore",
		State:          "Karnataka",
		PostalCode:     "560001",
		Country:        "India",
		RecipientName:  "Asha Rao",
		RecipientPhone: "9876543210",
	}
}

// TestCreateAddress_DefaultAssignment 测试首个地址为默认,后续地址非默认
func TestCreateAddress_DefaultAssignment(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	first, err := svc.CreateAddress(ctx, 1, validInput())
	require.NoError(t, err)
	assert.True(t, first.IsDefault, "用户的第一个地址应为默认地址")

	second, err := svc.CreateAddress(ctx, 1, validInput())
	require.NoError(t, err)
	assert.False(t, second.IsDefault, "后续地址不应为默认地址")

	// 不同用户互不影响
	other, err := svc.CreateAddress(ctx, 2, validInput())
	require.NoError(t, err)
	assert.True(t, other.IsDefault, "其他用户的首个地址仍应为默认地址")
}

// TestCreateAddress_FieldValidation 测试多字段同时报告校验错误
func TestCreateAddress_FieldValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	t.Run("多个非法字段一次性报告", func(t *testing.T) {
		input := validInput()
		input.City = "12345667"
		input.Country = "123456"
		input.State = "123"

		_, err := svc.CreateAddress(ctx, 1, input)
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr), "应返回ValidationError")
		assert.Len(t, verr.Fields, 3, "应同时报告3个非法字段")
		assert.Contains(t, verr.Fields, "city")
		assert.Contains(t, verr.Fields, "country")
		assert.Contains(t, verr.Fields, "state")
	})

	t.Run("电话必须是10位数字", func(t *testing.T) {
		input := validInput()
		input.RecipientPhone = "12345"

		_, err := svc.CreateAddress(ctx, 1, input)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "recipient_phone")
	})

	t.Run("邮编允许字母数字", func(t *testing.T) {
		input := validInput()
		input.PostalCode = "SW1A1AA"

		_, err := svc.CreateAddress(ctx, 1, input)
		assert.NoError(t, err)
	})

	t.Run("必填字段为空", func(t *testing.T) {
		input := validInput()
		input.LineOne = ""
		input.City = ""

		_, err := svc.CreateAddress(ctx, 1, input)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "line_one")
		assert.Contains(t, verr.Fields, "city")
	})

	t.Run("校验失败不落库", func(t *testing.T) {
		repo := newFakeRepo()
		freshSvc := NewService(repo)

		input := validInput()
		input.City = "123"
		_, err := freshSvc.CreateAddress(ctx, 1, input)
		require.Error(t, err)
		assert.Empty(t, repo.addresses)
	})
}

// TestListAddresses 测试按用户查询地址列表
func TestListAddresses(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.CreateAddress(ctx, 1, validInput())
	require.NoError(t, err)
	_, err = svc.CreateAddress(ctx, 1, validInput())
	require.NoError(t, err)
	_, err = svc.CreateAddress(ctx, 2, validInput())
	require.NoError(t, err)

	mine, err := svc.ListAddresses(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2, "只返回归属当前用户的地址")
}
