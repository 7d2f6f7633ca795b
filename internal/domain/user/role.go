package user

import (
	"strings"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// Role 用户角色
type Role string

const (
	// RoleUser 普通用户
	RoleUser Role = "USER"

	// RoleAdmin 管理员
	RoleAdmin Role = "ADMIN"
)

// ParseRole 解析角色字符串（不区分大小写）
// "admin"、"Admin"、"ADMIN"均解析为RoleAdmin
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoleUser):
		return RoleUser, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	default:
		return "", apperrors.ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
