package user

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/user"
)

// UpdateRoleUseCase 角色变更用例（管理员专用）
// 路由层的RequireRole("ADMIN")守卫保证只有管理员能触达此用例，
// 用例本身不再接收操作者角色（引擎信任调用方）
type UpdateRoleUseCase struct {
	userService user.Service
}

// NewUpdateRoleUseCase 创建角色变更用例
func NewUpdateRoleUseCase(userService user.Service) *UpdateRoleUseCase {
	return &UpdateRoleUseCase{
		userService: userService,
	}
}

// Execute 执行角色变更（按邮箱匹配目标用户）
func (uc *UpdateRoleUseCase) Execute(ctx context.Context, req UpdateRoleRequest) (*UpdateRoleResponse, error) {
	u, err := uc.userService.UpdateRole(ctx, req.Email, req.Role)
	if err != nil {
		return nil, err
	}

	return &UpdateRoleResponse{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role.String(),
	}, nil
}

// UpdateRoleRequest 角色变更请求
type UpdateRoleRequest struct {
	Email string
	Role  string
}

// UpdateRoleResponse 角色变更响应
type UpdateRoleResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
