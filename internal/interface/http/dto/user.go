package dto

// RegisterRequest HTTP层注册请求
// 说明:binding tag只做格式初筛,密码强度规则由领域服务校验
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"passw0rd"`
}

// LoginRequest HTTP层登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"passw0rd"`
}

// UpdateRoleRequest 角色变更请求(管理员专用)
// 角色不区分大小写,合法值由领域层校验(USER/ADMIN)
type UpdateRoleRequest struct {
	Email string `json:"email" binding:"required,email" example:"bob@example.com"`
	Role  string `json:"role" binding:"required" example:"ADMIN"`
}

// UserResponse 用户响应(不包含密码)
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserInfo 登录响应中的用户信息
type UserInfo struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"` // Access Token过期时间(秒)
}
