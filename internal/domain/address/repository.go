package address

import (
	"context"
)

// Repository 地址仓储接口
// 由domain层定义接口,infrastructure层实现(依赖倒置)
type Repository interface {
	// Create 创建地址
	Create(ctx context.Context, addr *Address) error

	// FindByID 根据ID查找地址
	// 如果不存在,返回ErrAddressNotFound
	FindByID(ctx context.Context, id uint) (*Address, error)

	// FindAllByUserID 查询用户的全部地址
	FindAllByUserID(ctx context.Context, userID uint) ([]*Address, error)
}
