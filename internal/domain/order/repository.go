package order

import (
	"context"
	"time"
)

// Repository 订单仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 支持事务操作(通过context传递事务)
// 3. 管理端按时间范围查询,返回顺序不做保证(存储自然顺序)
type Repository interface {
	// Create 创建订单
	// 必须与库存扣减在同一事务中执行
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找订单
	FindByID(ctx context.Context, id uint) (*Order, error)

	// FindAll 查询全部订单
	FindAll(ctx context.Context) ([]*Order, error)

	// FindAllBefore 查询指定时间之前的订单
	FindAllBefore(ctx context.Context, end time.Time) ([]*Order, error)

	// FindAllBetween 查询指定时间范围内的订单
	FindAllBetween(ctx context.Context, start, end time.Time) ([]*Order, error)

	// FindAllByUserID 查询用户自己的订单
	FindAllByUserID(ctx context.Context, userID uint) ([]*Order, error)
}
