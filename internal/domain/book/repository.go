package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN-10查找图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// FindByISBN13 根据ISBN-13查找图书
	FindByISBN13(ctx context.Context, isbn13 string) (*Book, error)

	// Update 更新图书信息(含库存)
	Update(ctx context.Context, book *Book) error

	// ListAllByTitle 查询全部图书,按书名排序
	ListAllByTitle(ctx context.Context) ([]*Book, error)

	// SearchByTitle 按书名模糊搜索(不区分大小写),按书名排序
	SearchByTitle(ctx context.Context, keyword string) ([]*Book, error)

	// LockByID 悲观锁查询图书(用于订单创建时锁定库存)
	// 使用SELECT FOR UPDATE锁定行,防止并发超卖
	LockByID(ctx context.Context, id uint) (*Book, error)

	// UpdateStock 更新库存(原子操作)
	// delta为正数表示增加,负数表示减少
	// 内部会检查库存是否充足,不足则返回ErrInsufficientStock
	UpdateStock(ctx context.Context, id uint, delta int) error
}
