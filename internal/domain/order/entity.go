package order

import (
	"time"
)

// Order 订单实体(聚合根)
// DDD设计说明:
// 1. 一个订单对应一本图书的一次购买(数量可大于1)
// 2. 不直接关联Book/Address对象,只保存ID(避免跨聚合引用)
// 3. 订单创建后不再变更(当前范围内没有取消/退款流程)
type Order struct {
	ID          uint
	Quantity    int         // 购买数量(>=1)
	PaymentMode PaymentMode // 支付方式
	OrderDate   time.Time   // 下单时间(创建时赋值)
	UserID      uint        // 买家用户ID
	AddressID   uint        // 收货地址ID(必须归属买家)
	BookID      uint        // 图书ID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewOrder 创建新订单(工厂方法)
// 前置条件:支付方式、数量、库存、地址归属已由下单用例校验
func NewOrder(userID, bookID, addressID uint, quantity int, mode PaymentMode) *Order {
	now := time.Now()
	return &Order{
		Quantity:    quantity,
		PaymentMode: mode,
		OrderDate:   now,
		UserID:      userID,
		AddressID:   addressID,
		BookID:      bookID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsOwnedBy 检查订单是否属于指定用户
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}
