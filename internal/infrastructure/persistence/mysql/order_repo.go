package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// orderRepository 订单仓储实现(MySQL)
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建订单
// 下单用例在TxManager.Transaction内调用,与库存扣减同一事务
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := &OrderModel{
		Quantity:    o.Quantity,
		PaymentMode: o.PaymentMode.String(),
		OrderDate:   o.OrderDate,
		UserID:      o.UserID,
		AddressID:   o.AddressID,
		BookID:      o.BookID,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建订单失败")
	}

	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	o.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找订单
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}

	return toOrderEntity(&model), nil
}

// FindAll 查询全部订单
func (r *orderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	return r.findMany(ctx, getDB(ctx, r.db))
}

// FindAllBefore 查询order_date早于end的订单
func (r *orderRepository) FindAllBefore(ctx context.Context, end time.Time) ([]*order.Order, error) {
	return r.findMany(ctx, getDB(ctx, r.db).Where("order_date < ?", end))
}

// FindAllBetween 查询order_date在[start, end]范围内的订单
func (r *orderRepository) FindAllBetween(ctx context.Context, start, end time.Time) ([]*order.Order, error) {
	return r.findMany(ctx, getDB(ctx, r.db).Where("order_date BETWEEN ? AND ?", start, end))
}

// FindAllByUserID 查询用户自己的订单
func (r *orderRepository) FindAllByUserID(ctx context.Context, userID uint) ([]*order.Order, error) {
	return r.findMany(ctx, getDB(ctx, r.db).Where("user_id = ?", userID))
}

func (r *orderRepository) findMany(_ context.Context, db *gorm.DB) ([]*order.Order, error) {
	var models []OrderModel
	if err := db.Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询订单列表失败")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}
	return orders, nil
}

// toOrderEntity GORM模型 → 领域实体
func toOrderEntity(model *OrderModel) *order.Order {
	return &order.Order{
		ID:          model.ID,
		Quantity:    model.Quantity,
		PaymentMode: order.PaymentMode(model.PaymentMode),
		OrderDate:   model.OrderDate,
		UserID:      model.UserID,
		AddressID:   model.AddressID,
		BookID:      model.BookID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
