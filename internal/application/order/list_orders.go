package order

import (
	"context"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/order"
)

// ListOrdersUseCase 管理端订单列表用例
// 业务规则(时间边界缺省):
//   - 都不传: 查询当前时间之前的全部订单
//   - 只传起始: [start, now]
//   - 只传截止: 截止时间之前的全部订单
//   - 都传:   [start, end]
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建订单列表用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
	}
}

// ListOrdersRequest 订单列表请求DTO
// 日期由Handler层解析,非法日期在触达用例前已被拒绝
type ListOrdersRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// OrderItem 订单DTO
type OrderItem struct {
	ID          uint   `json:"id"`
	BookID      uint   `json:"book_id"`
	AddressID   uint   `json:"address_id"`
	UserID      uint   `json:"user_id"`
	Quantity    int    `json:"quantity"`
	PaymentMode string `json:"payment_mode"`
	OrderDate   string `json:"order_date"`
}

// ListOrdersResponse 订单列表响应DTO
type ListOrdersResponse struct {
	List  []OrderItem `json:"list"`
	Total int         `json:"total"`
}

// Execute 执行订单列表查询
func (uc *ListOrdersUseCase) Execute(ctx context.Context, req ListOrdersRequest) (*ListOrdersResponse, error) {
	var (
		orders []*order.Order
		err    error
	)

	switch {
	case req.StartDate == nil && req.EndDate == nil:
		orders, err = uc.orderRepo.FindAllBefore(ctx, time.Now())
	case req.StartDate != nil && req.EndDate == nil:
		orders, err = uc.orderRepo.FindAllBetween(ctx, *req.StartDate, time.Now())
	case req.StartDate == nil && req.EndDate != nil:
		orders, err = uc.orderRepo.FindAllBefore(ctx, *req.EndDate)
	default:
		orders, err = uc.orderRepo.FindAllBetween(ctx, *req.StartDate, *req.EndDate)
	}
	if err != nil {
		return nil, err
	}

	return toListResponse(orders), nil
}

// ListMyOrdersUseCase 用户自己的订单列表用例
type ListMyOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListMyOrdersUseCase 创建"我的订单"用例
func NewListMyOrdersUseCase(orderRepo order.Repository) *ListMyOrdersUseCase {
	return &ListMyOrdersUseCase{
		orderRepo: orderRepo,
	}
}

// Execute 查询当前用户的全部订单
func (uc *ListMyOrdersUseCase) Execute(ctx context.Context, userID uint) (*ListOrdersResponse, error) {
	orders, err := uc.orderRepo.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toListResponse(orders), nil
}

// toListResponse 领域实体列表 → 响应DTO
func toListResponse(orders []*order.Order) *ListOrdersResponse {
	list := make([]OrderItem, len(orders))
	for i, o := range orders {
		list[i] = OrderItem{
			ID:          o.ID,
			BookID:      o.BookID,
			AddressID:   o.AddressID,
			UserID:      o.UserID,
			Quantity:    o.Quantity,
			PaymentMode: o.PaymentMode.String(),
			OrderDate:   o.OrderDate.Format("2006-01-02 15:04:05"),
		}
	}
	return &ListOrdersResponse{List: list, Total: len(list)}
}
