package dto

// CreateOrderRequest 下单请求
// 支付方式不区分大小写(cod/Cod/COD等价);数量下限由用例校验以保证错误码语义
type CreateOrderRequest struct {
	BookID      uint   `json:"book_id" binding:"required" example:"1"`
	AddressID   uint   `json:"address_id" binding:"required" example:"1"`
	Quantity    int    `json:"quantity" binding:"required" example:"2"`
	PaymentMode string `json:"payment_mode" binding:"required" example:"COD"`
}

// CreateOrderResponse 下单响应
type CreateOrderResponse struct {
	OrderID     uint   `json:"order_id"`
	BookID      uint   `json:"book_id"`
	AddressID   uint   `json:"address_id"`
	Quantity    int    `json:"quantity"`
	PaymentMode string `json:"payment_mode"`
	OrderDate   string `json:"order_date"`
}

// ListOrdersQuery 管理端订单列表查询参数
// 日期格式:YYYY-MM-DD;缺省边界语义见订单列表用例
type ListOrdersQuery struct {
	StartDate string `form:"start_date" example:"2026-01-01"`
	EndDate   string `form:"end_date" example:"2026-06-30"`
}

// OrderResponse 订单响应
type OrderResponse struct {
	ID          uint   `json:"id"`
	BookID      uint   `json:"book_id"`
	AddressID   uint   `json:"address_id"`
	UserID      uint   `json:"user_id"`
	Quantity    int    `json:"quantity"`
	PaymentMode string `json:"payment_mode"`
	OrderDate   string `json:"order_date"`
}

// OrderListResponse 订单列表响应
type OrderListResponse struct {
	List  []OrderResponse `json:"list"`
	Total int             `json:"total"`
}
