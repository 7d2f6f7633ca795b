package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// dateLayout 订单列表查询的日期格式
const dateLayout = "2006-01-02"

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	placeOrderUseCase   *apporder.PlaceOrderUseCase
	listOrdersUseCase   *apporder.ListOrdersUseCase
	listMyOrdersUseCase *apporder.ListMyOrdersUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	placeOrderUseCase *apporder.PlaceOrderUseCase,
	listOrdersUseCase *apporder.ListOrdersUseCase,
	listMyOrdersUseCase *apporder.ListMyOrdersUseCase,
) *OrderHandler {
	return &OrderHandler{
		placeOrderUseCase:   placeOrderUseCase,
		listOrdersUseCase:   listOrdersUseCase,
		listMyOrdersUseCase: listMyOrdersUseCase,
	}
}

// CreateOrder 创建订单
// @Summary      创建订单
// @Description  用户下单购买图书(需要登录),库存校验与扣减在同一事务中用悲观锁完成
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateOrderRequest true "订单信息"
// @Success      200 {object} response.Response{data=dto.CreateOrderResponse} "下单成功"
// @Failure      400 {object} response.Response "支付方式非法/数量小于1/库存不足/地址不属于当前用户"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "图书或地址不存在"
// @Router       /api/v1/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 2. 获取当前登录用户ID
	userID := middleware.MustGetUserID(c)

	// 3. 调用应用层用例
	result, err := h.placeOrderUseCase.Execute(c.Request.Context(), apporder.PlaceOrderRequest{
		UserID:      userID,
		BookID:      req.BookID,
		AddressID:   req.AddressID,
		Quantity:    req.Quantity,
		PaymentMode: req.PaymentMode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 4. 构建HTTP响应
	response.Success(c, &dto.CreateOrderResponse{
		OrderID:     result.OrderID,
		BookID:      result.BookID,
		AddressID:   result.AddressID,
		Quantity:    result.Quantity,
		PaymentMode: result.PaymentMode,
		OrderDate:   result.OrderDate,
	})
}

// ListOrders 订单列表(管理员专用)
// @Summary      订单列表
// @Description  按时间范围查询订单;不传起始/截止日期时的缺省边界见接口说明
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        start_date query string false "起始日期(YYYY-MM-DD)"
// @Param        end_date query string false "截止日期(YYYY-MM-DD)"
// @Success      200 {object} response.Response{data=dto.OrderListResponse}
// @Failure      400 {object} response.Response "日期格式错误"
// @Failure      403 {object} response.Response "非管理员"
// @Router       /api/v1/admin/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var query dto.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	var req apporder.ListOrdersRequest
	if query.StartDate != "" {
		start, err := time.ParseInLocation(dateLayout, query.StartDate, time.Local)
		if err != nil {
			response.ErrorWithCode(c, apperrors.ErrCodeBindError, "start_date格式错误,应为YYYY-MM-DD")
			return
		}
		req.StartDate = &start
	}
	if query.EndDate != "" {
		end, err := time.ParseInLocation(dateLayout, query.EndDate, time.Local)
		if err != nil {
			response.ErrorWithCode(c, apperrors.ErrCodeBindError, "end_date格式错误,应为YYYY-MM-DD")
			return
		}
		req.EndDate = &end
	}

	result, err := h.listOrdersUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toOrderListResponse(result))
}

// ListMyOrders 我的订单
// @Summary      我的订单
// @Description  查询当前用户的全部订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=dto.OrderListResponse}
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/orders [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	result, err := h.listMyOrdersUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toOrderListResponse(result))
}

// toOrderListResponse 应用层DTO → HTTP层DTO
func toOrderListResponse(result *apporder.ListOrdersResponse) *dto.OrderListResponse {
	list := make([]dto.OrderResponse, len(result.List))
	for i, o := range result.List {
		list[i] = dto.OrderResponse{
			ID:          o.ID,
			BookID:      o.BookID,
			AddressID:   o.AddressID,
			UserID:      o.UserID,
			Quantity:    o.Quantity,
			PaymentMode: o.PaymentMode,
			OrderDate:   o.OrderDate,
		}
	}
	return &dto.OrderListResponse{List: list, Total: result.Total}
}
