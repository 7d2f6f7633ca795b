package order

import (
	"context"
	"log"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/address"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/pkg/circuitbreaker"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// Transactor 事务执行器
// 由mysql.TxManager实现;定义为接口便于单元测试注入直通实现
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher 事件发布接口(由mq.Publisher实现)
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// PlaceOrderUseCase 下单用例
// 设计说明:这是整个系统最核心的用例
// 涉及:固定顺序的业务校验、事务处理、悲观锁防超卖、事件发布
type PlaceOrderUseCase struct {
	orderRepo   order.Repository
	bookRepo    book.Repository
	addressRepo address.Repository
	tx          Transactor
	publisher   EventPublisher                 // 可为nil(未配置消息队列时)
	breaker     *circuitbreaker.CircuitBreaker // 保护事件发布,可为nil
}

// NewPlaceOrderUseCase 创建下单用例
func NewPlaceOrderUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	addressRepo address.Repository,
	tx Transactor,
	publisher EventPublisher,
	breaker *circuitbreaker.CircuitBreaker,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		orderRepo:   orderRepo,
		bookRepo:    bookRepo,
		addressRepo: addressRepo,
		tx:          tx,
		publisher:   publisher,
		breaker:     breaker,
	}
}

// PlaceOrderRequest 下单请求DTO
type PlaceOrderRequest struct {
	UserID      uint   // 买家用户ID(从JWT中提取)
	BookID      uint   // 图书ID
	AddressID   uint   // 收货地址ID
	Quantity    int    // 购买数量
	PaymentMode string // 支付方式(不区分大小写)
}

// PlaceOrderResponse 下单响应DTO
type PlaceOrderResponse struct {
	OrderID     uint   `json:"order_id"`
	BookID      uint   `json:"book_id"`
	AddressID   uint   `json:"address_id"`
	Quantity    int    `json:"quantity"`
	PaymentMode string `json:"payment_mode"`
	OrderDate   string `json:"order_date"`
}

// OrderCreatedEvent 订单创建事件(发布到消息队列,供物流/通知等外部系统消费)
type OrderCreatedEvent struct {
	OrderID   uint   `json:"order_id"`
	UserID    uint   `json:"user_id"`
	BookID    uint   `json:"book_id"`
	AddressID uint   `json:"address_id"`
	Quantity  int    `json:"quantity"`
	OrderDate string `json:"order_date"`
}

// Execute 执行下单
//
// 校验按固定顺序执行,第一个失败的校验决定返回的错误:
//  1. 支付方式合法(不区分大小写)
//  2. 购买数量 >= 1
//  3. 库存充足(数量 <= 当前库存)
//  4. 收货地址归属当前用户
//
// 库存校验与扣减在同一事务中,并用SELECT FOR UPDATE锁定图书行:
// 两个并发请求不可能都读到同一库存值后各自扣减导致超卖
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, req PlaceOrderRequest) (*PlaceOrderResponse, error) {
	start := time.Now()

	result, err := uc.place(ctx, req)

	metrics.ObserveHistogram(metrics.OrderPlacementDuration, time.Since(start).Seconds())
	if err != nil {
		metrics.IncCounter(metrics.OrdersFailedTotal)
		return nil, err
	}
	metrics.IncCounter(metrics.OrdersPlacedTotal)

	// 事件发布是尽力而为:失败只记日志,不回滚订单
	uc.publishOrderCreated(ctx, result)

	return &PlaceOrderResponse{
		OrderID:     result.ID,
		BookID:      result.BookID,
		AddressID:   result.AddressID,
		Quantity:    result.Quantity,
		PaymentMode: result.PaymentMode.String(),
		OrderDate:   result.OrderDate.Format("2006-01-02 15:04:05"),
	}, nil
}

func (uc *PlaceOrderUseCase) place(ctx context.Context, req PlaceOrderRequest) (*order.Order, error) {
	// 1. 支付方式校验
	mode, err := order.ParsePaymentMode(req.PaymentMode)
	if err != nil {
		return nil, err
	}

	// 2. 数量下限校验
	if req.Quantity < 1 {
		return nil, order.ErrQuantityLessThanOne
	}

	var result *order.Order
	err = uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		// 3. 锁定图书行后校验库存
		// LockByID执行:SELECT * FROM books WHERE id = ? FOR UPDATE
		// 必须在锁定后检查,否则并发扣减会超卖
		b, err := uc.bookRepo.LockByID(txCtx, req.BookID)
		if err != nil {
			return err
		}
		if req.Quantity > b.BooksCount {
			return book.ErrInsufficientStock
		}

		// 4. 地址归属校验
		addr, err := uc.addressRepo.FindByID(txCtx, req.AddressID)
		if err != nil {
			return err
		}
		if !addr.IsOwnedBy(req.UserID) {
			return order.ErrAddressNotOwned
		}

		// 5. 创建订单 + 扣减库存(同一事务,失败全部回滚)
		newOrder := order.NewOrder(req.UserID, req.BookID, req.AddressID, req.Quantity, mode)
		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}
		if err := uc.bookRepo.UpdateStock(txCtx, req.BookID, -req.Quantity); err != nil {
			return err
		}

		result = newOrder
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// publishOrderCreated 发布order.created事件(经熔断器保护)
// 消息队列不可用时熔断器快速失败,下单路径不被拖慢
func (uc *PlaceOrderUseCase) publishOrderCreated(ctx context.Context, o *order.Order) {
	if uc.publisher == nil {
		return
	}

	event := OrderCreatedEvent{
		OrderID:   o.ID,
		UserID:    o.UserID,
		BookID:    o.BookID,
		AddressID: o.AddressID,
		Quantity:  o.Quantity,
		OrderDate: o.OrderDate.Format("2006-01-02 15:04:05"),
	}

	publish := func() error {
		return uc.publisher.Publish(ctx, "order.created", event)
	}

	var err error
	if uc.breaker != nil {
		err = uc.breaker.Execute(publish)
	} else {
		err = publish()
	}

	labels := map[string]string{"routing_key": "order.created", "result": "success"}
	if err != nil {
		if err == circuitbreaker.ErrOpenState {
			labels["result"] = "rejected"
		} else {
			labels["result"] = "failure"
		}
		log.Printf("发布order.created事件失败: order_id=%d err=%v", o.ID, err)
	}
	metrics.IncCounterVec(metrics.MessagesPublishedTotal, labels)
}
