package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/address"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
)

// passthroughTx 直通事务执行器(单元测试用,不依赖数据库)
type passthroughTx struct{}

func (passthroughTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeBookRepo 内存图书仓储
type fakeBookRepo struct {
	books map[uint]*book.Book
}

func newFakeBookRepo(books ...*book.Book) *fakeBookRepo {
	r := &fakeBookRepo{books: make(map[uint]*book.Book)}
	for _, b := range books {
		r.books[b.ID] = b
	}
	return r
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) error { return nil }

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBookRepo) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}

func (r *fakeBookRepo) FindByISBN13(ctx context.Context, isbn13 string) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}

func (r *fakeBookRepo) Update(ctx context.Context, b *book.Book) error { return nil }

func (r *fakeBookRepo) ListAllByTitle(ctx context.Context) ([]*book.Book, error) { return nil, nil }

func (r *fakeBookRepo) SearchByTitle(ctx context.Context, keyword string) ([]*book.Book, error) {
	return nil, nil
}

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeBookRepo) UpdateStock(ctx context.Context, id uint, delta int) error {
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	if b.BooksCount+delta < 0 {
		return book.ErrInsufficientStock
	}
	b.BooksCount += delta
	return nil
}

// fakeAddressRepo 内存地址仓储
type fakeAddressRepo struct {
	addresses map[uint]*address.Address
}

func newFakeAddressRepo(addresses ...*address.Address) *fakeAddressRepo {
	r := &fakeAddressRepo{addresses: make(map[uint]*address.Address)}
	for _, a := range addresses {
		r.addresses[a.ID] = a
	}
	return r
}

func (r *fakeAddressRepo) Create(ctx context.Context, a *address.Address) error { return nil }

func (r *fakeAddressRepo) FindByID(ctx context.Context, id uint) (*address.Address, error) {
	a, ok := r.addresses[id]
	if !ok {
		return nil, address.ErrAddressNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *fakeAddressRepo) FindAllByUserID(ctx context.Context, userID uint) ([]*address.Address, error) {
	return nil, nil
}

// fakeOrderRepo 内存订单仓储
type fakeOrderRepo struct {
	nextID uint
	orders []*order.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{nextID: 1}
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	o.ID = r.nextID
	r.nextID++
	clone := *o
	r.orders = append(r.orders, &clone)
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			clone := *o
			return &clone, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindAll(ctx context.Context) ([]*order.Order, error) {
	return r.orders, nil
}

func (r *fakeOrderRepo) FindAllBefore(ctx context.Context, end time.Time) ([]*order.Order, error) {
	result := make([]*order.Order, 0)
	for _, o := range r.orders {
		if o.OrderDate.Before(end) {
			result = append(result, o)
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) FindAllBetween(ctx context.Context, start, end time.Time) ([]*order.Order, error) {
	result := make([]*order.Order, 0)
	for _, o := range r.orders {
		if !o.OrderDate.Before(start) && !o.OrderDate.After(end) {
			result = append(result, o)
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) FindAllByUserID(ctx context.Context, userID uint) ([]*order.Order, error) {
	result := make([]*order.Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

// fakePublisher 记录发布的事件
type fakePublisher struct {
	published []string
	failWith  error
}

func (p *fakePublisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	if p.failWith != nil {
		return p.failWith
	}
	p.published = append(p.published, routingKey)
	return nil
}

// newTestUseCase 构造下单用例及其依赖
// 图书1库存10,地址1归属用户1
func newTestUseCase(publisher EventPublisher) (*PlaceOrderUseCase, *fakeBookRepo, *fakeOrderRepo) {
	bookRepo := newFakeBookRepo(&book.Book{ID: 1, Title: "Harry Potter", BooksCount: 10})
	addrRepo := newFakeAddressRepo(
		&address.Address{ID: 1, UserID: 1},
		&address.Address{ID: 2, UserID: 2},
	)
	orderRepo := newFakeOrderRepo()
	uc := NewPlaceOrderUseCase(orderRepo, bookRepo, addrRepo, passthroughTx{}, publisher, nil)
	return uc, bookRepo, orderRepo
}

func validRequest() PlaceOrderRequest {
	return PlaceOrderRequest{
		UserID:      1,
		BookID:      1,
		AddressID:   1,
		Quantity:    3,
		PaymentMode: "CREDIT_CARD",
	}
}

// TestPlaceOrder_Success 测试正常下单:库存精确扣减,订单落库
func TestPlaceOrder_Success(t *testing.T) {
	pub := &fakePublisher{}
	uc, bookRepo, orderRepo := newTestUseCase(pub)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotZero(t, resp.OrderID)
	assert.Equal(t, 3, resp.Quantity)
	assert.Equal(t, "CREDIT_CARD", resp.PaymentMode)
	assert.Equal(t, 7, bookRepo.books[1].BooksCount, "库存应扣减购买数量(10-3)")
	assert.Len(t, orderRepo.orders, 1)
	assert.Equal(t, []string{"order.created"}, pub.published, "成功下单应发布事件")
}

// TestPlaceOrder_PaymentModeCaseInsensitive 测试支付方式不区分大小写
func TestPlaceOrder_PaymentModeCaseInsensitive(t *testing.T) {
	uc, _, _ := newTestUseCase(nil)

	req := validRequest()
	req.PaymentMode = "cash_on_delivery"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "CASH_ON_DELIVERY", resp.PaymentMode)
}

// TestPlaceOrder_ValidationOrder 测试校验顺序:第一个失败的校验决定错误
func TestPlaceOrder_ValidationOrder(t *testing.T) {
	t.Run("支付方式非法优先于数量校验", func(t *testing.T) {
		uc, bookRepo, orderRepo := newTestUseCase(nil)

		req := validRequest()
		req.PaymentMode = "BITCOIN"
		req.Quantity = 0 // 数量同样非法,但支付方式先校验

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, order.ErrInvalidPaymentMode)
		assert.Equal(t, 10, bookRepo.books[1].BooksCount)
		assert.Empty(t, orderRepo.orders)
	})

	t.Run("数量小于1", func(t *testing.T) {
		uc, _, _ := newTestUseCase(nil)

		for _, quantity := range []int{0, -1} {
			req := validRequest()
			req.Quantity = quantity
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, order.ErrQuantityLessThanOne, "数量%d应被拒绝", quantity)
		}
	})

	t.Run("库存不足_库存不变", func(t *testing.T) {
		uc, bookRepo, orderRepo := newTestUseCase(nil)

		req := validRequest()
		req.Quantity = 11 // 库存只有10

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, book.ErrInsufficientStock)
		assert.Equal(t, 10, bookRepo.books[1].BooksCount, "下单失败库存应保持不变")
		assert.Empty(t, orderRepo.orders)
	})

	t.Run("地址不属于当前用户", func(t *testing.T) {
		uc, bookRepo, orderRepo := newTestUseCase(nil)

		req := validRequest()
		req.AddressID = 2 // 归属用户2

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, order.ErrAddressNotOwned)
		assert.Equal(t, 10, bookRepo.books[1].BooksCount)
		assert.Empty(t, orderRepo.orders)
	})

	t.Run("地址不存在", func(t *testing.T) {
		uc, _, _ := newTestUseCase(nil)

		req := validRequest()
		req.AddressID = 99

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, address.ErrAddressNotFound)
	})
}

// TestPlaceOrder_ExactStockAllowed 测试数量恰好等于库存时下单成功
func TestPlaceOrder_ExactStockAllowed(t *testing.T) {
	uc, bookRepo, _ := newTestUseCase(nil)

	req := validRequest()
	req.Quantity = 10

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, bookRepo.books[1].BooksCount, "库存可以被扣到0,但不能为负")
}

// TestPlaceOrder_PublishFailureDoesNotFailOrder 测试事件发布失败不影响下单
func TestPlaceOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	pub := &fakePublisher{failWith: errors.New("broker unavailable")}
	uc, bookRepo, orderRepo := newTestUseCase(pub)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err, "事件发布是尽力而为,失败不应影响订单")
	assert.NotZero(t, resp.OrderID)
	assert.Equal(t, 7, bookRepo.books[1].BooksCount)
	assert.Len(t, orderRepo.orders, 1)
}
