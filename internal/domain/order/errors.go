package order

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 订单领域错误定义
// 下单校验按固定顺序执行,第一个失败的校验决定返回的错误
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.ErrOrderNotFound

	// ErrInvalidPaymentMode 支付方式非法
	ErrInvalidPaymentMode = apperrors.New(apperrors.ErrCodeInvalidPaymentMode, "支付方式非法：只支持CREDIT_CARD和CASH_ON_DELIVERY")

	// ErrQuantityLessThanOne 购买数量小于1
	ErrQuantityLessThanOne = apperrors.New(apperrors.ErrCodeQuantityLessThanOne, "购买数量不能小于1")

	// ErrAddressNotOwned 收货地址不属于当前用户
	ErrAddressNotOwned = apperrors.New(apperrors.ErrCodeAddressNotOwned, "收货地址不属于当前用户")
)
