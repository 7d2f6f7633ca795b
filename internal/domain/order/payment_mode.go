package order

import (
	"strings"
)

// PaymentMode 支付方式
type PaymentMode string

const (
	// PaymentModeCreditCard 信用卡支付
	PaymentModeCreditCard PaymentMode = "CREDIT_CARD"

	// PaymentModeCashOnDelivery 货到付款
	PaymentModeCashOnDelivery PaymentMode = "CASH_ON_DELIVERY"
)

// ParsePaymentMode 解析支付方式(不区分大小写)
// "credit_card"、"Credit_Card"均解析为PaymentModeCreditCard
func ParsePaymentMode(s string) (PaymentMode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(PaymentModeCreditCard):
		return PaymentModeCreditCard, nil
	case string(PaymentModeCashOnDelivery):
		return PaymentModeCashOnDelivery, nil
	default:
		return "", ErrInvalidPaymentMode
	}
}

func (m PaymentMode) String() string {
	return string(m)
}
