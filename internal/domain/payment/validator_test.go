package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedClock 固定时钟:2026年8月
func fixedClock() time.Time {
	return time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
}

// validCard 构造一张合法的信用卡
func validCard() *CardDetails {
	return &CardDetails{
		CardNumber:  "4111111111111111",
		CVV:         "123",
		HolderName:  "Asha Rao",
		ExpiryMonth: 12,
		ExpiryYear:  2027,
	}
}

// TestValidate_CardNumber 测试卡号必须是16位数字
func TestValidate_CardNumber(t *testing.T) {
	v := NewValidatorWithClock(fixedClock)

	cases := []struct {
		name       string
		cardNumber string
		wantErr    error
	}{
		{"合法16位卡号", "4111111111111111", nil},
		{"15位卡号", "411111111111111", ErrInvalidCardNumber},
		{"17位卡号", "41111111111111111", ErrInvalidCardNumber},
		{"含字母", "41111111111111ab", ErrInvalidCardNumber},
		{"空卡号", "", ErrInvalidCardNumber},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			card := validCard()
			card.CardNumber = tc.cardNumber
			err := v.Validate(card)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

// TestValidate_CVV 测试CVV必须是3-4位数字
func TestValidate_CVV(t *testing.T) {
	v := NewValidatorWithClock(fixedClock)

	cases := []struct {
		name    string
		cvv     string
		wantErr error
	}{
		{"3位CVV", "123", nil},
		{"4位CVV", "1234", nil},
		{"2位CVV", "12", ErrInvalidCVV},
		{"5位CVV", "12345", ErrInvalidCVV},
		{"含字母", "12a", ErrInvalidCVV},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			card := validCard()
			card.CVV = tc.cvv
			err := v.Validate(card)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

// TestValidate_Expiry 测试有效期边界:当月有效,早于当月拒绝
func TestValidate_Expiry(t *testing.T) {
	// 固定当前时间为2026年8月
	v := NewValidatorWithClock(fixedClock)

	cases := []struct {
		name    string
		month   int
		year    int
		wantErr error
	}{
		{"当月到期视为有效", 8, 2026, nil},
		{"下月到期", 9, 2026, nil},
		{"明年到期", 1, 2027, nil},
		{"上月已过期", 7, 2026, ErrCardExpired},
		{"去年已过期", 12, 2025, ErrCardExpired},
		{"月份非法_0", 0, 2027, ErrCardExpired},
		{"月份非法_13", 13, 2027, ErrCardExpired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			card := validCard()
			card.ExpiryMonth = tc.month
			card.ExpiryYear = tc.year
			err := v.Validate(card)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

// TestValidate_HolderName 测试持卡人姓名必须存在
func TestValidate_HolderName(t *testing.T) {
	v := NewValidatorWithClock(fixedClock)

	card := validCard()
	card.HolderName = "   "
	assert.ErrorIs(t, v.Validate(card), ErrMissingHolderName)
}
