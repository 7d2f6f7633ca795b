// Package payment 提供信用卡字段校验
//
// 业务规则(纯格式校验,不涉及真实支付网关):
//   - 卡号必须是16位数字
//   - CVV必须是3-4位数字
//   - 有效期(月/年)不能早于当前月份,当月到期视为有效
//   - 持卡人姓名仅要求非空
package payment

import (
	"regexp"
	"strings"
	"time"
)

var (
	cardNumberPattern = regexp.MustCompile(`^[0-9]{16}$`)
	cvvPattern        = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// CardDetails 信用卡信息
type CardDetails struct {
	CardNumber  string
	CVV         string
	HolderName  string
	ExpiryMonth int // 1-12
	ExpiryYear  int // 四位年份
}

// Validator 信用卡字段校验器
// 设计说明:时钟通过构造函数注入,便于测试有效期边界
type Validator struct {
	now func() time.Time
}

// NewValidator 创建校验器(使用系统时钟)
func NewValidator() *Validator {
	return &Validator{now: time.Now}
}

// NewValidatorWithClock 创建校验器(注入时钟,测试用)
func NewValidatorWithClock(now func() time.Time) *Validator {
	return &Validator{now: now}
}

// Validate 校验信用卡信息
// 返回第一个命中的错误,均为ErrCodeInvalidCardDetails错误码
func (v *Validator) Validate(card *CardDetails) error {
	if !cardNumberPattern.MatchString(card.CardNumber) {
		return ErrInvalidCardNumber
	}
	if !cvvPattern.MatchString(card.CVV) {
		return ErrInvalidCVV
	}
	if strings.TrimSpace(card.HolderName) == "" {
		return ErrMissingHolderName
	}
	if card.ExpiryMonth < 1 || card.ExpiryMonth > 12 {
		return ErrCardExpired
	}

	// 当月到期视为有效:只拒绝严格早于当前年月的有效期
	current := v.now()
	if card.ExpiryYear < current.Year() {
		return ErrCardExpired
	}
	if card.ExpiryYear == current.Year() && time.Month(card.ExpiryMonth) < current.Month() {
		return ErrCardExpired
	}

	return nil
}
