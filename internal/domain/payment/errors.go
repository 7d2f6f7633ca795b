package payment

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 信用卡校验错误定义
// 统一使用ErrCodeInvalidCardDetails错误码,Message携带具体原因
var (
	// ErrInvalidCardNumber 卡号必须是16位数字
	ErrInvalidCardNumber = apperrors.New(apperrors.ErrCodeInvalidCardDetails, "卡号必须是16位数字")

	// ErrInvalidCVV CVV必须是3-4位数字
	ErrInvalidCVV = apperrors.New(apperrors.ErrCodeInvalidCardDetails, "CVV必须是3-4位数字")

	// ErrMissingHolderName 持卡人姓名不能为空
	ErrMissingHolderName = apperrors.New(apperrors.ErrCodeInvalidCardDetails, "持卡人姓名不能为空")

	// ErrCardExpired 卡已过期
	ErrCardExpired = apperrors.New(apperrors.ErrCodeInvalidCardDetails, "卡已过期")
)
