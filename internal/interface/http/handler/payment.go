package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshop/internal/domain/payment"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// PaymentHandler 支付HTTP处理器
// 当前只提供信用卡字段校验,不触达真实支付网关
type PaymentHandler struct {
	validator *payment.Validator
}

// NewPaymentHandler 创建支付处理器
func NewPaymentHandler(validator *payment.Validator) *PaymentHandler {
	return &PaymentHandler{validator: validator}
}

// ValidateCard 信用卡信息校验
// @Summary      校验信用卡信息
// @Description  校验卡号(16位数字)、CVV(3-4位数字)、持卡人姓名、有效期(当月到期视为有效)
// @Tags         支付
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.ValidateCardRequest true "信用卡信息"
// @Success      200 {object} response.Response{data=dto.ValidateCardResponse} "校验通过"
// @Failure      400 {object} response.Response "信用卡信息非法"
// @Router       /api/v1/payments/validate-card [post]
func (h *PaymentHandler) ValidateCard(c *gin.Context) {
	var req dto.ValidateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	err := h.validator.Validate(&payment.CardDetails{
		CardNumber:  req.CardNumber,
		CVV:         req.CVV,
		HolderName:  req.HolderName,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.ValidateCardResponse{Valid: true})
}
