package dto

// ValidateCardRequest 信用卡信息校验请求
// 纯格式校验,不触达真实支付网关
type ValidateCardRequest struct {
	CardNumber  string `json:"card_number" binding:"required" example:"4111111111111111"`
	CVV         string `json:"cvv" binding:"required" example:"123"`
	HolderName  string `json:"holder_name" binding:"required" example:"ALICE W"`
	ExpiryMonth int    `json:"expiry_month" binding:"required" example:"12"`
	ExpiryYear  int    `json:"expiry_year" binding:"required" example:"2028"`
}

// ValidateCardResponse 信用卡校验响应
type ValidateCardResponse struct {
	Valid bool `json:"valid"`
}
