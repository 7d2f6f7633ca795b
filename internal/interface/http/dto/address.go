package dto

// CreateAddressRequest 创建收货地址请求
// 说明:不加binding tag,字段级校验由领域层完成并一次性报告全部非法字段
type CreateAddressRequest struct {
	LineOne        string `json:"line_one" example:"221B Baker Street"`
	LineTwo        string `json:"line_two" example:"Flat 2"`
	City           string `json:"city" example:"Mumbai"`
	State          string `json:"state" example:"Maharashtra"`
	PostalCode     string `json:"postal_code" example:"400001"`
	Country        string `json:"country" example:"India"`
	RecipientName  string `json:"recipient_name" example:"Alice"`
	RecipientPhone string `json:"recipient_phone" example:"9876543210"`
}

// AddressResponse 地址响应
type AddressResponse struct {
	ID             uint   `json:"id"`
	LineOne        string `json:"line_one"`
	LineTwo        string `json:"line_two,omitempty"`
	City           string `json:"city"`
	State          string `json:"state,omitempty"`
	PostalCode     string `json:"postal_code"`
	Country        string `json:"country"`
	RecipientName  string `json:"recipient_name,omitempty"`
	RecipientPhone string `json:"recipient_phone,omitempty"`
	IsDefault      bool   `json:"is_default"`
}

// AddressListResponse 地址列表响应
type AddressListResponse struct {
	List  []AddressResponse `json:"list"`
	Total int               `json:"total"`
}
