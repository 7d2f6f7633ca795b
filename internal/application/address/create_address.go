package address

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/address"
)

// CreateAddressUseCase 创建收货地址用例
type CreateAddressUseCase struct {
	addressService address.Service
}

// NewCreateAddressUseCase 创建地址用例
func NewCreateAddressUseCase(addressService address.Service) *CreateAddressUseCase {
	return &CreateAddressUseCase{
		addressService: addressService,
	}
}

// Execute 执行地址创建
// 字段校验失败时返回address.ValidationError(多字段同时报告)
func (uc *CreateAddressUseCase) Execute(ctx context.Context, userID uint, req CreateAddressRequest) (*AddressItem, error) {
	addr, err := uc.addressService.CreateAddress(ctx, userID, &address.CreateInput{
		LineOne:        req.LineOne,
		LineTwo:        req.LineTwo,
		City:           req.City,
		State:          req.State,
		PostalCode:     req.PostalCode,
		Country:        req.Country,
		RecipientName:  req.RecipientName,
		RecipientPhone: req.RecipientPhone,
	})
	if err != nil {
		return nil, err
	}

	item := toAddressItem(addr)
	return &item, nil
}

// =========================================
// 应用层DTO
// =========================================

// CreateAddressRequest 创建地址请求
type CreateAddressRequest struct {
	LineOne        string
	LineTwo        string
	City           string
	State          string
	PostalCode     string
	Country        string
	RecipientName  string
	RecipientPhone string
}

// AddressItem 地址DTO
type AddressItem struct {
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

// toAddressItem 领域实体 → DTO
func toAddressItem(addr *address.Address) AddressItem {
	return AddressItem{
		ID:             addr.ID,
		LineOne:        addr.LineOne,
		LineTwo:        addr.LineTwo,
		City:           addr.City,
		State:          addr.State,
		PostalCode:     addr.PostalCode,
		Country:        addr.Country,
		RecipientName:  addr.RecipientName,
		RecipientPhone: addr.RecipientPhone,
		IsDefault:      addr.IsDefault,
	}
}
