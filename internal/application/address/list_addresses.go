package address

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/address"
)

// ListAddressesUseCase 地址列表查询用例
type ListAddressesUseCase struct {
	addressService address.Service
}

// NewListAddressesUseCase 创建地址列表用例
func NewListAddressesUseCase(addressService address.Service) *ListAddressesUseCase {
	return &ListAddressesUseCase{
		addressService: addressService,
	}
}

// ListAddressesResponse 地址列表响应DTO
type ListAddressesResponse struct {
	List  []AddressItem `json:"list"`
	Total int           `json:"total"`
}

// Execute 查询当前用户的全部地址
func (uc *ListAddressesUseCase) Execute(ctx context.Context, userID uint) (*ListAddressesResponse, error) {
	addresses, err := uc.addressService.ListAddresses(ctx, userID)
	if err != nil {
		return nil, err
	}

	list := make([]AddressItem, len(addresses))
	for i, addr := range addresses {
		list[i] = toAddressItem(addr)
	}

	return &ListAddressesResponse{
		List:  list,
		Total: len(list),
	}, nil
}
