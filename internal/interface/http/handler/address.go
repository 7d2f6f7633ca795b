package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	appaddress "github.com/xiebiao/bookshop/internal/application/address"
	"github.com/xiebiao/bookshop/internal/domain/address"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// AddressHandler 收货地址HTTP处理器
type AddressHandler struct {
	createAddressUseCase *appaddress.CreateAddressUseCase
	listAddressesUseCase *appaddress.ListAddressesUseCase
}

// NewAddressHandler 创建地址处理器
func NewAddressHandler(
	createAddressUseCase *appaddress.CreateAddressUseCase,
	listAddressesUseCase *appaddress.ListAddressesUseCase,
) *AddressHandler {
	return &AddressHandler{
		createAddressUseCase: createAddressUseCase,
		listAddressesUseCase: listAddressesUseCase,
	}
}

// CreateAddress 创建收货地址
// @Summary      创建收货地址
// @Description  为当前用户添加收货地址;首个地址自动设为默认;字段校验失败时一次性返回全部非法字段
// @Tags         地址
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAddressRequest true "地址信息"
// @Success      200 {object} response.Response{data=dto.AddressResponse} "创建成功"
// @Failure      400 {object} response.Response "字段校验失败(data携带字段→原因映射)"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/addresses [post]
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	var req dto.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	item, err := h.createAddressUseCase.Execute(c.Request.Context(), userID, appaddress.CreateAddressRequest{
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
		// 字段校验错误:data携带"字段名→原因"映射,客户端一次性展示全部错误
		var verr *address.ValidationError
		if errors.As(err, &verr) {
			response.ErrorWithData(c, verr.Code(), "地址字段校验失败", verr.Fields)
			return
		}
		response.Error(c, err)
		return
	}

	resp := toAddressResponse(*item)
	response.Success(c, &resp)
}

// ListAddresses 地址列表
// @Summary      地址列表
// @Description  查询当前用户的全部收货地址
// @Tags         地址
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=dto.AddressListResponse}
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/addresses [get]
func (h *AddressHandler) ListAddresses(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	result, err := h.listAddressesUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.AddressResponse, len(result.List))
	for i, item := range result.List {
		list[i] = toAddressResponse(item)
	}

	response.Success(c, &dto.AddressListResponse{
		List:  list,
		Total: result.Total,
	})
}

// toAddressResponse 应用层DTO → HTTP层DTO
func toAddressResponse(item appaddress.AddressItem) dto.AddressResponse {
	return dto.AddressResponse{
		ID:             item.ID,
		LineOne:        item.LineOne,
		LineTwo:        item.LineTwo,
		City:           item.City,
		State:          item.State,
		PostalCode:     item.PostalCode,
		Country:        item.Country,
		RecipientName:  item.RecipientName,
		RecipientPhone: item.RecipientPhone,
		IsDefault:      item.IsDefault,
	}
}
