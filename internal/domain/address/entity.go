package address

import (
	"time"
)

// Address 收货地址实体
// DDD设计说明:
// 1. 地址从属于用户聚合(一对多),UserID标识归属
// 2. IsDefault只在创建时赋值:用户的第一个地址为默认地址,
//    后续地址均为非默认(默认地址切换不在当前范围内)
type Address struct {
	ID             uint
	UserID         uint   // 归属用户ID
	LineOne        string // 地址行1(必填)
	LineTwo        string // 地址行2
	City           string // 城市(必填,仅字母)
	State          string // 省/州(仅字母)
	PostalCode     string // 邮编(必填,字母数字)
	Country        string // 国家(必填,仅字母)
	RecipientName  string // 收件人姓名
	RecipientPhone string // 收件人电话(10位数字)
	IsDefault      bool   // 是否默认地址
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewAddress 创建地址实体(工厂方法)
// isDefault由Service根据"是否为用户首个地址"决定
func NewAddress(userID uint, input *CreateInput, isDefault bool) *Address {
	now := time.Now()
	return &Address{
		UserID:         userID,
		LineOne:        input.LineOne,
		LineTwo:        input.LineTwo,
		City:           input.City,
		State:          input.State,
		PostalCode:     input.PostalCode,
		Country:        input.Country,
		RecipientName:  input.RecipientName,
		RecipientPhone: input.RecipientPhone,
		IsDefault:      isDefault,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsOwnedBy 检查地址是否归属指定用户
// 订单创建时校验收货地址归属
func (a *Address) IsOwnedBy(userID uint) bool {
	return a.UserID == userID
}

// CreateInput 创建地址的输入参数
type CreateInput struct {
	LineOne        string
	LineTwo        string
	City           string
	State          string
	PostalCode     string
	Country        string
	RecipientName  string
	RecipientPhone string
}
