package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/address"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// addressRepository 地址仓储实现(MySQL)
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository 创建地址仓储
func NewAddressRepository(db *gorm.DB) address.Repository {
	return &addressRepository{db: db}
}

// Create 创建地址
func (r *addressRepository) Create(ctx context.Context, addr *address.Address) error {
	model := &AddressModel{
		UserID:         addr.UserID,
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

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建地址失败")
	}

	addr.ID = model.ID
	addr.CreatedAt = model.CreatedAt
	addr.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找地址
func (r *addressRepository) FindByID(ctx context.Context, id uint) (*address.Address, error) {
	var model AddressModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, address.ErrAddressNotFound
		}
		return nil, apperrors.Wrap(err, "查询地址失败")
	}

	return toAddressEntity(&model), nil
}

// FindAllByUserID 查询用户的全部地址
func (r *addressRepository) FindAllByUserID(ctx context.Context, userID uint) ([]*address.Address, error) {
	var models []AddressModel
	err := getDB(ctx, r.db).Where("user_id = ?", userID).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询地址列表失败")
	}

	addresses := make([]*address.Address, len(models))
	for i := range models {
		addresses[i] = toAddressEntity(&models[i])
	}
	return addresses, nil
}

// toAddressEntity GORM模型 → 领域实体
func toAddressEntity(model *AddressModel) *address.Address {
	return &address.Address{
		ID:             model.ID,
		UserID:         model.UserID,
		LineOne:        model.LineOne,
		LineTwo:        model.LineTwo,
		City:           model.City,
		State:          model.State,
		PostalCode:     model.PostalCode,
		Country:        model.Country,
		RecipientName:  model.RecipientName,
		RecipientPhone: model.RecipientPhone,
		IsDefault:      model.IsDefault,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}
