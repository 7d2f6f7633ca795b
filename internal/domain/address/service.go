package address

import (
	"context"
	"regexp"
	"strings"
)

// 字段格式校验正则
// 业务规则:城市/省/国家仅字母,邮编字母数字,电话恰好10位数字
var (
	alphaPattern        = regexp.MustCompile(`^[A-Za-z]+$`)
	alphanumericPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	phonePattern        = regexp.MustCompile(`^[0-9]{10}$`)
)

// Service 地址领域服务
type Service interface {
	// CreateAddress 创建收货地址
	// 业务规则:
	// - 字段格式校验失败时返回ValidationError,一次性报告所有非法字段
	// - 用户的第一个地址自动设为默认地址,后续地址均为非默认
	CreateAddress(ctx context.Context, userID uint, input *CreateInput) (*Address, error)

	// ListAddresses 查询用户的全部地址
	ListAddresses(ctx context.Context, userID uint) ([]*Address, error)

	// GetAddress 根据ID获取地址
	GetAddress(ctx context.Context, id uint) (*Address, error)
}

type service struct {
	repo Repository
}

// NewService 创建地址领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateAddress 创建收货地址
func (s *service) CreateAddress(ctx context.Context, userID uint, input *CreateInput) (*Address, error) {
	// 1. 字段校验(收集全部非法字段)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	// 2. 默认地址判定:当前没有任何地址时,本条为默认地址
	existing, err := s.repo.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	isDefault := len(existing) == 0

	// 3. 创建并持久化
	addr := NewAddress(userID, input, isDefault)
	if err := s.repo.Create(ctx, addr); err != nil {
		return nil, err
	}

	return addr, nil
}

// ListAddresses 查询用户的全部地址
func (s *service) ListAddresses(ctx context.Context, userID uint) ([]*Address, error) {
	return s.repo.FindAllByUserID(ctx, userID)
}

// GetAddress 根据ID获取地址
func (s *service) GetAddress(ctx context.Context, id uint) (*Address, error) {
	return s.repo.FindByID(ctx, id)
}

// validateInput 校验地址字段,全部非法字段一次性收集到ValidationError
func validateInput(input *CreateInput) error {
	fields := make(map[string]string)

	if strings.TrimSpace(input.LineOne) == "" {
		fields["line_one"] = "地址行1不能为空"
	}
	if strings.TrimSpace(input.City) == "" {
		fields["city"] = "城市不能为空"
	} else if !alphaPattern.MatchString(input.City) {
		fields["city"] = "城市只能包含字母"
	}
	if input.State != "" && !alphaPattern.MatchString(input.State) {
		fields["state"] = "省/州只能包含字母"
	}
	if strings.TrimSpace(input.PostalCode) == "" {
		fields["postal_code"] = "邮编不能为空"
	} else if !alphanumericPattern.MatchString(input.PostalCode) {
		fields["postal_code"] = "邮编只能包含字母和数字"
	}
	if strings.TrimSpace(input.Country) == "" {
		fields["country"] = "国家不能为空"
	} else if !alphaPattern.MatchString(input.Country) {
		fields["country"] = "国家只能包含字母"
	}
	if input.RecipientPhone != "" && !phonePattern.MatchString(input.RecipientPhone) {
		fields["recipient_phone"] = "电话必须是10位数字"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
