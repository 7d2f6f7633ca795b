package address

import (
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 地址领域错误定义
var (
	// ErrAddressNotFound 地址不存在
	ErrAddressNotFound = apperrors.ErrAddressNotFound
)

// ValidationError 地址字段校验错误
// 设计说明:一次请求中所有非法字段同时报告("字段名→原因"),
// 而不是只报告第一个,客户端可以一次性展示全部错误
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("地址字段校验失败: %s", strings.Join(names, ", "))
}

// Code 业务错误码(响应层统一取用)
func (e *ValidationError) Code() int {
	return apperrors.ErrCodeAddressInvalid
}
