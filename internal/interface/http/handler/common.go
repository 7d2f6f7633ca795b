package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// parseUintParam 解析路径参数为uint
// 解析失败时已写入错误响应,调用方直接return即可
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+name+"必须是正整数")
		return 0, false
	}
	return uint(value), true
}
