package book

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.ErrBookNotFound

	// ErrInsufficientStock 库存不足
	ErrInsufficientStock = apperrors.New(apperrors.ErrCodeInsufficientStock, "库存不足")

	// ErrInvalidQuantity 无效的数量
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须大于0")

	// 上传记录拒绝原因(批量上传时逐条收集,不中断批次)

	// ErrRecordMissingTitle 记录缺少书名
	ErrRecordMissingTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "记录缺少书名")

	// ErrRecordMissingAuthor 记录缺少作者
	ErrRecordMissingAuthor = apperrors.New(apperrors.ErrCodeInvalidParams, "记录缺少作者")

	// ErrRecordInvalidPrice 记录价格缺失或不可解析
	ErrRecordInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "记录价格非法")

	// ErrRecordInvalidCount 记录库存缺失或不可解析
	ErrRecordInvalidCount = apperrors.New(apperrors.ErrCodeInvalidParams, "记录库存非法")

	// ErrRecordMissingISBN 记录ISBN与ISBN13同时为空
	ErrRecordMissingISBN = apperrors.New(apperrors.ErrCodeInvalidParams, "记录缺少ISBN标识")
)
