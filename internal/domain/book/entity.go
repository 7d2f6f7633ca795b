package book

import (
	"time"
)

// DefaultCurrency 目录统一货币单位
// 业务规则:上传记录不携带货币,入库时统一为INR
const DefaultCurrency = "INR"

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是目录聚合的根实体,包含图书的描述信息与库存
// 2. 价格使用int64存储最小货币单位(1卢比=100派萨,避免浮点数精度问题)
// 3. ISBN13优先作为合并标识,缺失时退回ISBN10(数据库层保证唯一性)
type Book struct {
	ID                      uint
	Title                   string  // 书名
	AuthorName              string  // 作者
	Price                   int64   // 价格(最小货币单位)
	Currency                string  // 货币代码(固定为INR)
	ImageURL                string  // 封面图URL
	SmallImageURL           string  // 缩略图URL
	BooksCount              int     // 库存数量
	ISBN                    string  // ISBN-10(可为空)
	ISBN13                  string  // ISBN-13(可为空,合并时优先)
	OriginalPublicationYear int     // 原版出版年份
	OriginalTitle           string  // 原版书名
	LanguageCode            string  // 语言代码
	AverageRating           float64 // 平均评分
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// NewBookFromRecord 从上传记录创建图书实体(工厂方法)
// 前置条件:record已通过Validate校验
func NewBookFromRecord(record *BookRecord) (*Book, error) {
	price, err := record.PriceAmount()
	if err != nil {
		return nil, err
	}
	count, err := record.Count()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Book{
		Title:                   record.Title,
		AuthorName:              record.AuthorName,
		Price:                   price,
		Currency:                DefaultCurrency,
		ImageURL:                record.ImageURL,
		SmallImageURL:           record.SmallImageURL,
		BooksCount:              count,
		ISBN:                    record.ISBN,
		ISBN13:                  record.ISBN13,
		OriginalPublicationYear: record.PublicationYear(),
		OriginalTitle:           record.OriginalTitle,
		LanguageCode:            record.LanguageCode,
		AverageRating:           record.Rating(),
		CreatedAt:               now,
		UpdatedAt:               now,
	}, nil
}

// MergeRecord 合并上传记录(领域行为)
// 业务规则:
// - 库存累加(现有库存 + 记录库存)
// - 其余描述字段全部以新记录为准覆盖
// - ID与货币不变
func (b *Book) MergeRecord(record *BookRecord) error {
	price, err := record.PriceAmount()
	if err != nil {
		return err
	}
	count, err := record.Count()
	if err != nil {
		return err
	}

	b.Title = record.Title
	b.AuthorName = record.AuthorName
	b.Price = price
	b.ImageURL = record.ImageURL
	b.SmallImageURL = record.SmallImageURL
	b.BooksCount += count
	b.ISBN = record.ISBN
	b.ISBN13 = record.ISBN13
	b.OriginalPublicationYear = record.PublicationYear()
	b.OriginalTitle = record.OriginalTitle
	b.LanguageCode = record.LanguageCode
	b.AverageRating = record.Rating()
	b.UpdatedAt = time.Now()
	return nil
}

// DecrStock 扣减库存(用于订单创建)
// 业务规则:扣减后库存不能为负数
func (b *Book) DecrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if b.BooksCount < quantity {
		return ErrInsufficientStock
	}
	b.BooksCount -= quantity
	b.UpdatedAt = time.Now()
	return nil
}

// MergeKey 返回用于合并匹配的标识
// 业务规则:ISBN13优先,为空时退回ISBN10
func (b *Book) MergeKey() string {
	if b.ISBN13 != "" {
		return b.ISBN13
	}
	return b.ISBN
}
