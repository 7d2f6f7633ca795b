package book

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// ListBooksUseCase 图书列表/搜索用例
// 设计说明:
// 1. keyword为空返回全部图书,非空按书名模糊搜索(不区分大小写)
// 2. 两种查询均按书名排序
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// BookItem 图书DTO
type BookItem struct {
	ID                      uint    `json:"id"`
	Title                   string  `json:"title"`
	AuthorName              string  `json:"author_name"`
	Price                   int64   `json:"price"`         // 最小货币单位
	PriceDisplay            string  `json:"price_display"` // 如"29.99"
	Currency                string  `json:"currency"`
	ImageURL                string  `json:"image_url,omitempty"`
	SmallImageURL           string  `json:"small_image_url,omitempty"`
	BooksCount              int     `json:"books_count"`
	ISBN                    string  `json:"isbn,omitempty"`
	ISBN13                  string  `json:"isbn13,omitempty"`
	OriginalPublicationYear int     `json:"original_publication_year,omitempty"`
	OriginalTitle           string  `json:"original_title,omitempty"`
	LanguageCode            string  `json:"language_code,omitempty"`
	AverageRating           float64 `json:"average_rating,omitempty"`
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	List  []BookItem `json:"list"`
	Total int        `json:"total"`
}

// Execute 执行列表查询
func (uc *ListBooksUseCase) Execute(ctx context.Context, keyword string) (*ListBooksResponse, error) {
	var (
		books []*book.Book
		err   error
	)
	if keyword == "" {
		books, err = uc.bookService.ListBooks(ctx)
	} else {
		books, err = uc.bookService.SearchBooks(ctx, keyword)
	}
	if err != nil {
		return nil, err
	}

	list := make([]BookItem, len(books))
	for i, b := range books {
		list[i] = toBookItem(b)
	}

	return &ListBooksResponse{
		List:  list,
		Total: len(list),
	}, nil
}

// toBookItem 领域实体 → DTO
func toBookItem(b *book.Book) BookItem {
	return BookItem{
		ID:                      b.ID,
		Title:                   b.Title,
		AuthorName:              b.AuthorName,
		Price:                   b.Price,
		PriceDisplay:            formatPrice(b.Price),
		Currency:                b.Currency,
		ImageURL:                b.ImageURL,
		SmallImageURL:           b.SmallImageURL,
		BooksCount:              b.BooksCount,
		ISBN:                    b.ISBN,
		ISBN13:                  b.ISBN13,
		OriginalPublicationYear: b.OriginalPublicationYear,
		OriginalTitle:           b.OriginalTitle,
		LanguageCode:            b.LanguageCode,
		AverageRating:           b.AverageRating,
	}
}

// formatPrice 格式化价格(最小货币单位→主单位,保留两位小数)
func formatPrice(amount int64) string {
	return decimal.NewFromInt(amount).Shift(-2).StringFixed(2)
}
