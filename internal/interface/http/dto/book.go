package dto

// SearchBooksQuery 图书列表/搜索查询参数
// title为空时返回全部图书
type SearchBooksQuery struct {
	Title string `form:"title" example:"gatsby"`
}

// BookResponse 图书响应
type BookResponse struct {
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

// BookListResponse 图书列表响应
type BookListResponse struct {
	List  []BookResponse `json:"list"`
	Total int            `json:"total"`
}

// UploadBooksResponse 目录批量上传响应
// failed_records原样返回被拒绝的记录,调用方可修正后重传
type UploadBooksResponse struct {
	Processed     int                  `json:"processed"`
	Inserted      int                  `json:"inserted"`
	Merged        int                  `json:"merged"`
	Rejected      int                  `json:"rejected"`
	FailedRecords []FailedRecordDetail `json:"failed_records"`
}

// FailedRecordDetail 被拒绝的CSV记录明细
type FailedRecordDetail struct {
	Title                   string `json:"title"`
	AuthorName              string `json:"author"`
	Price                   string `json:"price"`
	BooksCount              string `json:"books_count"`
	ISBN                    string `json:"isbn"`
	ISBN13                  string `json:"isbn13"`
	OriginalPublicationYear string `json:"original_publication_year,omitempty"`
	OriginalTitle           string `json:"original_title,omitempty"`
	LanguageCode            string `json:"language_code,omitempty"`
	AverageRating           string `json:"average_rating,omitempty"`
}
