package book

import (
	"context"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// UploadBooksUseCase 目录批量上传用例
// 设计说明:
// 1. CSV解析按列头绑定字段(gocsv),列顺序无关
// 2. 解析得到的记录交给领域服务逐条合并,单条失败不中断批次
// 3. 响应返回计数与被拒绝的记录,调用方可修正后重传
type UploadBooksUseCase struct {
	bookService book.Service
}

// NewUploadBooksUseCase 创建上传用例
func NewUploadBooksUseCase(bookService book.Service) *UploadBooksUseCase {
	return &UploadBooksUseCase{
		bookService: bookService,
	}
}

// FailedRecord 被拒绝的记录(原样返回给调用方)
type FailedRecord struct {
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

// UploadBooksResponse 上传响应DTO
type UploadBooksResponse struct {
	Processed     int            `json:"processed"`      // 处理的记录总数
	Inserted      int            `json:"inserted"`       // 新建条目数
	Merged        int            `json:"merged"`         // 合并条目数
	Rejected      int            `json:"rejected"`       // 被拒绝的记录数
	FailedRecords []FailedRecord `json:"failed_records"` // 被拒绝的记录明细
}

// Execute 执行批量上传
// 整个CSV不可解析时返回参数错误;能解析则批次操作本身永不失败
func (uc *UploadBooksUseCase) Execute(ctx context.Context, csvData io.Reader) (*UploadBooksResponse, error) {
	// 1. 解析CSV(按列头绑定)
	var records []*book.BookRecord
	if err := gocsv.Unmarshal(csvData, &records); err != nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "CSV文件解析失败")
	}

	// 2. 调用合并引擎
	result := uc.bookService.LoadBooks(ctx, records)

	// 3. 打点
	metrics.AddCounter(metrics.BooksUploadedTotal, float64(len(records)))
	metrics.AddCounterVec(metrics.BooksUploadResultTotal, map[string]string{"result": "inserted"}, float64(result.Inserted))
	metrics.AddCounterVec(metrics.BooksUploadResultTotal, map[string]string{"result": "merged"}, float64(result.Merged))
	metrics.AddCounterVec(metrics.BooksUploadResultTotal, map[string]string{"result": "rejected"}, float64(len(result.Failed)))

	// 4. 构建响应DTO
	failed := make([]FailedRecord, len(result.Failed))
	for i, r := range result.Failed {
		failed[i] = FailedRecord{
			Title:                   r.Title,
			AuthorName:              r.AuthorName,
			Price:                   r.Price,
			BooksCount:              r.BooksCount,
			ISBN:                    r.ISBN,
			ISBN13:                  r.ISBN13,
			OriginalPublicationYear: r.OriginalPublicationYear,
			OriginalTitle:           r.OriginalTitle,
			LanguageCode:            r.LanguageCode,
			AverageRating:           r.AverageRating,
		}
	}

	return &UploadBooksResponse{
		Processed:     len(records),
		Inserted:      result.Inserted,
		Merged:        result.Merged,
		Rejected:      len(result.Failed),
		FailedRecords: failed,
	}, nil
}
