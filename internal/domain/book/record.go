package book

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// BookRecord 上传记录(瞬态对象)
// 设计说明:
// 1. 对应CSV文件的一行,字段名与列头绑定(csv tag由gocsv解析)
// 2. Price/BooksCount保留原始字符串:单条记录解析失败只拒绝该条,
//    不影响同批次其他记录入库
// 3. 记录不携带ID和货币,入库时由实体工厂补齐
type BookRecord struct {
	Title                   string `csv:"title"`
	AuthorName              string `csv:"author"`
	Price                   string `csv:"price"`
	ImageURL                string `csv:"image_url"`
	SmallImageURL           string `csv:"small_image_url"`
	BooksCount              string `csv:"books_count"`
	ISBN13                  string `csv:"isbn13"`
	ISBN                    string `csv:"isbn"`
	OriginalPublicationYear string `csv:"original_publication_year"`
	OriginalTitle           string `csv:"original_title"`
	LanguageCode            string `csv:"language_code"`
	AverageRating           string `csv:"average_rating"`
}

// Validate 校验记录是否可入库
// 业务规则:
// - 书名、作者不能为空
// - 价格、库存必须可解析且非空
// - 库存不能为负数
// - ISBN与ISBN13不能同时为空(否则无法作为合并标识)
func (r *BookRecord) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrRecordMissingTitle
	}
	if strings.TrimSpace(r.AuthorName) == "" {
		return ErrRecordMissingAuthor
	}
	if _, err := r.PriceAmount(); err != nil {
		return ErrRecordInvalidPrice
	}
	count, err := r.Count()
	if err != nil {
		return ErrRecordInvalidCount
	}
	if count < 0 {
		return ErrRecordInvalidCount
	}
	if strings.TrimSpace(r.ISBN) == "" && strings.TrimSpace(r.ISBN13) == "" {
		return ErrRecordMissingISBN
	}
	return nil
}

// PriceAmount 解析价格为最小货币单位
// 使用decimal避免浮点误差:如"29.99" → 2999
func (r *BookRecord) PriceAmount() (int64, error) {
	s := strings.TrimSpace(r.Price)
	if s == "" {
		return 0, ErrRecordInvalidPrice
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrRecordInvalidPrice
	}
	return d.Shift(2).Round(0).IntPart(), nil
}

// Count 解析库存数量
func (r *BookRecord) Count() (int, error) {
	s := strings.TrimSpace(r.BooksCount)
	if s == "" {
		return 0, ErrRecordInvalidCount
	}
	count, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrRecordInvalidCount
	}
	return count, nil
}

// PublicationYear 解析出版年份(解析失败返回0,不拒绝记录)
// 数据源中该列可能是"2005.0"这样的浮点格式
func (r *BookRecord) PublicationYear() int {
	s := strings.TrimSpace(r.OriginalPublicationYear)
	if s == "" {
		return 0
	}
	if year, err := strconv.Atoi(s); err == nil {
		return year
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// Rating 解析平均评分(解析失败返回0,不拒绝记录)
func (r *BookRecord) Rating() float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(r.AverageRating), 64)
	if err != nil {
		return 0
	}
	return f
}
