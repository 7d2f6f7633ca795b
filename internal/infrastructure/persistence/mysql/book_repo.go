package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如ISBN重复),转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			// 并发上传同一ISBN时后到者触发唯一索引冲突
			// 该记录进入失败列表,调用方可重传触发合并
			return apperrors.New(apperrors.ErrCodeDuplicateEntry, "ISBN已存在")
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByISBN 根据ISBN-10查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	return r.findOne(ctx, "isbn = ?", isbn)
}

// FindByISBN13 根据ISBN-13查找图书
func (r *bookRepository) FindByISBN13(ctx context.Context, isbn13 string) (*book.Book, error) {
	return r.findOne(ctx, "isbn13 = ?", isbn13)
}

func (r *bookRepository) findOne(ctx context.Context, query string, args ...interface{}) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Where(query, args...).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// Update 更新图书信息(合并引擎覆盖描述字段+累加库存后调用)
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	model.ID = b.ID
	model.CreatedAt = b.CreatedAt

	// 使用Save更新所有字段
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.New(apperrors.ErrCodeDuplicateEntry, "ISBN已存在")
		}
		return apperrors.Wrap(err, "更新图书失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// ListAllByTitle 查询全部图书,按书名排序
func (r *bookRepository) ListAllByTitle(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).Order("title ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	return toBookEntities(models), nil
}

// SearchByTitle 按书名模糊搜索(不区分大小写),按书名排序
// MySQL默认collation(utf8mb4_general_ci等)的LIKE即不区分大小写
func (r *bookRepository) SearchByTitle(ctx context.Context, keyword string) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).
		Where("title LIKE ?", "%"+keyword+"%").
		Order("title ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "搜索图书失败")
	}

	return toBookEntities(models), nil
}

// LockByID 悲观锁查询图书(用于订单创建)
// SELECT * FROM books WHERE id = ? FOR UPDATE
// 必须在TxManager.Transaction内调用才有锁语义
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}

	return toBookEntity(&model), nil
}

// UpdateStock 更新库存(原子操作)
// UPDATE books SET books_count = books_count + delta
// WHERE id = ? AND books_count + delta >= 0
func (r *bookRepository) UpdateStock(ctx context.Context, id uint, delta int) error {
	result := getDB(ctx, r.db).Model(&BookModel{}).
		Where("id = ?", id).
		Where("books_count + ? >= 0", delta). // 防止库存为负
		Update("books_count", gorm.Expr("books_count + ?", delta))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新库存失败")
	}

	if result.RowsAffected == 0 {
		// 可能是图书不存在,或者库存不足,再查一次确定原因
		var model BookModel
		if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return apperrors.Wrap(err, "查询图书失败")
		}
		return book.ErrInsufficientStock
	}

	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		Title:                   b.Title,
		AuthorName:              b.AuthorName,
		Price:                   b.Price,
		Currency:                b.Currency,
		ImageURL:                b.ImageURL,
		SmallImageURL:           b.SmallImageURL,
		BooksCount:              b.BooksCount,
		ISBN:                    nullableString(b.ISBN),
		ISBN13:                  nullableString(b.ISBN13),
		OriginalPublicationYear: b.OriginalPublicationYear,
		OriginalTitle:           b.OriginalTitle,
		LanguageCode:            b.LanguageCode,
		AverageRating:           b.AverageRating,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:                      model.ID,
		Title:                   model.Title,
		AuthorName:              model.AuthorName,
		Price:                   model.Price,
		Currency:                model.Currency,
		ImageURL:                model.ImageURL,
		SmallImageURL:           model.SmallImageURL,
		BooksCount:              model.BooksCount,
		ISBN:                    stringValue(model.ISBN),
		ISBN13:                  stringValue(model.ISBN13),
		OriginalPublicationYear: model.OriginalPublicationYear,
		OriginalTitle:           model.OriginalTitle,
		LanguageCode:            model.LanguageCode,
		AverageRating:           model.AverageRating,
		CreatedAt:               model.CreatedAt,
		UpdatedAt:               model.UpdatedAt,
	}
}

func toBookEntities(models []BookModel) []*book.Book {
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books
}
