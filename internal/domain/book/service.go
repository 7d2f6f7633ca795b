package book

import (
	"context"
	"errors"
	"strings"
)

// LoadResult 批量上传结果
// Failed保留被拒绝的原始记录,返回给调用方;Inserted/Merged用于统计打点
type LoadResult struct {
	Inserted int           // 新建条目数
	Merged   int           // 合并条目数
	Failed   []*BookRecord // 被拒绝的记录
}

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装目录合并与查询的业务规则
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// LoadBooks 批量装载上传记录(合并引擎)
	// 业务规则:
	// - 逐条处理,单条失败不影响其他记录(批次操作本身永不失败)
	// - 先按ISBN13查找已有条目,未命中再按ISBN10
	// - 命中则合并:库存累加,描述字段覆盖
	// - 未命中则校验必填字段后新建
	LoadBooks(ctx context.Context, records []*BookRecord) *LoadResult

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// ListBooks 查询全部图书(按书名排序)
	ListBooks(ctx context.Context) ([]*Book, error)

	// SearchBooks 按书名模糊搜索(不区分大小写)
	SearchBooks(ctx context.Context, keyword string) ([]*Book, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// LoadBooks 批量装载上传记录
// 批次内重复ISBN按顺序处理:后一条针对前一条入库后的状态合并
func (s *service) LoadBooks(ctx context.Context, records []*BookRecord) *LoadResult {
	result := &LoadResult{
		Failed: make([]*BookRecord, 0),
	}

	for _, record := range records {
		merged, err := s.loadOne(ctx, record)
		if err != nil {
			result.Failed = append(result.Failed, record)
			continue
		}
		if merged {
			result.Merged++
		} else {
			result.Inserted++
		}
	}

	return result
}

// loadOne 处理单条记录,返回是否走了合并路径
func (s *service) loadOne(ctx context.Context, record *BookRecord) (bool, error) {
	// 1. 按ISBN13优先、ISBN10兜底查找已有条目
	existing, err := s.findExisting(ctx, record)
	if err != nil {
		return false, err
	}

	// 2. 命中:库存累加,描述字段覆盖
	if existing != nil {
		if err := existing.MergeRecord(record); err != nil {
			return false, err
		}
		return true, s.repo.Update(ctx, existing)
	}

	// 3. 未命中:校验后新建
	if err := record.Validate(); err != nil {
		return false, err
	}
	newBook, err := NewBookFromRecord(record)
	if err != nil {
		return false, err
	}
	return false, s.repo.Create(ctx, newBook)
}

// findExisting 按合并标识查找已有条目(未找到返回nil,不视为错误)
func (s *service) findExisting(ctx context.Context, record *BookRecord) (*Book, error) {
	if isbn13 := strings.TrimSpace(record.ISBN13); isbn13 != "" {
		existing, err := s.repo.FindByISBN13(ctx, isbn13)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, ErrBookNotFound) {
			return nil, err
		}
	}

	if isbn := strings.TrimSpace(record.ISBN); isbn != "" {
		existing, err := s.repo.FindByISBN(ctx, isbn)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, ErrBookNotFound) {
			return nil, err
		}
	}

	return nil, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// ListBooks 查询全部图书
func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.ListAllByTitle(ctx)
}

// SearchBooks 按书名模糊搜索
func (s *service) SearchBooks(ctx context.Context, keyword string) ([]*Book, error) {
	return s.repo.SearchByTitle(ctx, strings.TrimSpace(keyword))
}
