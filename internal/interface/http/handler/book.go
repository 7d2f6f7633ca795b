package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// BookHandler 图书HTTP处理器
// 设计说明:
// 1. Handler只负责HTTP相关的事情:解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑(业务逻辑在domain和application层)
// 3. 使用依赖注入,便于测试
type BookHandler struct {
	uploadBooksUseCase *appbook.UploadBooksUseCase
	listBooksUseCase   *appbook.ListBooksUseCase
	getBookUseCase     *appbook.GetBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	uploadBooksUseCase *appbook.UploadBooksUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
) *BookHandler {
	return &BookHandler{
		uploadBooksUseCase: uploadBooksUseCase,
		listBooksUseCase:   listBooksUseCase,
		getBookUseCase:     getBookUseCase,
	}
}

// UploadBooks 目录批量上传(管理员专用)
// @Summary      批量上传图书目录
// @Description  上传CSV文件批量创建/合并图书条目;同ISBN条目合并库存,非法记录原样返回
// @Tags         图书
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "CSV文件"
// @Success      200 {object} response.Response{data=dto.UploadBooksResponse} "上传完成(含失败明细)"
// @Failure      400 {object} response.Response "文件缺失或CSV不可解析"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "非管理员"
// @Router       /api/v1/books/upload [post]
func (h *BookHandler) UploadBooks(c *gin.Context) {
	// 1. 提取上传文件
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "缺少上传文件: "+err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "读取上传文件失败")
		return
	}
	defer file.Close()

	// 2. 调用应用层用例
	result, err := h.uploadBooksUseCase.Execute(c.Request.Context(), file)
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 构建HTTP响应
	failed := make([]dto.FailedRecordDetail, len(result.FailedRecords))
	for i, r := range result.FailedRecords {
		failed[i] = dto.FailedRecordDetail{
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

	response.Success(c, &dto.UploadBooksResponse{
		Processed:     result.Processed,
		Inserted:      result.Inserted,
		Merged:        result.Merged,
		Rejected:      result.Rejected,
		FailedRecords: failed,
	})
}

// ListBooks 图书列表/搜索
// @Summary      图书列表
// @Description  title为空返回全部图书,非空按书名模糊搜索(不区分大小写);均按书名排序
// @Tags         图书
// @Produce      json
// @Param        title query string false "书名关键词"
// @Success      200 {object} response.Response{data=dto.BookListResponse}
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var query dto.SearchBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.listBooksUseCase.Execute(c.Request.Context(), query.Title)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.BookListResponse{
		List:  toBookResponses(result.List),
		Total: result.Total,
	})
}

// GetBook 图书详情
// @Summary      图书详情
// @Description  根据ID查询图书
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	item, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := toBookResponse(*item)
	response.Success(c, &resp)
}

// toBookResponse 应用层DTO → HTTP层DTO
func toBookResponse(item appbook.BookItem) dto.BookResponse {
	return dto.BookResponse{
		ID:                      item.ID,
		Title:                   item.Title,
		AuthorName:              item.AuthorName,
		Price:                   item.Price,
		PriceDisplay:            item.PriceDisplay,
		Currency:                item.Currency,
		ImageURL:                item.ImageURL,
		SmallImageURL:           item.SmallImageURL,
		BooksCount:              item.BooksCount,
		ISBN:                    item.ISBN,
		ISBN13:                  item.ISBN13,
		OriginalPublicationYear: item.OriginalPublicationYear,
		OriginalTitle:           item.OriginalTitle,
		LanguageCode:            item.LanguageCode,
		AverageRating:           item.AverageRating,
	}
}

func toBookResponses(items []appbook.BookItem) []dto.BookResponse {
	list := make([]dto.BookResponse, len(items))
	for i, item := range items {
		list[i] = toBookResponse(item)
	}
	return list
}
