package handler

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PaginationMeta describes where a page sits in the full result set.
type PaginationMeta struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
}

// PaginatedResponse wraps one page of list results.
type PaginatedResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// NewPaginatedResponse never serializes data as null.
func NewPaginatedResponse[T any](data []T, total int64, page, limit int) PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	size := max(limit, 1)
	pages := int(total) / size
	if int(total)%size != 0 {
		pages++
	}
	return PaginatedResponse[T]{
		Data: data,
		Meta: PaginationMeta{TotalItems: total, TotalPages: pages, CurrentPage: page, PageSize: size},
	}
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
	// maxPage keeps (page-1)*limit inside an int32 offset.
	maxPage = math.MaxInt32 / maxPageSize
)

// pageParams reads ?page= and ?limit=, clamping both.
func pageParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

// Paginate counts the rows matched by db, then loads the requested page.
// Preloads only run for the page itself.
func Paginate[T any](db *gorm.DB, page, limit int, preloads ...string) (*PaginatedResponse[T], error) {
	base := db.Session(&gorm.Session{})

	var total int64
	if err := base.Model(new(T)).Count(&total).Error; err != nil {
		return nil, err
	}

	pageQuery := base.Offset((page - 1) * limit).Limit(limit)
	for _, rel := range preloads {
		pageQuery = pageQuery.Preload(rel)
	}

	var rows []T
	if err := pageQuery.Find(&rows).Error; err != nil {
		return nil, err
	}

	resp := NewPaginatedResponse(rows, total, page, limit)
	return &resp, nil
}
