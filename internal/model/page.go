package model

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page はページング条件 (1始まり)
type Page struct {
	Page     int
	PageSize int
}

// NewPage は範囲外の値を既定値に丸めます
func NewPage(page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Page{Page: page, PageSize: pageSize}
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Page) Limit() int {
	return p.PageSize
}

// ListResponse は一覧APIの共通レスポンス
type ListResponse[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
}
