package domain

// SortOrder is the ordering applied to paginated lists.
type SortOrder string

const (
	SortLatest  SortOrder = "latest"
	SortOldest  SortOrder = "oldest"
	SortAToZ    SortOrder = "a-z"
	SortZToA    SortOrder = "z-a"
	SortHighest SortOrder = "highest"
	SortLowest  SortOrder = "lowest"
)

// Pagination defaults and limits.
const (
	DefaultPage           = 1
	DefaultPageSize       = 10
	MaxPageSize           = 100
	MaxSearchLength       = 100
	DefaultMaxItemsToShow = 3
	MaxItemsToShowLimit   = 50
)

// PaginationParams are already validated list parameters.
type PaginationParams struct {
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
	Search   string    `json:"search,omitempty"`
	SortBy   SortOrder `json:"sortBy,omitempty"`
}

// Offset is the number of rows to skip for the current page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TransactionPaginationParams narrows a transaction list by category.
type TransactionPaginationParams struct {
	PaginationParams
	CategoryID string `json:"categoryId,omitempty"`
}

// SummaryParams bound how many items a summary lists.
type SummaryParams struct {
	MaxItemsToShow int `json:"maxItemsToShow"`
}

// Paginated is one page of a list.
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewPaginated builds a page and derives TotalPages from total.
func NewPaginated[T any](items []T, total int64, params PaginationParams) Paginated[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if params.PageSize > 0 {
		pages = int((total + int64(params.PageSize) - 1) / int64(params.PageSize))
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: pages,
	}
}
