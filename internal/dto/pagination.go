package dto

import (
	"strings"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

// PaginationRequest defines query parameters for paginated lists.
// Zero page and page size fall back to the defaults.
type PaginationRequest struct {
	Page     int    `json:"page" form:"page" validate:"min=1"`
	PageSize int    `json:"pageSize" form:"pageSize" validate:"min=1,max=100"`
	Search   string `json:"search" form:"search" validate:"max=100"`
	SortBy   string `json:"sortBy" form:"sortBy" validate:"omitempty,oneof=latest oldest a-z z-a highest lowest"`
}

func (r *PaginationRequest) Normalize() {
	if r.Page == 0 {
		r.Page = domain.DefaultPage
	}
	if r.PageSize == 0 {
		r.PageSize = domain.DefaultPageSize
	}
	r.Search = strings.TrimSpace(r.Search)
	r.SortBy = strings.ToLower(strings.TrimSpace(r.SortBy))
}

func (r PaginationRequest) ToParams() domain.PaginationParams {
	return domain.PaginationParams{
		Page:     r.Page,
		PageSize: r.PageSize,
		Search:   r.Search,
		SortBy:   domain.SortOrder(r.SortBy),
	}
}

// TransactionPaginationRequest adds a category filter to PaginationRequest.
type TransactionPaginationRequest struct {
	PaginationRequest
	CategoryID string `json:"categoryId" form:"categoryId" validate:"max=128"`
}

func (r *TransactionPaginationRequest) Normalize() {
	r.PaginationRequest.Normalize()
	r.CategoryID = strings.TrimSpace(r.CategoryID)
}

func (r TransactionPaginationRequest) ToParams() domain.TransactionPaginationParams {
	return domain.TransactionPaginationParams{
		PaginationParams: r.PaginationRequest.ToParams(),
		CategoryID:       r.CategoryID,
	}
}

// SummaryRequest bounds how many items a summary lists.
type SummaryRequest struct {
	MaxItemsToShow int `json:"maxItemsToShow" form:"maxItemsToShow" validate:"min=1,max=50"`
}

func (r *SummaryRequest) Normalize() {
	if r.MaxItemsToShow == 0 {
		r.MaxItemsToShow = domain.DefaultMaxItemsToShow
	}
}

func (r SummaryRequest) ToParams() domain.SummaryParams {
	return domain.SummaryParams{MaxItemsToShow: r.MaxItemsToShow}
}
