package services

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/dto"
)

type CategorySvcFacade interface {
	GetPaginatedCategories(ctx context.Context, userID string, req *dto.PaginationRequest) (domain.Paginated[domain.CategoryDTO], error)
}
