package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

// CategoryReader exposes the categories visible to a user: the shared
// defaults plus the user's own.
type CategoryReader interface {
	GetPaginated(ctx context.Context, userID string, params domain.PaginationParams) (domain.Paginated[domain.CategoryDTO], error)
	GetOneByID(ctx context.Context, userID string, categoryID string) (*domain.CategoryDTO, error)
}
