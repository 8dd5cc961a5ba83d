package pgsql

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_app/internal/models"
	"github.com/SscSPs/personal_finance_app/internal/utils/mapping"
	"github.com/SscSPs/personal_finance_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `id, user_id, name, color_tag, created_at`

var categorySortColumns = pagination.Columns{Date: "created_at", Name: "name", ID: "id"}

// PgxCategoryRepository reads the shared default categories (no owner) and
// the user's own.
type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryReader {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryReader = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) GetPaginated(ctx context.Context, userID string, params domain.PaginationParams) (domain.Paginated[domain.CategoryDTO], error) {
	filter := &pagination.Filter{}
	filter.Add("(user_id IS NULL OR user_id = ?)", userID).AddSearch("name", params.Search)

	total, err := count(ctx, r.Pool, `SELECT COUNT(*) FROM categories`+filter.Where(), filter.Args()...)
	if err != nil {
		return domain.Paginated[domain.CategoryDTO]{}, err
	}

	query := `SELECT ` + categoryColumns + ` FROM categories` + filter.Where() + pagination.OrderBy(params.SortBy, categorySortColumns)
	query += filter.Window(params)
	ms, err := collectRows[models.Category](ctx, r.Pool, query, filter.Args()...)
	if err != nil {
		return domain.Paginated[domain.CategoryDTO]{}, err
	}
	return domain.NewPaginated(mapping.ToDomainCategorySlice(ms), total, params), nil
}

func (r *PgxCategoryRepository) GetOneByID(ctx context.Context, userID string, categoryID string) (*domain.CategoryDTO, error) {
	m, err := collectOne[models.Category](ctx, r.Pool,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1 AND (user_id IS NULL OR user_id = $2)`,
		categoryID, userID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainCategory(*m)
	return &d, nil
}

// resolveCategory loads a category visible to userID for snapshotting onto a
// transaction.
func resolveCategory(ctx context.Context, db dbtx, userID, categoryID string) (domain.CategoryDTO, error) {
	m, err := collectOne[models.Category](ctx, db,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1 AND (user_id IS NULL OR user_id = $2)`,
		categoryID, userID)
	if err != nil {
		return domain.CategoryDTO{}, notFoundAs(err, "Category not found")
	}
	return mapping.ToDomainCategory(*m), nil
}
