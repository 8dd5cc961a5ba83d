package pgsql

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_app/internal/models"
	"github.com/SscSPs/personal_finance_app/internal/utils/mapping"
	"github.com/SscSPs/personal_finance_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const incomeColumns = `id, user_id, name, color_tag, created_at, updated_at`

var incomeSortColumns = pagination.Columns{Date: "created_at", Name: "name", ID: "id"}

type PgxIncomeRepository struct {
	BaseRepository
}

func newPgxIncomeRepository(pool *pgxpool.Pool) portsrepo.IncomeRepositoryFacade {
	return &PgxIncomeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.IncomeRepositoryFacade = (*PgxIncomeRepository)(nil)

func (r *PgxIncomeRepository) GetOneByID(ctx context.Context, userID string, incomeID string) (*domain.IncomeDTO, error) {
	m, err := collectOne[models.Income](ctx, r.Pool,
		`SELECT `+incomeColumns+` FROM incomes WHERE id = $1 AND user_id = $2`, incomeID, userID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainIncome(*m)
	return &d, nil
}

func (r *PgxIncomeRepository) GetOneByName(ctx context.Context, userID string, name string) (*domain.IncomeDTO, error) {
	m, err := collectOne[models.Income](ctx, r.Pool,
		`SELECT `+incomeColumns+` FROM incomes WHERE user_id = $1 AND name = $2`, userID, name)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainIncome(*m)
	return &d, nil
}

func (r *PgxIncomeRepository) GetPaginated(ctx context.Context, userID string, params domain.PaginationParams) (domain.Paginated[domain.IncomeDTO], error) {
	filter := pagination.NewFilter("user_id", userID).AddSearch("name", params.Search)

	total, err := count(ctx, r.Pool, `SELECT COUNT(*) FROM incomes`+filter.Where(), filter.Args()...)
	if err != nil {
		return domain.Paginated[domain.IncomeDTO]{}, err
	}

	query := `SELECT ` + incomeColumns + ` FROM incomes` + filter.Where() + pagination.OrderBy(params.SortBy, incomeSortColumns)
	query += filter.Window(params)
	ms, err := collectRows[models.Income](ctx, r.Pool, query, filter.Args()...)
	if err != nil {
		return domain.Paginated[domain.IncomeDTO]{}, err
	}
	return domain.NewPaginated(mapping.ToDomainIncomeSlice(ms), total, params), nil
}

// GetSummary lists the largest income sources with the sum of the income
// transactions booked under a category of the same name. Total covers every
// source, not only the listed ones.
func (r *PgxIncomeRepository) GetSummary(ctx context.Context, userID string, params domain.SummaryParams) (domain.IncomesSummary, error) {
	rows, err := collectRows[models.IncomeTotal](ctx, r.Pool, `
		SELECT i.id, i.user_id, i.name, i.color_tag, i.created_at, i.updated_at,
		       COALESCE(SUM(t.amount), 0) AS total
		FROM incomes i
		LEFT JOIN transactions t
		       ON t.user_id = i.user_id
		      AND t.category_name = i.name
		      AND t.type = 'income'
		WHERE i.user_id = $1
		GROUP BY i.id
		ORDER BY total DESC, i.id ASC`, userID)
	if err != nil {
		return domain.IncomesSummary{}, err
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Total)
	}
	if params.MaxItemsToShow > 0 && len(rows) > params.MaxItemsToShow {
		rows = rows[:params.MaxItemsToShow]
	}
	return mapping.ToDomainIncomesSummary(rows, total), nil
}

func (r *PgxIncomeRepository) GetCount(ctx context.Context, userID string) (int64, error) {
	return count(ctx, r.Pool, `SELECT COUNT(*) FROM incomes WHERE user_id = $1`, userID)
}

func (r *PgxIncomeRepository) GetUsedColors(ctx context.Context, userID string) ([]string, error) {
	return usedColors(ctx, r.Pool, "incomes", userID)
}

func (r *PgxIncomeRepository) CreateOne(ctx context.Context, userID string, income domain.IncomeDTO) (domain.IncomeDTO, error) {
	m := mapping.ToModelIncome(userID, income)
	saved, err := collectOne[models.Income](ctx, r.Pool, `
		INSERT INTO incomes (id, user_id, name, color_tag, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+incomeColumns,
		m.ID, m.UserID, m.Name, m.ColorTag, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return domain.IncomeDTO{}, err
	}
	return mapping.ToDomainIncome(*saved), nil
}

func (r *PgxIncomeRepository) UpdateOne(ctx context.Context, userID string, income domain.IncomeDTO) (domain.IncomeDTO, error) {
	m := mapping.ToModelIncome(userID, income)
	saved, err := collectOne[models.Income](ctx, r.Pool, `
		UPDATE incomes SET name = $3, color_tag = $4, updated_at = $5
		WHERE id = $1 AND user_id = $2
		RETURNING `+incomeColumns,
		m.ID, m.UserID, m.Name, m.ColorTag, m.UpdatedAt)
	if err != nil {
		return domain.IncomeDTO{}, notFoundAs(err, "Income not found")
	}
	return mapping.ToDomainIncome(*saved), nil
}

func (r *PgxIncomeRepository) DeleteOne(ctx context.Context, userID string, incomeID string) error {
	return deleteOwned(ctx, r.Pool, "incomes", incomeID, userID, "Income not found")
}
