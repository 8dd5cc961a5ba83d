package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_app/internal/models"
	"github.com/SscSPs/personal_finance_app/internal/utils/mapping"
	"github.com/SscSPs/personal_finance_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const budgetColumns = `id, user_id, name, color_tag, maximum_spending, created_at, updated_at`

var budgetSortColumns = pagination.Columns{Date: "created_at", Name: "name", Amount: "maximum_spending", ID: "id"}

type PgxBudgetRepository struct {
	BaseRepository
	now func() time.Time
}

func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
		now:            func() time.Time { return time.Now().UTC() },
	}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

func (r *PgxBudgetRepository) GetOneByID(ctx context.Context, userID string, budgetID string) (*domain.BudgetDTO, error) {
	m, err := collectOne[models.Budget](ctx, r.Pool,
		`SELECT `+budgetColumns+` FROM budgets WHERE id = $1 AND user_id = $2`, budgetID, userID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainBudget(*m)
	return &d, nil
}

func (r *PgxBudgetRepository) GetOneByName(ctx context.Context, userID string, name string) (*domain.BudgetDTO, error) {
	m, err := collectOne[models.Budget](ctx, r.Pool,
		`SELECT `+budgetColumns+` FROM budgets WHERE user_id = $1 AND name = $2`, userID, name)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainBudget(*m)
	return &d, nil
}

func (r *PgxBudgetRepository) GetPaginated(ctx context.Context, userID string, params domain.PaginationParams) (domain.Paginated[domain.BudgetDTO], error) {
	filter := pagination.NewFilter("user_id", userID).AddSearch("name", params.Search)

	total, err := count(ctx, r.Pool, `SELECT COUNT(*) FROM budgets`+filter.Where(), filter.Args()...)
	if err != nil {
		return domain.Paginated[domain.BudgetDTO]{}, err
	}

	query := `SELECT ` + budgetColumns + ` FROM budgets` + filter.Where() + pagination.OrderBy(params.SortBy, budgetSortColumns)
	query += filter.Window(params)
	ms, err := collectRows[models.Budget](ctx, r.Pool, query, filter.Args()...)
	if err != nil {
		return domain.Paginated[domain.BudgetDTO]{}, err
	}
	return domain.NewPaginated(mapping.ToDomainBudgetSlice(ms), total, params), nil
}

// GetSummary lists every budget with the expenses booked this month under a
// category of the same name, plus the latest of those expenses.
func (r *PgxBudgetRepository) GetSummary(ctx context.Context, userID string, params domain.SummaryParams) (domain.BudgetSummary, error) {
	from, to := monthBounds(r.now())

	rows, err := collectRows[models.BudgetSpending](ctx, r.Pool, `
		SELECT b.id, b.user_id, b.name, b.color_tag, b.maximum_spending, b.created_at, b.updated_at,
		       COALESCE(SUM(t.amount), 0) AS spent
		FROM budgets b
		LEFT JOIN transactions t
		       ON t.user_id = b.user_id
		      AND t.category_name = b.name
		      AND t.type = 'expense'
		      AND t.transaction_date >= $2 AND t.transaction_date < $3
		WHERE b.user_id = $1
		GROUP BY b.id
		ORDER BY b.created_at DESC, b.id ASC`, userID, from, to)
	if err != nil {
		return domain.BudgetSummary{}, err
	}

	latest, err := r.latestTransactions(ctx, userID, rows, params.MaxItemsToShow, from, to)
	if err != nil {
		return domain.BudgetSummary{}, err
	}

	summary := domain.BudgetSummary{
		Budgets:              make([]domain.BudgetWithSpending, 0, len(rows)),
		TotalMaximumSpending: decimal.Zero,
		TotalSpent:           decimal.Zero,
	}
	for i, row := range rows {
		b, err := unwrapRow(domain.BudgetFromDTO(mapping.ToDomainBudget(row.Budget)))
		if err != nil {
			return domain.BudgetSummary{}, err
		}
		summary.Budgets = append(summary.Budgets, domain.NewBudgetWithSpending(b, row.Spent, latest[i]))
		summary.TotalMaximumSpending = summary.TotalMaximumSpending.Add(row.MaximumSpending)
		summary.TotalSpent = summary.TotalSpent.Add(row.Spent)
	}
	return summary, nil
}

// latestTransactions sends one query per budget in a single batch.
func (r *PgxBudgetRepository) latestTransactions(ctx context.Context, userID string, budgets []models.BudgetSpending, limit int, from, to time.Time) ([][]domain.TransactionDTO, error) {
	result := make([][]domain.TransactionDTO, len(budgets))
	if len(budgets) == 0 || limit <= 0 {
		return result, nil
	}

	batch := &pgx.Batch{}
	for _, b := range budgets {
		batch.Queue(`SELECT `+transactionColumns+` FROM transactions
			WHERE user_id = $1 AND category_name = $2 AND type = 'expense'
			  AND transaction_date >= $3 AND transaction_date < $4
			ORDER BY transaction_date DESC, id ASC
			LIMIT $5`, userID, b.Name, from, to, limit)
	}

	br := r.Pool.SendBatch(ctx, batch)
	defer br.Close()

	for i := range budgets {
		rows, err := br.Query()
		if err != nil {
			return nil, apperrors.NewDatasourceError("failed to query latest budget transactions", err)
		}
		ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
		if err != nil {
			return nil, apperrors.NewDatasourceError("failed to collect latest budget transactions", err)
		}
		result[i] = mapping.ToDomainTransactionSlice(ms)
	}
	return result, nil
}

func (r *PgxBudgetRepository) GetUsedColors(ctx context.Context, userID string) ([]string, error) {
	return usedColors(ctx, r.Pool, "budgets", userID)
}

func (r *PgxBudgetRepository) GetCount(ctx context.Context, userID string) (int64, error) {
	return count(ctx, r.Pool, `SELECT COUNT(*) FROM budgets WHERE user_id = $1`, userID)
}

func (r *PgxBudgetRepository) CreateOne(ctx context.Context, userID string, budget domain.BudgetDTO) (domain.BudgetDTO, error) {
	m := mapping.ToModelBudget(userID, budget)
	saved, err := collectOne[models.Budget](ctx, r.Pool, `
		INSERT INTO budgets (id, user_id, name, color_tag, maximum_spending, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+budgetColumns,
		m.ID, m.UserID, m.Name, m.ColorTag, m.MaximumSpending, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return domain.BudgetDTO{}, err
	}
	return mapping.ToDomainBudget(*saved), nil
}

func (r *PgxBudgetRepository) UpdateOne(ctx context.Context, userID string, budget domain.BudgetDTO) (domain.BudgetDTO, error) {
	m := mapping.ToModelBudget(userID, budget)
	saved, err := collectOne[models.Budget](ctx, r.Pool, `
		UPDATE budgets SET name = $3, color_tag = $4, maximum_spending = $5, updated_at = $6
		WHERE id = $1 AND user_id = $2
		RETURNING `+budgetColumns,
		m.ID, m.UserID, m.Name, m.ColorTag, m.MaximumSpending, m.UpdatedAt)
	if err != nil {
		return domain.BudgetDTO{}, notFoundAs(err, "Budget not found")
	}
	return mapping.ToDomainBudget(*saved), nil
}

func (r *PgxBudgetRepository) DeleteOne(ctx context.Context, userID string, budgetID string) error {
	return deleteOwned(ctx, r.Pool, "budgets", budgetID, userID, "Budget not found")
}
