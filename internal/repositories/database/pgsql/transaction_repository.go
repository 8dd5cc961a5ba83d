package pgsql

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_app/internal/models"
	"github.com/SscSPs/personal_finance_app/internal/utils/mapping"
	"github.com/SscSPs/personal_finance_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionColumns = `id, user_id, name, type, amount, category_id, category_name, category_color_tag,
	emoji, transaction_date, recurring_bill_id, created_at, updated_at`

var transactionSortColumns = pagination.Columns{Date: "transaction_date", Name: "name", Amount: "amount", ID: "id"}

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) GetOneByID(ctx context.Context, userID string, transactionID string) (*domain.TransactionDTO, error) {
	m, err := collectOne[models.Transaction](ctx, r.Pool,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1 AND user_id = $2`, transactionID, userID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainTransaction(*m)
	return &d, nil
}

func (r *PgxTransactionRepository) GetPaginated(ctx context.Context, userID string, params domain.TransactionPaginationParams) (domain.Paginated[domain.TransactionDTO], error) {
	filter := pagination.NewFilter("user_id", userID).AddSearch("name", params.Search)
	if params.CategoryID != "" {
		filter.Add("category_id = ?", params.CategoryID)
	}

	total, err := count(ctx, r.Pool, `SELECT COUNT(*) FROM transactions`+filter.Where(), filter.Args()...)
	if err != nil {
		return domain.Paginated[domain.TransactionDTO]{}, err
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions` + filter.Where() +
		pagination.OrderBy(params.SortBy, transactionSortColumns)
	query += filter.Window(params.PaginationParams)
	ms, err := collectRows[models.Transaction](ctx, r.Pool, query, filter.Args()...)
	if err != nil {
		return domain.Paginated[domain.TransactionDTO]{}, err
	}
	return domain.NewPaginated(mapping.ToDomainTransactionSlice(ms), total, params.PaginationParams), nil
}

func (r *PgxTransactionRepository) GetSummary(ctx context.Context, userID string) (domain.TransactionsSummary, error) {
	var income, expenses decimal.Decimal
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM transactions WHERE user_id = $1`, userID).Scan(&income, &expenses)
	if err != nil {
		return domain.TransactionsSummary{}, apperrors.NewDatasourceError("failed to summarize transactions", err)
	}
	return domain.NewTransactionsSummary(income, expenses), nil
}

// CreateOne stores the transaction with the category name and colour read
// from the category itself.
func (r *PgxTransactionRepository) CreateOne(ctx context.Context, userID string, transaction domain.TransactionDTO) (domain.TransactionDTO, error) {
	category, err := resolveCategory(ctx, r.Pool, userID, transaction.Category.ID)
	if err != nil {
		return domain.TransactionDTO{}, err
	}
	transaction.Category = category.Snapshot()
	return insertTransaction(ctx, r.Pool, userID, transaction)
}

func (r *PgxTransactionRepository) UpdateOne(ctx context.Context, userID string, transaction domain.TransactionDTO, categoryChanged bool) (domain.TransactionDTO, error) {
	if categoryChanged {
		category, err := resolveCategory(ctx, r.Pool, userID, transaction.Category.ID)
		if err != nil {
			return domain.TransactionDTO{}, err
		}
		transaction.Category = category.Snapshot()
	}

	m := mapping.ToModelTransaction(userID, transaction)
	saved, err := collectOne[models.Transaction](ctx, r.Pool, `
		UPDATE transactions SET name = $3, type = $4, amount = $5, category_id = $6, category_name = $7,
		       category_color_tag = $8, emoji = $9, transaction_date = $10, updated_at = $11
		WHERE id = $1 AND user_id = $2
		RETURNING `+transactionColumns,
		m.ID, m.UserID, m.Name, m.Type, m.Amount, m.CategoryID, m.CategoryName,
		m.CategoryColorTag, m.Emoji, m.TransactionDate, m.UpdatedAt)
	if err != nil {
		return domain.TransactionDTO{}, notFoundAs(err, "Transaction not found")
	}
	return mapping.ToDomainTransaction(*saved), nil
}

func (r *PgxTransactionRepository) DeleteOne(ctx context.Context, userID string, transactionID string) error {
	return deleteOwned(ctx, r.Pool, "transactions", transactionID, userID, "Transaction not found")
}

func insertTransaction(ctx context.Context, db dbtx, userID string, transaction domain.TransactionDTO) (domain.TransactionDTO, error) {
	m := mapping.ToModelTransaction(userID, transaction)
	saved, err := collectOne[models.Transaction](ctx, db, `
		INSERT INTO transactions (id, user_id, name, type, amount, category_id, category_name, category_color_tag,
		                          emoji, transaction_date, recurring_bill_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+transactionColumns,
		m.ID, m.UserID, m.Name, m.Type, m.Amount, m.CategoryID, m.CategoryName, m.CategoryColorTag,
		m.Emoji, m.TransactionDate, m.RecurringBillID, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return domain.TransactionDTO{}, err
	}
	return mapping.ToDomainTransaction(*saved), nil
}
