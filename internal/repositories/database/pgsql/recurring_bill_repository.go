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
	"github.com/jackc/pgx/v5/pgxpool"
)

const recurringBillColumns = `id, user_id, name, amount, category_id, emoji, due_day, last_paid_at, created_at, updated_at`

const paymentColumns = `id, bill_id, user_id, amount, paid_at, transaction_id, created_at`

var recurringBillSortColumns = pagination.Columns{Date: "created_at", Name: "name", Amount: "amount", ID: "id"}

type PgxRecurringBillRepository struct {
	BaseRepository
	now func() time.Time
}

func newPgxRecurringBillRepository(pool *pgxpool.Pool) portsrepo.RecurringBillRepositoryFacade {
	return &PgxRecurringBillRepository{
		BaseRepository: BaseRepository{Pool: pool},
		now:            func() time.Time { return time.Now().UTC() },
	}
}

var _ portsrepo.RecurringBillRepositoryFacade = (*PgxRecurringBillRepository)(nil)

func (r *PgxRecurringBillRepository) GetOneByID(ctx context.Context, userID string, billID string) (*domain.RecurringBillDTO, error) {
	m, err := collectOne[models.RecurringBill](ctx, r.Pool,
		`SELECT `+recurringBillColumns+` FROM recurring_bills WHERE id = $1 AND user_id = $2`, billID, userID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainRecurringBill(*m, r.now())
	return &d, nil
}

func (r *PgxRecurringBillRepository) GetPaginated(ctx context.Context, userID string, params domain.PaginationParams) (domain.Paginated[domain.RecurringBillDTO], error) {
	filter := pagination.NewFilter("user_id", userID).AddSearch("name", params.Search)

	total, err := count(ctx, r.Pool, `SELECT COUNT(*) FROM recurring_bills`+filter.Where(), filter.Args()...)
	if err != nil {
		return domain.Paginated[domain.RecurringBillDTO]{}, err
	}

	query := `SELECT ` + recurringBillColumns + ` FROM recurring_bills` + filter.Where() +
		pagination.OrderBy(params.SortBy, recurringBillSortColumns)
	query += filter.Window(params)
	ms, err := collectRows[models.RecurringBill](ctx, r.Pool, query, filter.Args()...)
	if err != nil {
		return domain.Paginated[domain.RecurringBillDTO]{}, err
	}
	return domain.NewPaginated(mapping.ToDomainRecurringBillSlice(ms, r.now()), total, params), nil
}

// GetSummary buckets every bill by its status today. Status depends on the
// current date, so it is derived here rather than in SQL.
func (r *PgxRecurringBillRepository) GetSummary(ctx context.Context, userID string) (domain.RecurringBillsSummary, error) {
	ms, err := collectRows[models.RecurringBill](ctx, r.Pool,
		`SELECT `+recurringBillColumns+` FROM recurring_bills WHERE user_id = $1`, userID)
	if err != nil {
		return domain.RecurringBillsSummary{}, err
	}

	now := r.now()
	var summary domain.RecurringBillsSummary
	for _, m := range ms {
		summary = summary.Add(domain.BillStatusOn(m.DueDay, m.LastPaidAt, now), m.Amount)
	}
	return summary, nil
}

func (r *PgxRecurringBillRepository) CreateOne(ctx context.Context, userID string, bill domain.RecurringBillDTO) (domain.RecurringBillDTO, error) {
	m := mapping.ToModelRecurringBill(userID, bill)
	saved, err := collectOne[models.RecurringBill](ctx, r.Pool, `
		INSERT INTO recurring_bills (id, user_id, name, amount, category_id, emoji, due_day, last_paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+recurringBillColumns,
		m.ID, m.UserID, m.Name, m.Amount, m.CategoryID, m.Emoji, m.DueDay, m.LastPaidAt, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return domain.RecurringBillDTO{}, err
	}
	return mapping.ToDomainRecurringBill(*saved, r.now()), nil
}

func (r *PgxRecurringBillRepository) DeleteOne(ctx context.Context, userID string, billID string) error {
	return deleteOwned(ctx, r.Pool, "recurring_bills", billID, userID, "Recurring bill not found")
}

// RecordPaymentAndCreateTransaction books the payment as an expense in the
// bill's category, stores the payment pointing at it and moves the bill's
// last paid date forward. Either all three writes land or none do.
func (r *PgxRecurringBillRepository) RecordPaymentAndCreateTransaction(ctx context.Context, userID string, bill domain.RecurringBillDTO, payment domain.RecurringBillPayment) (domain.RecurringBillPayment, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return domain.RecurringBillPayment{}, err
	}
	defer r.Rollback(ctx, tx)

	category, err := resolveCategory(ctx, tx, userID, bill.CategoryID)
	if err != nil {
		return domain.RecurringBillPayment{}, err
	}

	billID := bill.ID
	expense := domain.CreateTransaction(domain.TransactionProps{
		Name:            bill.Name,
		Type:            domain.TransactionTypeExpense.String(),
		Amount:          payment.Amount,
		Category:        category.Snapshot(),
		Emoji:           bill.Emoji,
		TransactionDate: payment.PaidAt,
		RecurringBillID: &billID,
	})
	if err := expense.Err(); err != nil {
		return domain.RecurringBillPayment{}, err
	}

	created, err := insertTransaction(ctx, tx, userID, expense.Value().ToDTO())
	if err != nil {
		return domain.RecurringBillPayment{}, err
	}

	payment.TransactionID = created.ID
	m := mapping.ToModelRecurringBillPayment(userID, payment)
	saved, err := collectOne[models.RecurringBillPayment](ctx, tx, `
		INSERT INTO recurring_bill_payments (id, bill_id, user_id, amount, paid_at, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+paymentColumns,
		m.ID, m.BillID, m.UserID, m.Amount, m.PaidAt, m.TransactionID)
	if err != nil {
		return domain.RecurringBillPayment{}, err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE recurring_bills
		SET last_paid_at = GREATEST(COALESCE(last_paid_at, $3), $3), updated_at = NOW()
		WHERE id = $1 AND user_id = $2`, bill.ID, userID, m.PaidAt)
	if err != nil {
		return domain.RecurringBillPayment{}, translateError(err, "failed to update recurring bill")
	}
	if tag.RowsAffected() == 0 {
		return domain.RecurringBillPayment{}, apperrors.NewNotFoundError("Recurring bill not found")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return domain.RecurringBillPayment{}, err
	}
	return mapping.ToDomainRecurringBillPayment(*saved), nil
}
