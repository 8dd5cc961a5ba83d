package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// dbtx is satisfied by both the pool and an open transaction.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewDatasourceError("failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewDatasourceError("failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewDatasourceError("failed to rollback transaction", err)
	}
	return nil
}

// collectRows runs query and scans every row into T by column name.
func collectRows[T any](ctx context.Context, db dbtx, query string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewDatasourceError("failed to run query", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, apperrors.NewDatasourceError("failed to collect rows", err)
	}
	return items, nil
}

// collectOne is collectRows for queries returning at most one row. No row
// maps to apperrors.ErrNotFound.
func collectOne[T any](ctx context.Context, db dbtx, query string, args ...any) (*T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "failed to run query")
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err, "failed to collect row")
	}
	return &item, nil
}

// count runs a SELECT COUNT(*) query.
func count(ctx context.Context, db dbtx, query string, args ...any) (int64, error) {
	var total int64
	if err := db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, apperrors.NewDatasourceError("failed to count rows", err)
	}
	return total, nil
}

// translateError maps constraint violations to typed errors and wraps
// everything else as a 500.
func translateError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewConflictError(conflictMessage(pgErr.ConstraintName))
		case pgForeignKeyViolation:
			return apperrors.NewNotFoundError(missingReferenceMessage(pgErr.ConstraintName))
		}
	}
	return apperrors.NewDatasourceError(msg, err)
}

func conflictMessage(constraint string) string {
	switch constraint {
	case "budgets_user_id_name_key":
		return "Budget with this name already exists"
	case "incomes_user_id_name_key":
		return "Income with this name already exists"
	case "pots_user_id_name_key":
		return "Pot with this name already exists"
	case "users_email_key":
		return "User with this email already exists"
	}
	return "Record already exists"
}

func missingReferenceMessage(constraint string) string {
	switch constraint {
	case "transactions_category_id_fkey", "recurring_bills_category_id_fkey":
		return "Category not found"
	case "transactions_recurring_bill_id_fkey", "recurring_bill_payments_bill_id_fkey":
		return "Recurring bill not found"
	}
	return "Referenced record not found"
}

// deleteOwned deletes the row with id owned by userID.
func deleteOwned(ctx context.Context, db dbtx, table, id, userID, notFound string) error {
	tag, err := db.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return translateError(err, "failed to delete from "+table)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(notFound)
	}
	return nil
}

// notFoundAs replaces a bare apperrors.ErrNotFound with a message for the
// missing entity.
func notFoundAs(err error, msg string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError(msg)
	}
	return err
}

// usedColors lists the distinct colour tags in use in table.
func usedColors(ctx context.Context, db dbtx, table, userID string) ([]string, error) {
	rows, err := db.Query(ctx, "SELECT DISTINCT color_tag FROM "+table+" WHERE user_id = $1 ORDER BY color_tag", userID)
	if err != nil {
		return nil, apperrors.NewDatasourceError("failed to query used colors", err)
	}
	colors, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, apperrors.NewDatasourceError("failed to collect used colors", err)
	}
	return colors, nil
}

// monthBounds returns the start of the month of now and of the next month.
func monthBounds(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// unwrapRow rebuilds an entity from a stored row. A stored row that no longer
// validates is reported as a server error.
func unwrapRow[T any](r domain.Result[T]) (T, error) {
	if err := r.Err(); err != nil {
		var zero T
		return zero, apperrors.NewDatasourceError("stored record is invalid", err)
	}
	return r.Value(), nil
}
