package pgsql

import (
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every Postgres repository on dbPool. Tokens
// are not stored in the database, so the auth repository is passed in.
func NewRepositoryProvider(dbPool *pgxpool.Pool, authRepo portsrepo.AuthRepository) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BudgetRepo:        newPgxBudgetRepository(dbPool),
		IncomeRepo:        newPgxIncomeRepository(dbPool),
		PotRepo:           newPgxPotRepository(dbPool),
		TransactionRepo:   newPgxTransactionRepository(dbPool),
		CategoryRepo:      newPgxCategoryRepository(dbPool),
		RecurringBillRepo: newPgxRecurringBillRepository(dbPool),
		UserRepo:          newPgxUserRepository(dbPool),
		AuthRepo:          authRepo,
	}
}
