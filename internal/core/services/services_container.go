package services

import (
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The options are applied to every service, so a logger passed here becomes
// the fallback for calls that carry none in their context.
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Budget:        NewBudgetService(repos.BudgetRepo, options...),
		Income:        NewIncomeService(repos.IncomeRepo, options...),
		Pot:           NewPotService(repos.PotRepo, options...),
		Transaction:   NewTransactionService(repos.TransactionRepo, options...),
		Category:      NewCategoryService(repos.CategoryRepo, options...),
		RecurringBill: NewRecurringBillService(repos.RecurringBillRepo, repos.CategoryRepo, options...),
		User:          NewUserService(repos.UserRepo, options...),
		Auth:          NewAuthService(repos.UserRepo, repos.AuthRepo, options...),
	}
}
