package domain

import "github.com/shopspring/decimal"

// BudgetWithSpending is a budget together with this month's spending.
type BudgetWithSpending struct {
	BudgetDTO
	Spent              decimal.Decimal  `json:"spent"`
	Remaining          decimal.Decimal  `json:"remaining"`
	PercentageSpent    decimal.Decimal  `json:"percentageSpent"`
	IsExceeded         bool             `json:"isExceeded"`
	LatestTransactions []TransactionDTO `json:"latestTransactions"`
}

// NewBudgetWithSpending derives the spending figures of b.
func NewBudgetWithSpending(b *Budget, spent decimal.Decimal, latest []TransactionDTO) BudgetWithSpending {
	if latest == nil {
		latest = []TransactionDTO{}
	}
	return BudgetWithSpending{
		BudgetDTO:          b.ToDTO(),
		Spent:              spent,
		Remaining:          b.RemainingAmount(spent),
		PercentageSpent:    b.PercentageSpent(spent),
		IsExceeded:         b.IsExceeded(spent),
		LatestTransactions: latest,
	}
}

type BudgetSummary struct {
	Budgets              []BudgetWithSpending `json:"budgets"`
	TotalMaximumSpending decimal.Decimal      `json:"totalMaximumSpending"`
	TotalSpent           decimal.Decimal      `json:"totalSpent"`
}

type PotsSummary struct {
	TotalSaved decimal.Decimal `json:"totalSaved"`
	Pots       []PotDTO        `json:"pots"`
}

type TransactionsSummary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// NewTransactionsSummary computes the balance from the two totals.
func NewTransactionsSummary(income, expenses decimal.Decimal) TransactionsSummary {
	return TransactionsSummary{Income: income, Expenses: expenses, Balance: income.Sub(expenses)}
}

type IncomeWithTotal struct {
	IncomeDTO
	Total decimal.Decimal `json:"total"`
}

type IncomesSummary struct {
	Incomes []IncomeWithTotal `json:"incomes"`
	Total   decimal.Decimal   `json:"total"`
}

type SummaryBucket struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// Add counts one more bill of amount in the bucket.
func (b SummaryBucket) Add(amount decimal.Decimal) SummaryBucket {
	return SummaryBucket{Count: b.Count + 1, Total: b.Total.Add(amount)}
}

type RecurringBillsSummary struct {
	Paid     SummaryBucket `json:"paid"`
	Upcoming SummaryBucket `json:"upcoming"`
	DueSoon  SummaryBucket `json:"dueSoon"`
}

// Add files a bill into the bucket of its status.
func (s RecurringBillsSummary) Add(status BillStatus, amount decimal.Decimal) RecurringBillsSummary {
	switch status {
	case BillStatusPaid:
		s.Paid = s.Paid.Add(amount)
	case BillStatusDueSoon:
		s.DueSoon = s.DueSoon.Add(amount)
	default:
		s.Upcoming = s.Upcoming.Add(amount)
	}
	return s
}
