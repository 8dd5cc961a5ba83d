package models

import "github.com/shopspring/decimal"

// Budget is a row of the budgets table.
type Budget struct {
	ID              string          `db:"id"`
	UserID          string          `db:"user_id"`
	Name            string          `db:"name"`
	ColorTag        string          `db:"color_tag"`
	MaximumSpending decimal.Decimal `db:"maximum_spending"`
	Timestamps
}

// BudgetSpending is a budget row together with its spending this month.
type BudgetSpending struct {
	Budget
	Spent decimal.Decimal `db:"spent"`
}
