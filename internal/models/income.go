package models

import "github.com/shopspring/decimal"

type Income struct {
	ID       string `db:"id"`
	UserID   string `db:"user_id"`
	Name     string `db:"name"`
	ColorTag string `db:"color_tag"`
	Timestamps
}

// IncomeTotal is an income row with the sum of its income transactions.
type IncomeTotal struct {
	Income
	Total decimal.Decimal `db:"total"`
}
