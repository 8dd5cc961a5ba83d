package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. The category columns are
// a snapshot taken when the category was assigned.
type Transaction struct {
	ID               string          `db:"id"`
	UserID           string          `db:"user_id"`
	Name             string          `db:"name"`
	Type             string          `db:"type"`
	Amount           decimal.Decimal `db:"amount"`
	CategoryID       string          `db:"category_id"`
	CategoryName     string          `db:"category_name"`
	CategoryColorTag string          `db:"category_color_tag"`
	Emoji            string          `db:"emoji"`
	TransactionDate  time.Time       `db:"transaction_date"`
	RecurringBillID  *string         `db:"recurring_bill_id"`
	Timestamps
}
