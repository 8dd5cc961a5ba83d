package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecurringBill struct {
	ID         string          `db:"id"`
	UserID     string          `db:"user_id"`
	Name       string          `db:"name"`
	Amount     decimal.Decimal `db:"amount"`
	CategoryID string          `db:"category_id"`
	Emoji      string          `db:"emoji"`
	DueDay     int             `db:"due_day"`
	LastPaidAt *time.Time      `db:"last_paid_at"`
	Timestamps
}

type RecurringBillPayment struct {
	ID            string          `db:"id"`
	BillID        string          `db:"bill_id"`
	UserID        string          `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaidAt        time.Time       `db:"paid_at"`
	TransactionID *string         `db:"transaction_id"`
	CreatedAt     time.Time       `db:"created_at"`
}
