package dto

import (
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecurringBillRequest defines the data needed to create a recurring bill.
type CreateRecurringBillRequest struct {
	Name       string          `json:"name" validate:"required,max=100"`
	Amount     decimal.Decimal `json:"amount" validate:"gt=0"`
	CategoryID string          `json:"categoryId" validate:"required,max=128"`
	Emoji      string          `json:"emoji" validate:"required"`
	DueDay     int             `json:"dueDay" validate:"min=1,max=31"`
}

func (r *CreateRecurringBillRequest) Normalize() {
	trim(&r.Name, &r.CategoryID, &r.Emoji)
}

func (r CreateRecurringBillRequest) ToProps() domain.RecurringBillProps {
	return domain.RecurringBillProps{
		Name:       r.Name,
		Amount:     r.Amount,
		CategoryID: r.CategoryID,
		Emoji:      r.Emoji,
		DueDay:     r.DueDay,
	}
}

type DeleteRecurringBillRequest struct {
	RecurringBillID string `json:"recurringBillId"`
}

// PayRecurringBillRequest pays a bill. Amount defaults to the bill amount
// and PaidAt to now.
type PayRecurringBillRequest struct {
	RecurringBillID string           `json:"recurringBillId"`
	Amount          *decimal.Decimal `json:"amount" validate:"omitempty,gt=0"`
	PaidAt          *time.Time       `json:"paidAt"`
}

func (r *PayRecurringBillRequest) Normalize() {
	trim(&r.RecurringBillID)
}

// PayRecurringBillResponse is the outcome of paying a bill.
type PayRecurringBillResponse struct {
	Bill          domain.RecurringBillDTO     `json:"bill"`
	Payment       domain.RecurringBillPayment `json:"payment"`
	TransactionID string                      `json:"transactionId"`
}
