package dto

import (
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	Name            string          `json:"name" validate:"required,max=100"`
	Type            string          `json:"type" validate:"required,oneof=income expense"`
	Amount          decimal.Decimal `json:"amount" validate:"gt=0"`
	CategoryID      string          `json:"categoryId" validate:"required,max=128"`
	Emoji           string          `json:"emoji" validate:"required"`
	TransactionDate time.Time       `json:"transactionDate" validate:"required"`
	RecurringBillID *string         `json:"recurringBillId" validate:"omitempty,min=1,max=128"`
}

func (r *CreateTransactionRequest) Normalize() {
	trim(&r.Name, &r.Type, &r.CategoryID, &r.Emoji)
	trimPtr(r.RecurringBillID)
}

// ToProps builds transaction props whose category only carries the id.
func (r CreateTransactionRequest) ToProps() domain.TransactionProps {
	return domain.TransactionProps{
		Name:            r.Name,
		Type:            r.Type,
		Amount:          r.Amount,
		Category:        domain.PlaceholderCategory(r.CategoryID),
		Emoji:           r.Emoji,
		TransactionDate: r.TransactionDate,
		RecurringBillID: r.RecurringBillID,
	}
}

type UpdateTransactionData struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Type            *string          `json:"type" validate:"omitempty,oneof=income expense"`
	Amount          *decimal.Decimal `json:"amount" validate:"omitempty,gt=0"`
	CategoryID      *string          `json:"categoryId" validate:"omitempty,min=1,max=128"`
	Emoji           *string          `json:"emoji" validate:"omitempty,min=1"`
	TransactionDate *time.Time       `json:"transactionDate"`
}

type UpdateTransactionRequest struct {
	TransactionID string                `json:"transactionId"`
	Data          UpdateTransactionData `json:"data"`
}

func (r *UpdateTransactionRequest) Normalize() {
	trim(&r.TransactionID)
	trimPtr(r.Data.Name, r.Data.Type, r.Data.CategoryID, r.Data.Emoji)
}

// ToUpdate maps the request onto a domain update. A new category id gets a
// placeholder snapshot that storage resolves.
func (d UpdateTransactionData) ToUpdate() domain.TransactionUpdate {
	u := domain.TransactionUpdate{
		Name:            d.Name,
		Type:            d.Type,
		Amount:          d.Amount,
		Emoji:           d.Emoji,
		TransactionDate: d.TransactionDate,
	}
	if d.CategoryID != nil {
		c := domain.PlaceholderCategory(*d.CategoryID)
		u.Category = &c
	}
	return u
}

type DeleteTransactionRequest struct {
	TransactionID string `json:"transactionId"`
}
