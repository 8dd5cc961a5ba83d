package dto

import (
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a new budget.
type CreateBudgetRequest struct {
	Name            string          `json:"name" validate:"required,max=50"`
	MaximumSpending decimal.Decimal `json:"maximumSpending" validate:"gt=0"`
	ColorTag        string          `json:"colorTag" validate:"required"`
}

func (r *CreateBudgetRequest) Normalize() {
	trim(&r.Name, &r.ColorTag)
}

func (r CreateBudgetRequest) ToProps() domain.BudgetProps {
	return domain.BudgetProps{Name: r.Name, ColorTag: r.ColorTag, MaximumSpending: r.MaximumSpending}
}

// UpdateBudgetData holds the fields that may change.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateBudgetData struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=50"`
	MaximumSpending *decimal.Decimal `json:"maximumSpending" validate:"omitempty,gt=0"`
	ColorTag        *string          `json:"colorTag" validate:"omitempty,min=1"`
}

type UpdateBudgetRequest struct {
	BudgetID string           `json:"budgetId"`
	Data     UpdateBudgetData `json:"data"`
}

func (r *UpdateBudgetRequest) Normalize() {
	trim(&r.BudgetID)
	trimPtr(r.Data.Name, r.Data.ColorTag)
}

func (d UpdateBudgetData) ToUpdate() domain.BudgetUpdate {
	return domain.BudgetUpdate{Name: d.Name, ColorTag: d.ColorTag, MaximumSpending: d.MaximumSpending}
}

type DeleteBudgetRequest struct {
	BudgetID string `json:"budgetId"`
}
