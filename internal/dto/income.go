package dto

import "github.com/SscSPs/personal_finance_app/internal/core/domain"

// CreateIncomeRequest defines the data needed to create a new income source.
type CreateIncomeRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	ColorTag string `json:"colorTag" validate:"required"`
}

func (r *CreateIncomeRequest) Normalize() {
	trim(&r.Name, &r.ColorTag)
}

func (r CreateIncomeRequest) ToProps() domain.IncomeProps {
	return domain.IncomeProps{Name: r.Name, ColorTag: r.ColorTag}
}

type UpdateIncomeData struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=50"`
	ColorTag *string `json:"colorTag" validate:"omitempty,min=1"`
}

func (d UpdateIncomeData) ToUpdate() domain.IncomeUpdate {
	return domain.IncomeUpdate{Name: d.Name, ColorTag: d.ColorTag}
}

type UpdateIncomeRequest struct {
	IncomeID string           `json:"incomeId"`
	Data     UpdateIncomeData `json:"data"`
}

func (r *UpdateIncomeRequest) Normalize() {
	trim(&r.IncomeID)
	trimPtr(r.Data.Name, r.Data.ColorTag)
}

type DeleteIncomeRequest struct {
	IncomeID string `json:"incomeId"`
}
