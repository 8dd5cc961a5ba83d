package dto

import (
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePotRequest defines the data needed to create a new savings pot.
type CreatePotRequest struct {
	Name     string          `json:"name" validate:"required,max=50"`
	Target   decimal.Decimal `json:"target" validate:"gt=0"`
	ColorTag string          `json:"colorTag" validate:"required"`
}

func (r *CreatePotRequest) Normalize() {
	trim(&r.Name, &r.ColorTag)
}

func (r CreatePotRequest) ToProps() domain.PotProps {
	return domain.PotProps{Name: r.Name, ColorTag: r.ColorTag, Target: r.Target}
}

type UpdatePotData struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=50"`
	Target   *decimal.Decimal `json:"target" validate:"omitempty,gt=0"`
	ColorTag *string          `json:"colorTag" validate:"omitempty,min=1"`
}

func (d UpdatePotData) ToUpdate() domain.PotUpdate {
	return domain.PotUpdate{Name: d.Name, ColorTag: d.ColorTag, Target: d.Target}
}

type UpdatePotRequest struct {
	PotID string        `json:"potId"`
	Data  UpdatePotData `json:"data"`
}

func (r *UpdatePotRequest) Normalize() {
	trim(&r.PotID)
	trimPtr(r.Data.Name, r.Data.ColorTag)
}

type DeletePotRequest struct {
	PotID string `json:"potId"`
}

// PotMoneyRequest moves Amount into or out of a pot.
type PotMoneyRequest struct {
	PotID  string          `json:"potId"`
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

func (r *PotMoneyRequest) Normalize() {
	trim(&r.PotID)
}
