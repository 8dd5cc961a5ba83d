package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget caps spending for one category of expenses. Current spending is not
// tracked here and is supplied by callers.
type Budget struct {
	Entity[BudgetID]
	name            BudgetName
	colorTag        ColorTag
	maximumSpending MaximumSpending
}

// BudgetProps are the raw inputs for a new budget.
type BudgetProps struct {
	Name            string
	ColorTag        string
	MaximumSpending decimal.Decimal
}

// BudgetState is a persisted budget made of already valid values.
type BudgetState struct {
	ID              BudgetID
	Name            BudgetName
	ColorTag        ColorTag
	MaximumSpending MaximumSpending
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BudgetUpdate is a partial update; nil fields are left untouched.
type BudgetUpdate struct {
	Name            *string
	ColorTag        *string
	MaximumSpending *decimal.Decimal
}

// BudgetDTO is the transport shape of a budget.
type BudgetDTO struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	ColorTag        string          `json:"colorTag"`
	MaximumSpending decimal.Decimal `json:"maximumSpending"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// CreateBudget validates props in the order name, colour, maximum spending.
func CreateBudget(props BudgetProps) Result[*Budget] {
	name := NewBudgetName(props.Name)
	if name.IsFailure() {
		return FailFrom[*Budget](name)
	}
	color := NewColorTag(props.ColorTag)
	if color.IsFailure() {
		return FailFrom[*Budget](color)
	}
	limit := NewMaximumSpending(props.MaximumSpending)
	if limit.IsFailure() {
		return FailFrom[*Budget](limit)
	}
	return Ok(&Budget{
		Entity:          newEntity(GenerateBudgetID()),
		name:            name.Value(),
		colorTag:        color.Value(),
		maximumSpending: limit.Value(),
	})
}

// ReconstituteBudget rebuilds a budget from storage.
func ReconstituteBudget(state BudgetState) Result[*Budget] {
	return Ok(&Budget{
		Entity:          restoreEntity(state.ID, state.CreatedAt, state.UpdatedAt),
		name:            state.Name,
		colorTag:        state.ColorTag,
		maximumSpending: state.MaximumSpending,
	})
}

func (b *Budget) Name() BudgetName                 { return b.name }
func (b *Budget) ColorTag() ColorTag               { return b.colorTag }
func (b *Budget) MaximumSpending() MaximumSpending { return b.maximumSpending }

func (b *Budget) IsExceeded(spent decimal.Decimal) bool {
	return b.maximumSpending.IsExceeded(spent)
}

func (b *Budget) RemainingAmount(spent decimal.Decimal) decimal.Decimal {
	return b.maximumSpending.RemainingAmount(spent)
}

func (b *Budget) PercentageSpent(spent decimal.Decimal) decimal.Decimal {
	return b.maximumSpending.PercentageSpent(spent)
}

// Update applies the non-nil fields of u in order and stops at the first
// invalid one. Fields applied before the failure are kept.
func (b *Budget) Update(u BudgetUpdate) Result[Void] {
	if u.Name != nil {
		r := NewBudgetName(*u.Name)
		if r.IsFailure() {
			return FailFrom[Void](r)
		}
		b.name = r.Value()
	}
	if u.ColorTag != nil {
		r := NewColorTag(*u.ColorTag)
		if r.IsFailure() {
			return FailFrom[Void](r)
		}
		b.colorTag = r.Value()
	}
	if u.MaximumSpending != nil {
		r := NewMaximumSpending(*u.MaximumSpending)
		if r.IsFailure() {
			return FailFrom[Void](r)
		}
		b.maximumSpending = r.Value()
	}
	b.touch()
	return OkVoid()
}

// Equals compares identity only.
func (b *Budget) Equals(other *Budget) bool {
	return other != nil && b.id == other.id
}

func (b *Budget) ToDTO() BudgetDTO {
	return BudgetDTO{
		ID:              b.id.Value(),
		Name:            b.name.Value(),
		ColorTag:        b.colorTag.Value(),
		MaximumSpending: b.maximumSpending.Amount(),
		CreatedAt:       b.createdAt,
		UpdatedAt:       b.updatedAt,
	}
}

// BudgetFromDTO rebuilds a budget from its stored projection.
func BudgetFromDTO(dto BudgetDTO) Result[*Budget] {
	id := NewBudgetID(dto.ID)
	name := NewBudgetName(dto.Name)
	color := NewColorTag(dto.ColorTag)
	limit := NewMaximumSpending(dto.MaximumSpending)
	if r := Combine(id, name, color, limit); r.IsFailure() {
		return FailFrom[*Budget](r)
	}
	return ReconstituteBudget(BudgetState{
		ID:              id.Value(),
		Name:            name.Value(),
		ColorTag:        color.Value(),
		MaximumSpending: limit.Value(),
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}
