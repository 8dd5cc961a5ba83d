package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MinPotOperationAmount is the smallest deposit or withdrawal accepted by a pot.
var MinPotOperationAmount = decimal.RequireFromString("0.01")

// Pot is a savings goal. totalSaved only changes through AddMoney and
// WithdrawMoney and never exceeds MaxMoneyAmount.
type Pot struct {
	Entity[PotID]
	name       PotName
	colorTag   ColorTag
	target     PotTarget
	totalSaved Money
}

type PotProps struct {
	Name     string
	ColorTag string
	Target   decimal.Decimal
}

type PotState struct {
	ID         PotID
	Name       PotName
	ColorTag   ColorTag
	Target     PotTarget
	TotalSaved Money
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type PotUpdate struct {
	Name     *string
	ColorTag *string
	Target   *decimal.Decimal
}

type PotDTO struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	ColorTag   string          `json:"colorTag"`
	Target     decimal.Decimal `json:"target"`
	TotalSaved decimal.Decimal `json:"totalSaved"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// CreatePot validates props and starts the pot with nothing saved.
func CreatePot(props PotProps) Result[*Pot] {
	name := NewPotName(props.Name)
	if name.IsFailure() {
		return FailFrom[*Pot](name)
	}
	color := NewColorTag(props.ColorTag)
	if color.IsFailure() {
		return FailFrom[*Pot](color)
	}
	target := NewPotTarget(props.Target)
	if target.IsFailure() {
		return FailFrom[*Pot](target)
	}
	return Ok(&Pot{
		Entity:     newEntity(GeneratePotID()),
		name:       name.Value(),
		colorTag:   color.Value(),
		target:     target.Value(),
		totalSaved: ZeroMoney(),
	})
}

func ReconstitutePot(state PotState) Result[*Pot] {
	return Ok(&Pot{
		Entity:     restoreEntity(state.ID, state.CreatedAt, state.UpdatedAt),
		name:       state.Name,
		colorTag:   state.ColorTag,
		target:     state.Target,
		totalSaved: state.TotalSaved,
	})
}

func (p *Pot) Name() PotName      { return p.name }
func (p *Pot) ColorTag() ColorTag { return p.colorTag }
func (p *Pot) Target() PotTarget  { return p.target }
func (p *Pot) TotalSaved() Money  { return p.totalSaved }

func (p *Pot) IsTargetAchieved() bool {
	return p.target.IsAchieved(p.totalSaved.Amount())
}

func (p *Pot) RemainingAmount() decimal.Decimal {
	return p.target.RemainingAmount(p.totalSaved.Amount())
}

func (p *Pot) PercentageAchieved() decimal.Decimal {
	return p.target.PercentageAchieved(p.totalSaved.Amount())
}

// Update applies the non-nil fields of u. A new target may not be lower than
// what is already saved.
func (p *Pot) Update(u PotUpdate) Result[Void] {
	if u.Name != nil {
		r := NewPotName(*u.Name)
		if r.IsFailure() {
			return FailFrom[Void](r)
		}
		p.name = r.Value()
	}
	if u.ColorTag != nil {
		r := NewColorTag(*u.ColorTag)
		if r.IsFailure() {
			return FailFrom[Void](r)
		}
		p.colorTag = r.Value()
	}
	if u.Target != nil {
		r := NewPotTarget(*u.Target)
		if r.IsFailure() {
			return FailFrom[Void](r)
		}
		if r.Value().Amount().LessThan(p.totalSaved.Amount()) {
			return Fail[Void]("Target cannot be less than the total saved amount")
		}
		p.target = r.Value()
	}
	p.touch()
	return OkVoid()
}

// AddMoney deposits amount into the pot.
func (p *Pot) AddMoney(amount decimal.Decimal) Result[Void] {
	deposit := validatePotOperation(amount)
	if deposit.IsFailure() {
		return FailFrom[Void](deposit)
	}
	total := p.totalSaved.Amount().Add(deposit.Value().Amount())
	if total.GreaterThan(MaxMoneyAmount) {
		return Fail[Void](fmt.Sprintf("Total saved cannot exceed %s", MaxMoneyAmount.String()))
	}
	p.totalSaved = p.totalSaved.Add(deposit.Value())
	p.touch()
	return OkVoid()
}

// WithdrawMoney takes amount out of the pot.
func (p *Pot) WithdrawMoney(amount decimal.Decimal) Result[Void] {
	withdrawal := validatePotOperation(amount)
	if withdrawal.IsFailure() {
		return FailFrom[Void](withdrawal)
	}
	if withdrawal.Value().GreaterThan(p.totalSaved) {
		return Fail[Void]("Insufficient funds in pot")
	}
	remaining := p.totalSaved.Subtract(withdrawal.Value())
	if remaining.IsFailure() {
		return FailFrom[Void](remaining)
	}
	p.totalSaved = remaining.Value()
	p.touch()
	return OkVoid()
}

func validatePotOperation(amount decimal.Decimal) Result[Money] {
	if amount.LessThan(MinPotOperationAmount) {
		return Fail[Money](fmt.Sprintf("Amount must be at least %s", MinPotOperationAmount.String()))
	}
	return NewMoney(amount)
}

func (p *Pot) Equals(other *Pot) bool {
	return other != nil && p.id == other.id
}

func (p *Pot) ToDTO() PotDTO {
	return PotDTO{
		ID:         p.id.Value(),
		Name:       p.name.Value(),
		ColorTag:   p.colorTag.Value(),
		Target:     p.target.Amount(),
		TotalSaved: p.totalSaved.Amount(),
		CreatedAt:  p.createdAt,
		UpdatedAt:  p.updatedAt,
	}
}

// PotFromDTO rebuilds a pot from its stored projection.
func PotFromDTO(dto PotDTO) Result[*Pot] {
	id := NewPotID(dto.ID)
	name := NewPotName(dto.Name)
	color := NewColorTag(dto.ColorTag)
	target := NewPotTarget(dto.Target)
	saved := NewMoney(dto.TotalSaved)
	if r := Combine(id, name, color, target, saved); r.IsFailure() {
		return FailFrom[*Pot](r)
	}
	return ReconstitutePot(PotState{
		ID:         id.Value(),
		Name:       name.Value(),
		ColorTag:   color.Value(),
		Target:     target.Value(),
		TotalSaved: saved.Value(),
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
	})
}
