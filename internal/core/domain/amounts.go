package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PotTargetMinimum is the smallest target a pot may have.
var PotTargetMinimum = decimal.RequireFromString("0.01")

var hundred = decimal.NewFromInt(100)

// MaximumSpending is the positive spending cap of a budget.
type MaximumSpending struct {
	amount decimal.Decimal
}

// NewMaximumSpending validates a budget cap.
func NewMaximumSpending(amount decimal.Decimal) Result[MaximumSpending] {
	if !amount.IsPositive() {
		return Fail[MaximumSpending]("Maximum spending must be greater than 0")
	}
	if amount.GreaterThan(MaxMoneyAmount) {
		return Fail[MaximumSpending](fmt.Sprintf("Maximum spending cannot exceed %s", MaxMoneyAmount.String()))
	}
	if !hasAtMostTwoDecimals(amount) {
		return Fail[MaximumSpending]("Maximum spending cannot have more than 2 decimal places")
	}
	return Ok(MaximumSpending{amount: amount})
}

// Amount returns the cap.
func (m MaximumSpending) Amount() decimal.Decimal { return m.amount }

// Equals compares by value.
func (m MaximumSpending) Equals(other MaximumSpending) bool { return m.amount.Equal(other.amount) }

// IsExceeded reports whether spent is strictly above the cap.
func (m MaximumSpending) IsExceeded(spent decimal.Decimal) bool {
	return spent.GreaterThan(m.amount)
}

// RemainingAmount is the cap minus spent, never below zero.
func (m MaximumSpending) RemainingAmount(spent decimal.Decimal) decimal.Decimal {
	return floorAtZero(m.amount.Sub(spent))
}

// PercentageSpent is spent as a percentage of the cap, capped at 100.
func (m MaximumSpending) PercentageSpent(spent decimal.Decimal) decimal.Decimal {
	return cappedPercentage(spent, m.amount)
}

// PotTarget is the savings goal of a pot.
type PotTarget struct {
	amount decimal.Decimal
}

// NewPotTarget validates a target against PotTargetMinimum.
func NewPotTarget(amount decimal.Decimal) Result[PotTarget] {
	return NewPotTargetWithMinimum(amount, PotTargetMinimum)
}

// NewPotTargetWithMinimum validates a target against an explicit minimum.
func NewPotTargetWithMinimum(amount, minimum decimal.Decimal) Result[PotTarget] {
	if amount.LessThan(minimum) {
		return Fail[PotTarget](fmt.Sprintf("Target must be at least %s", minimum.String()))
	}
	if amount.GreaterThan(MaxMoneyAmount) {
		return Fail[PotTarget](fmt.Sprintf("Target cannot exceed %s", MaxMoneyAmount.String()))
	}
	if !hasAtMostTwoDecimals(amount) {
		return Fail[PotTarget]("Target cannot have more than 2 decimal places")
	}
	return Ok(PotTarget{amount: amount})
}

// Amount returns the target.
func (t PotTarget) Amount() decimal.Decimal { return t.amount }

// Equals compares by value.
func (t PotTarget) Equals(other PotTarget) bool { return t.amount.Equal(other.amount) }

// IsAchieved reports whether saved has reached the target.
func (t PotTarget) IsAchieved(saved decimal.Decimal) bool {
	return saved.GreaterThanOrEqual(t.amount)
}

// RemainingAmount is the target minus saved, never below zero.
func (t PotTarget) RemainingAmount(saved decimal.Decimal) decimal.Decimal {
	return floorAtZero(t.amount.Sub(saved))
}

// PercentageAchieved is saved as a percentage of the target, capped at 100.
func (t PotTarget) PercentageAchieved(saved decimal.Decimal) decimal.Decimal {
	return cappedPercentage(saved, t.amount)
}

func floorAtZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func cappedPercentage(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() || !part.IsPositive() {
		return decimal.Zero
	}
	pct := part.Div(whole).Mul(hundred).Round(2)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
