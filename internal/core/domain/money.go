package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxMoneyAmount is the largest amount any money-like value may hold.
var MaxMoneyAmount = decimal.NewFromInt(1_000_000_000)

// moneyDecimalPlaces is the maximum number of digits after the decimal point.
const moneyDecimalPlaces = 2

// Money is a non-negative amount with at most two decimal places.
type Money struct {
	amount decimal.Decimal
}

// NewMoney validates amount and wraps it.
func NewMoney(amount decimal.Decimal) Result[Money] {
	if amount.IsNegative() {
		return Fail[Money]("Amount cannot be negative")
	}
	if amount.GreaterThan(MaxMoneyAmount) {
		return Fail[Money](fmt.Sprintf("Amount cannot exceed %s", MaxMoneyAmount.String()))
	}
	if !hasAtMostTwoDecimals(amount) {
		return Fail[Money]("Amount cannot have more than 2 decimal places")
	}
	return Ok(Money{amount: amount})
}

// MoneyFromFloat is NewMoney for float input. The float is read using its
// shortest decimal representation, so 0.1 is 0.1 and 0.125 has 3 decimals.
func MoneyFromFloat(amount float64) Result[Money] {
	return NewMoney(decimal.NewFromFloat(amount))
}

// ZeroMoney returns a Money of 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// hasAtMostTwoDecimals reports whether d has no more than two significant
// digits after the decimal point.
func hasAtMostTwoDecimals(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(moneyDecimalPlaces))
}

// Amount returns the underlying decimal.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Float64 returns the amount as a float, for presentation only.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// Add returns m + other. Exceeding MaxMoneyAmount is an invariant violation
// and panics; callers that can overflow must check first.
func (m Money) Add(other Money) Money {
	sum := m.amount.Add(other.amount)
	if sum.GreaterThan(MaxMoneyAmount) {
		panic(fmt.Sprintf("domain: money overflow: %s + %s exceeds %s", m.amount, other.amount, MaxMoneyAmount))
	}
	return Money{amount: sum}
}

// Subtract returns m - other, failing if the result would be negative.
func (m Money) Subtract(other Money) Result[Money] {
	diff := m.amount.Sub(other.amount)
	if diff.IsNegative() {
		return Fail[Money]("Insufficient amount")
	}
	return Ok(Money{amount: diff})
}

// Negate returns the negated amount. A negative amount is not a Money.
func (m Money) Negate() decimal.Decimal { return m.amount.Neg() }

func (m Money) Equals(other Money) bool             { return m.amount.Equal(other.amount) }
func (m Money) GreaterThan(other Money) bool        { return m.amount.GreaterThan(other.amount) }
func (m Money) GreaterThanOrEqual(other Money) bool { return m.amount.GreaterThanOrEqual(other.amount) }
func (m Money) LessThan(other Money) bool           { return m.amount.LessThan(other.amount) }
func (m Money) LessThanOrEqual(other Money) bool    { return m.amount.LessThanOrEqual(other.amount) }
func (m Money) IsZero() bool                        { return m.amount.IsZero() }

// String formats the amount with two decimals.
func (m Money) String() string { return m.amount.StringFixed(moneyDecimalPlaces) }
