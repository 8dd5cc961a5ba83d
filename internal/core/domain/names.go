package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Maximum name lengths, counted in characters.
const (
	MaxBudgetNameLength        = 50
	MaxIncomeNameLength        = 50
	MaxPotNameLength           = 50
	MaxCategoryNameLength      = 50
	MaxTransactionNameLength   = 100
	MaxRecurringBillNameLength = 100
)

// validateName trims raw and applies the presence and length rules shared
// by every name value object.
func validateName(raw, label string, maxLength int) Result[string] {
	name := strings.TrimSpace(raw)
	if name == "" {
		return Fail[string](label + " name is required")
	}
	if utf8.RuneCountInString(name) > maxLength {
		return Fail[string](fmt.Sprintf("%s name cannot exceed %d characters", label, maxLength))
	}
	return Ok(name)
}

// BudgetName is the display name of a budget.
type BudgetName struct{ value string }

// NewBudgetName validates a budget name.
func NewBudgetName(raw string) Result[BudgetName] {
	r := validateName(raw, "Budget", MaxBudgetNameLength)
	if r.IsFailure() {
		return FailFrom[BudgetName](r)
	}
	return Ok(BudgetName{value: r.Value()})
}

func (n BudgetName) Value() string                { return n.value }
func (n BudgetName) Equals(other BudgetName) bool { return n.value == other.value }

// IncomeName is the display name of an income source.
type IncomeName struct{ value string }

// NewIncomeName validates an income name.
func NewIncomeName(raw string) Result[IncomeName] {
	r := validateName(raw, "Income", MaxIncomeNameLength)
	if r.IsFailure() {
		return FailFrom[IncomeName](r)
	}
	return Ok(IncomeName{value: r.Value()})
}

func (n IncomeName) Value() string                { return n.value }
func (n IncomeName) Equals(other IncomeName) bool { return n.value == other.value }

// PotName is the display name of a pot.
type PotName struct{ value string }

// NewPotName validates a pot name.
func NewPotName(raw string) Result[PotName] {
	r := validateName(raw, "Pot", MaxPotNameLength)
	if r.IsFailure() {
		return FailFrom[PotName](r)
	}
	return Ok(PotName{value: r.Value()})
}

func (n PotName) Value() string             { return n.value }
func (n PotName) Equals(other PotName) bool { return n.value == other.value }

// CategoryName is the display name of a category.
type CategoryName struct{ value string }

// NewCategoryName validates a category name.
func NewCategoryName(raw string) Result[CategoryName] {
	r := validateName(raw, "Category", MaxCategoryNameLength)
	if r.IsFailure() {
		return FailFrom[CategoryName](r)
	}
	return Ok(CategoryName{value: r.Value()})
}

func (n CategoryName) Value() string                  { return n.value }
func (n CategoryName) Equals(other CategoryName) bool { return n.value == other.value }

// TransactionName is the counterparty or label of a transaction.
type TransactionName struct{ value string }

// NewTransactionName validates a transaction name.
func NewTransactionName(raw string) Result[TransactionName] {
	r := validateName(raw, "Transaction", MaxTransactionNameLength)
	if r.IsFailure() {
		return FailFrom[TransactionName](r)
	}
	return Ok(TransactionName{value: r.Value()})
}

func (n TransactionName) Value() string                     { return n.value }
func (n TransactionName) Equals(other TransactionName) bool { return n.value == other.value }

// RecurringBillName is the display name of a recurring bill.
type RecurringBillName struct{ value string }

// NewRecurringBillName validates a recurring bill name.
func NewRecurringBillName(raw string) Result[RecurringBillName] {
	r := validateName(raw, "Recurring bill", MaxRecurringBillNameLength)
	if r.IsFailure() {
		return FailFrom[RecurringBillName](r)
	}
	return Ok(RecurringBillName{value: r.Value()})
}

func (n RecurringBillName) Value() string                       { return n.value }
func (n RecurringBillName) Equals(other RecurringBillName) bool { return n.value == other.value }
