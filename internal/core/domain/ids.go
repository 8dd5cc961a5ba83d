package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxIDLength bounds identifiers accepted from callers.
const MaxIDLength = 128

func validateID(raw, label string) Result[string] {
	id := strings.TrimSpace(raw)
	if id == "" {
		return Fail[string](label + " ID is required")
	}
	if utf8.RuneCountInString(id) > MaxIDLength {
		return Fail[string](fmt.Sprintf("%s ID cannot exceed %d characters", label, MaxIDLength))
	}
	return Ok(id)
}

// generateID returns a random UUIDv4 in its canonical 36 character form.
func generateID() string {
	return uuid.NewString()
}

type BudgetID struct{ value string }

func NewBudgetID(raw string) Result[BudgetID] {
	r := validateID(raw, "Budget")
	if r.IsFailure() {
		return FailFrom[BudgetID](r)
	}
	return Ok(BudgetID{value: r.Value()})
}

func GenerateBudgetID() BudgetID               { return BudgetID{value: generateID()} }
func (id BudgetID) Value() string              { return id.value }
func (id BudgetID) String() string             { return id.value }
func (id BudgetID) Equals(other BudgetID) bool { return id.value == other.value }

type IncomeID struct{ value string }

func NewIncomeID(raw string) Result[IncomeID] {
	r := validateID(raw, "Income")
	if r.IsFailure() {
		return FailFrom[IncomeID](r)
	}
	return Ok(IncomeID{value: r.Value()})
}

func GenerateIncomeID() IncomeID               { return IncomeID{value: generateID()} }
func (id IncomeID) Value() string              { return id.value }
func (id IncomeID) String() string             { return id.value }
func (id IncomeID) Equals(other IncomeID) bool { return id.value == other.value }

type PotID struct{ value string }

func NewPotID(raw string) Result[PotID] {
	r := validateID(raw, "Pot")
	if r.IsFailure() {
		return FailFrom[PotID](r)
	}
	return Ok(PotID{value: r.Value()})
}

func GeneratePotID() PotID               { return PotID{value: generateID()} }
func (id PotID) Value() string           { return id.value }
func (id PotID) String() string          { return id.value }
func (id PotID) Equals(other PotID) bool { return id.value == other.value }

type TransactionID struct{ value string }

func NewTransactionID(raw string) Result[TransactionID] {
	r := validateID(raw, "Transaction")
	if r.IsFailure() {
		return FailFrom[TransactionID](r)
	}
	return Ok(TransactionID{value: r.Value()})
}

func GenerateTransactionID() TransactionID               { return TransactionID{value: generateID()} }
func (id TransactionID) Value() string                   { return id.value }
func (id TransactionID) String() string                  { return id.value }
func (id TransactionID) Equals(other TransactionID) bool { return id.value == other.value }

type CategoryID struct{ value string }

func NewCategoryID(raw string) Result[CategoryID] {
	r := validateID(raw, "Category")
	if r.IsFailure() {
		return FailFrom[CategoryID](r)
	}
	return Ok(CategoryID{value: r.Value()})
}

func GenerateCategoryID() CategoryID               { return CategoryID{value: generateID()} }
func (id CategoryID) Value() string                { return id.value }
func (id CategoryID) String() string               { return id.value }
func (id CategoryID) Equals(other CategoryID) bool { return id.value == other.value }

type RecurringBillID struct{ value string }

func NewRecurringBillID(raw string) Result[RecurringBillID] {
	r := validateID(raw, "Recurring bill")
	if r.IsFailure() {
		return FailFrom[RecurringBillID](r)
	}
	return Ok(RecurringBillID{value: r.Value()})
}

func GenerateRecurringBillID() RecurringBillID               { return RecurringBillID{value: generateID()} }
func (id RecurringBillID) Value() string                     { return id.value }
func (id RecurringBillID) String() string                    { return id.value }
func (id RecurringBillID) Equals(other RecurringBillID) bool { return id.value == other.value }
