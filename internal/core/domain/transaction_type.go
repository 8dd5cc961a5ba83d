package domain

import "strings"

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// NewTransactionType parses raw, ignoring case and surrounding whitespace.
func NewTransactionType(raw string) Result[TransactionType] {
	switch t := TransactionType(strings.ToLower(strings.TrimSpace(raw))); t {
	case TransactionTypeIncome, TransactionTypeExpense:
		return Ok(t)
	default:
		return Fail[TransactionType]("Transaction type must be either income or expense")
	}
}

func (t TransactionType) String() string { return string(t) }

// Sign is +1 for income and -1 for expense.
func (t TransactionType) Sign() int64 {
	if t == TransactionTypeExpense {
		return -1
	}
	return 1
}
