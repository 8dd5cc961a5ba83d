package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceholderCategoryName marks a category snapshot whose real name and
// colour have not been resolved yet. Storage replaces it on write.
const PlaceholderCategoryName = "temp"

// TransactionCategory is the category snapshot stored with a transaction.
type TransactionCategory struct {
	ID       CategoryID
	Name     CategoryName
	ColorTag ColorTag
}

// TransactionCategoryProps is the raw form of TransactionCategory.
type TransactionCategoryProps struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ColorTag string `json:"colorTag"`
}

// PlaceholderCategory returns a snapshot that only carries the category id.
func PlaceholderCategory(categoryID string) TransactionCategoryProps {
	return TransactionCategoryProps{
		ID:       categoryID,
		Name:     PlaceholderCategoryName,
		ColorTag: palette[0].Hex,
	}
}

func newTransactionCategory(props TransactionCategoryProps) Result[TransactionCategory] {
	id := NewCategoryID(props.ID)
	name := NewCategoryName(props.Name)
	color := NewColorTag(props.ColorTag)
	if r := Combine(id, name, color); r.IsFailure() {
		return FailFrom[TransactionCategory](r)
	}
	return Ok(TransactionCategory{ID: id.Value(), Name: name.Value(), ColorTag: color.Value()})
}

func (c TransactionCategory) toProps() TransactionCategoryProps {
	return TransactionCategoryProps{ID: c.ID.Value(), Name: c.Name.Value(), ColorTag: c.ColorTag.Value()}
}

// Transaction is a single income or expense movement.
type Transaction struct {
	Entity[TransactionID]
	name            TransactionName
	txType          TransactionType
	amount          Money
	category        TransactionCategory
	emoji           Emoji
	transactionDate time.Time
	recurringBillID *RecurringBillID
}

type TransactionProps struct {
	Name            string
	Type            string
	Amount          decimal.Decimal
	Category        TransactionCategoryProps
	Emoji           string
	TransactionDate time.Time
	RecurringBillID *string
}

type TransactionState struct {
	ID              TransactionID
	Name            TransactionName
	Type            TransactionType
	Amount          Money
	Category        TransactionCategory
	Emoji           Emoji
	TransactionDate time.Time
	RecurringBillID *RecurringBillID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TransactionUpdate is a partial update; nil fields are left untouched.
type TransactionUpdate struct {
	Name            *string
	Type            *string
	Amount          *decimal.Decimal
	Category        *TransactionCategoryProps
	Emoji           *string
	TransactionDate *time.Time
}

type TransactionDTO struct {
	ID              string                   `json:"id"`
	Name            string                   `json:"name"`
	Type            TransactionType          `json:"type"`
	Amount          decimal.Decimal          `json:"amount"`
	Category        TransactionCategoryProps `json:"category"`
	Emoji           string                   `json:"emoji"`
	TransactionDate time.Time                `json:"transactionDate"`
	RecurringBillID *string                  `json:"recurringBillId,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}

func newTransactionAmount(amount decimal.Decimal) Result[Money] {
	m := NewMoney(amount)
	if m.IsFailure() {
		return m
	}
	if m.Value().IsZero() {
		return Fail[Money]("Transaction amount must be greater than 0")
	}
	return m
}

func validateTransactionDate(date time.Time) Result[time.Time] {
	if date.IsZero() {
		return Fail[time.Time]("Transaction date is required")
	}
	return Ok(date.UTC())
}

// CreateTransaction validates every field and reports the first failure in
// the order name, type, amount, category, emoji, date.
func CreateTransaction(props TransactionProps) Result[*Transaction] {
	name := NewTransactionName(props.Name)
	txType := NewTransactionType(props.Type)
	amount := newTransactionAmount(props.Amount)
	category := newTransactionCategory(props.Category)
	emoji := NewEmoji(props.Emoji)
	date := validateTransactionDate(props.TransactionDate)
	if r := Combine(name, txType, amount, category, emoji, date); r.IsFailure() {
		return FailFrom[*Transaction](r)
	}

	var billID *RecurringBillID
	if props.RecurringBillID != nil {
		r := NewRecurringBillID(*props.RecurringBillID)
		if r.IsFailure() {
			return FailFrom[*Transaction](r)
		}
		id := r.Value()
		billID = &id
	}

	return Ok(&Transaction{
		Entity:          newEntity(GenerateTransactionID()),
		name:            name.Value(),
		txType:          txType.Value(),
		amount:          amount.Value(),
		category:        category.Value(),
		emoji:           emoji.Value(),
		transactionDate: date.Value(),
		recurringBillID: billID,
	})
}

func ReconstituteTransaction(state TransactionState) Result[*Transaction] {
	return Ok(&Transaction{
		Entity:          restoreEntity(state.ID, state.CreatedAt, state.UpdatedAt),
		name:            state.Name,
		txType:          state.Type,
		amount:          state.Amount,
		category:        state.Category,
		emoji:           state.Emoji,
		transactionDate: state.TransactionDate,
		recurringBillID: state.RecurringBillID,
	})
}

// TransactionFromDTO re-validates a stored transaction and rebuilds it.
func TransactionFromDTO(dto TransactionDTO) Result[*Transaction] {
	id := NewTransactionID(dto.ID)
	name := NewTransactionName(dto.Name)
	txType := NewTransactionType(string(dto.Type))
	amount := newTransactionAmount(dto.Amount)
	category := newTransactionCategory(dto.Category)
	emoji := NewEmoji(dto.Emoji)
	date := validateTransactionDate(dto.TransactionDate)
	if r := Combine(id, name, txType, amount, category, emoji, date); r.IsFailure() {
		return FailFrom[*Transaction](r)
	}

	var billID *RecurringBillID
	if dto.RecurringBillID != nil {
		r := NewRecurringBillID(*dto.RecurringBillID)
		if r.IsFailure() {
			return FailFrom[*Transaction](r)
		}
		v := r.Value()
		billID = &v
	}

	return ReconstituteTransaction(TransactionState{
		ID:              id.Value(),
		Name:            name.Value(),
		Type:            txType.Value(),
		Amount:          amount.Value(),
		Category:        category.Value(),
		Emoji:           emoji.Value(),
		TransactionDate: date.Value(),
		RecurringBillID: billID,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}

func (t *Transaction) Name() TransactionName             { return t.name }
func (t *Transaction) Type() TransactionType             { return t.txType }
func (t *Transaction) Amount() Money                     { return t.amount }
func (t *Transaction) Category() TransactionCategory     { return t.category }
func (t *Transaction) Emoji() Emoji                      { return t.emoji }
func (t *Transaction) TransactionDate() time.Time        { return t.transactionDate }
func (t *Transaction) RecurringBillID() *RecurringBillID { return t.recurringBillID }

// SignedAmount is the amount as it affects the balance.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.txType == TransactionTypeExpense {
		return t.amount.Negate()
	}
	return t.amount.Amount()
}

// Update validates every provided field together and applies them only when
// all are valid.
func (t *Transaction) Update(u TransactionUpdate) Result[Void] {
	var checks []Outcome
	var (
		name     Result[TransactionName]
		txType   Result[TransactionType]
		amount   Result[Money]
		category Result[TransactionCategory]
		emoji    Result[Emoji]
		date     Result[time.Time]
	)
	if u.Name != nil {
		name = NewTransactionName(*u.Name)
		checks = append(checks, name)
	}
	if u.Type != nil {
		txType = NewTransactionType(*u.Type)
		checks = append(checks, txType)
	}
	if u.Amount != nil {
		amount = newTransactionAmount(*u.Amount)
		checks = append(checks, amount)
	}
	if u.Category != nil {
		category = newTransactionCategory(*u.Category)
		checks = append(checks, category)
	}
	if u.Emoji != nil {
		emoji = NewEmoji(*u.Emoji)
		checks = append(checks, emoji)
	}
	if u.TransactionDate != nil {
		date = validateTransactionDate(*u.TransactionDate)
		checks = append(checks, date)
	}
	if r := Combine(checks...); r.IsFailure() {
		return r
	}

	if u.Name != nil {
		t.name = name.Value()
	}
	if u.Type != nil {
		t.txType = txType.Value()
	}
	if u.Amount != nil {
		t.amount = amount.Value()
	}
	if u.Category != nil {
		t.category = category.Value()
	}
	if u.Emoji != nil {
		t.emoji = emoji.Value()
	}
	if u.TransactionDate != nil {
		t.transactionDate = date.Value()
	}
	t.touch()
	return OkVoid()
}

func (t *Transaction) Equals(other *Transaction) bool {
	return other != nil && t.id == other.id
}

func (t *Transaction) ToDTO() TransactionDTO {
	var billID *string
	if t.recurringBillID != nil {
		v := t.recurringBillID.Value()
		billID = &v
	}
	return TransactionDTO{
		ID:              t.id.Value(),
		Name:            t.name.Value(),
		Type:            t.txType,
		Amount:          t.amount.Amount(),
		Category:        t.category.toProps(),
		Emoji:           t.emoji.Value(),
		TransactionDate: t.transactionDate,
		RecurringBillID: billID,
		CreatedAt:       t.createdAt,
		UpdatedAt:       t.updatedAt,
	}
}
