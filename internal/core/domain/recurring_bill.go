package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DueSoonWindowDays is how many days before its due day an unpaid bill
// counts as due soon.
const DueSoonWindowDays = 5

// BillStatus is the state of a recurring bill within the current month.
type BillStatus string

const (
	BillStatusPaid     BillStatus = "paid"
	BillStatusDueSoon  BillStatus = "due-soon"
	BillStatusUpcoming BillStatus = "upcoming"
)

// RecurringBill is a monthly expense paid on a fixed day of the month.
type RecurringBill struct {
	Entity[RecurringBillID]
	name       RecurringBillName
	amount     Money
	categoryID CategoryID
	emoji      Emoji
	dueDay     int
	lastPaidAt *time.Time
}

type RecurringBillProps struct {
	Name       string
	Amount     decimal.Decimal
	CategoryID string
	Emoji      string
	DueDay     int
}

type RecurringBillState struct {
	ID         RecurringBillID
	Name       RecurringBillName
	Amount     Money
	CategoryID CategoryID
	Emoji      Emoji
	DueDay     int
	LastPaidAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type RecurringBillDTO struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID string          `json:"categoryId"`
	Emoji      string          `json:"emoji"`
	DueDay     int             `json:"dueDay"`
	LastPaidAt *time.Time      `json:"lastPaidAt,omitempty"`
	Status     BillStatus      `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// RecurringBillPayment records one payment of a bill. TransactionID is set
// once storage has created the matching expense transaction.
type RecurringBillPayment struct {
	ID            string          `json:"id"`
	BillID        string          `json:"billId"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAt        time.Time       `json:"paidAt"`
	TransactionID string          `json:"transactionId,omitempty"`
}

func validateDueDay(day int) Result[int] {
	if day < 1 || day > 31 {
		return Fail[int]("Due day must be between 1 and 31")
	}
	return Ok(day)
}

func CreateRecurringBill(props RecurringBillProps) Result[*RecurringBill] {
	name := NewRecurringBillName(props.Name)
	amount := newTransactionAmount(props.Amount)
	categoryID := NewCategoryID(props.CategoryID)
	emoji := NewEmoji(props.Emoji)
	dueDay := validateDueDay(props.DueDay)
	if r := Combine(name, amount, categoryID, emoji, dueDay); r.IsFailure() {
		return FailFrom[*RecurringBill](r)
	}
	return Ok(&RecurringBill{
		Entity:     newEntity(GenerateRecurringBillID()),
		name:       name.Value(),
		amount:     amount.Value(),
		categoryID: categoryID.Value(),
		emoji:      emoji.Value(),
		dueDay:     dueDay.Value(),
	})
}

func ReconstituteRecurringBill(state RecurringBillState) Result[*RecurringBill] {
	return Ok(&RecurringBill{
		Entity:     restoreEntity(state.ID, state.CreatedAt, state.UpdatedAt),
		name:       state.Name,
		amount:     state.Amount,
		categoryID: state.CategoryID,
		emoji:      state.Emoji,
		dueDay:     state.DueDay,
		lastPaidAt: state.LastPaidAt,
	})
}

func (b *RecurringBill) Name() RecurringBillName { return b.name }
func (b *RecurringBill) Amount() Money           { return b.amount }
func (b *RecurringBill) CategoryID() CategoryID  { return b.categoryID }
func (b *RecurringBill) Emoji() Emoji            { return b.emoji }
func (b *RecurringBill) DueDay() int             { return b.dueDay }
func (b *RecurringBill) LastPaidAt() *time.Time  { return b.lastPaidAt }

// StatusOn reports the bill status at now. A bill paid in the same calendar
// month as now is paid. An unpaid bill whose due date this month is at most
// DueSoonWindowDays away, or already past, is due soon.
func (b *RecurringBill) StatusOn(now time.Time) BillStatus {
	return BillStatusOn(b.dueDay, b.lastPaidAt, now)
}

// BillStatusOn is StatusOn for callers that only hold the raw fields.
func BillStatusOn(dueDay int, lastPaidAt *time.Time, now time.Time) BillStatus {
	now = now.UTC()
	if lastPaidAt != nil {
		paid := lastPaidAt.UTC()
		if paid.Year() == now.Year() && paid.Month() == now.Month() {
			return BillStatusPaid
		}
	}
	day := min(dueDay, daysIn(now.Year(), now.Month()))
	if day-now.Day() <= DueSoonWindowDays {
		return BillStatusDueSoon
	}
	return BillStatusUpcoming
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NewPayment validates a payment of the bill. A nil amount pays the bill
// amount and a nil paidAt pays now.
func (b *RecurringBill) NewPayment(amount *decimal.Decimal, paidAt *time.Time) Result[RecurringBillPayment] {
	paid := b.amount
	if amount != nil {
		r := newTransactionAmount(*amount)
		if r.IsFailure() {
			return FailFrom[RecurringBillPayment](r)
		}
		paid = r.Value()
	}
	at := clock()
	if paidAt != nil {
		if paidAt.IsZero() {
			return Fail[RecurringBillPayment]("Payment date is required")
		}
		at = paidAt.UTC()
	}
	return Ok(RecurringBillPayment{
		ID:     generateID(),
		BillID: b.id.Value(),
		Amount: paid.Amount(),
		PaidAt: at,
	})
}

// MarkPaid records at as the latest payment. An earlier backdated payment
// leaves lastPaidAt unchanged.
func (b *RecurringBill) MarkPaid(at time.Time) {
	at = at.UTC()
	if b.lastPaidAt != nil && !at.After(*b.lastPaidAt) {
		return
	}
	b.lastPaidAt = &at
	b.touch()
}

func (b *RecurringBill) Equals(other *RecurringBill) bool {
	return other != nil && b.id == other.id
}

func (b *RecurringBill) ToDTO() RecurringBillDTO {
	return RecurringBillDTO{
		ID:         b.id.Value(),
		Name:       b.name.Value(),
		Amount:     b.amount.Amount(),
		CategoryID: b.categoryID.Value(),
		Emoji:      b.emoji.Value(),
		DueDay:     b.dueDay,
		LastPaidAt: b.lastPaidAt,
		Status:     b.StatusOn(clock()),
		CreatedAt:  b.createdAt,
		UpdatedAt:  b.updatedAt,
	}
}

// RecurringBillFromDTO re-validates a stored bill and rebuilds it.
func RecurringBillFromDTO(dto RecurringBillDTO) Result[*RecurringBill] {
	id := NewRecurringBillID(dto.ID)
	name := NewRecurringBillName(dto.Name)
	amount := newTransactionAmount(dto.Amount)
	categoryID := NewCategoryID(dto.CategoryID)
	emoji := NewEmoji(dto.Emoji)
	dueDay := validateDueDay(dto.DueDay)
	if r := Combine(id, name, amount, categoryID, emoji, dueDay); r.IsFailure() {
		return FailFrom[*RecurringBill](r)
	}
	return ReconstituteRecurringBill(RecurringBillState{
		ID:         id.Value(),
		Name:       name.Value(),
		Amount:     amount.Value(),
		CategoryID: categoryID.Value(),
		Emoji:      emoji.Value(),
		DueDay:     dueDay.Value(),
		LastPaidAt: dto.LastPaidAt,
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
	})
}
