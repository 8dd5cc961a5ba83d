package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBill(t *testing.T, dueDay int) *domain.RecurringBill {
	t.Helper()
	r := domain.CreateRecurringBill(domain.RecurringBillProps{
		Name:       "Spark Electric",
		Amount:     decimal.RequireFromString("100.00"),
		CategoryID: "bills",
		Emoji:      "⚡",
		DueDay:     dueDay,
	})
	require.True(t, r.IsSuccess())
	return r.Value()
}

func TestCreateRecurringBill_DueDay(t *testing.T) {
	for _, day := range []int{0, 32, -1} {
		r := domain.CreateRecurringBill(domain.RecurringBillProps{
			Name: "x", Amount: decimal.NewFromInt(1), CategoryID: "c", Emoji: "⚡", DueDay: day,
		})
		require.True(t, r.IsFailure())
		assert.Equal(t, "Due day must be between 1 and 31", r.Error())
	}
}

func TestBillStatusOn(t *testing.T) {
	now := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
	paidThisMonth := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	paidLastMonth := time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		dueDay     int
		lastPaidAt *time.Time
		want       domain.BillStatus
	}{
		{name: "paid this month", dueDay: 12, lastPaidAt: &paidThisMonth, want: domain.BillStatusPaid},
		{name: "within window", dueDay: 15, lastPaidAt: &paidLastMonth, want: domain.BillStatusDueSoon},
		{name: "overdue", dueDay: 2, want: domain.BillStatusDueSoon},
		{name: "far away", dueDay: 16, want: domain.BillStatusUpcoming},
		{name: "day clamped to month end", dueDay: 31, want: domain.BillStatusUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.BillStatusOn(tt.dueDay, tt.lastPaidAt, now))
		})
	}

	endOfFeb := time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, domain.BillStatusDueSoon, domain.BillStatusOn(31, nil, endOfFeb))
}

func TestRecurringBill_NewPayment(t *testing.T) {
	now := fixedClock(t, time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC))
	bill := newTestBill(t, 12)

	p := bill.NewPayment(nil, nil)
	require.True(t, p.IsSuccess())
	assert.Equal(t, bill.ID().Value(), p.Value().BillID)
	assert.True(t, p.Value().Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, *now, p.Value().PaidAt)
	assert.NotEmpty(t, p.Value().ID)

	bad := bill.NewPayment(decPtr("0"), nil)
	require.True(t, bad.IsFailure())
	assert.Equal(t, "Transaction amount must be greater than 0", bad.Error())

	bill.MarkPaid(p.Value().PaidAt)
	assert.Equal(t, domain.BillStatusPaid, bill.StatusOn(*now))
	assert.Equal(t, domain.BillStatusPaid, bill.ToDTO().Status)
}

func TestRecurringBillsSummary_Add(t *testing.T) {
	var s domain.RecurringBillsSummary
	s = s.Add(domain.BillStatusPaid, decimal.NewFromInt(10))
	s = s.Add(domain.BillStatusDueSoon, decimal.NewFromInt(5))
	s = s.Add(domain.BillStatusDueSoon, decimal.NewFromInt(5))

	assert.Equal(t, 1, s.Paid.Count)
	assert.Equal(t, 2, s.DueSoon.Count)
	assert.Equal(t, "10", s.DueSoon.Total.String())
	assert.Equal(t, 0, s.Upcoming.Count)
}

func TestRecurringBill_MarkPaidIgnoresEarlierDate(t *testing.T) {
	fixedClock(t, time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
	bill := newTestBill(t, 12)

	march := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	bill.MarkPaid(march)
	bill.MarkPaid(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC))

	require.NotNil(t, bill.LastPaidAt())
	assert.Equal(t, march, *bill.LastPaidAt())
}
