package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
)

func TestDailySummarizesOneDate(t *testing.T) {
	day := date(2025, time.August, 9)
	store := &fakeStore{
		payments: []models.Payment{
			testPayment(1, models.PaymentAnnual, 50000, day),
			testPayment(1, models.PaymentPitch, 5000, day),
			testPayment(2, models.PaymentMonthly, 10000, day),
			testPayment(3, models.PaymentMonthly, 10000, date(2025, time.August, 10)),
		},
		expenses: []models.Expense{
			{Category: "Transport", Amount: 30000, ExpenseDate: day},
			{Category: "Transport", Amount: 10000, ExpenseDate: day},
			{Category: "Water", Amount: 5000, ExpenseDate: day},
		},
	}
	e := newTestEngine(store, day)

	report, err := e.Daily(context.Background(), day)
	require.NoError(t, err)

	assert.Equal(t, "2025-08-09", report.SelectedDate)
	assert.Len(t, report.Payments, 3)
	assert.Len(t, report.Expenses, 3)

	s := report.Summary
	assert.Equal(t, int64(65000), s.TotalPayments)
	assert.Equal(t, int64(45000), s.TotalExpenses)
	assert.Equal(t, int64(20000), s.NetAmount)
	assert.Equal(t, 3, s.PaymentsCount)
	assert.Equal(t, 3, s.ExpensesCount)
	assert.Equal(t, 2, s.UniquePlayers)
	assert.Equal(t, TypeBucket{Count: 1, Amount: 50000}, s.PaymentsByType.Annual)
	assert.Equal(t, TypeBucket{Count: 1, Amount: 10000}, s.PaymentsByType.Monthly)
	assert.Equal(t, TypeBucket{Count: 1, Amount: 5000}, s.PaymentsByType.Pitch)
	assert.Equal(t, TypeBucket{}, s.PaymentsByType.MatchDay)
	assert.Equal(t, TypeBucket{Count: 2, Amount: 40000}, s.ExpensesByCategory["Transport"])
	assert.Equal(t, TypeBucket{Count: 1, Amount: 5000}, s.ExpensesByCategory["Water"])
}

func TestDailyUnknownTypeCountsTowardTotalsOnly(t *testing.T) {
	day := date(2025, time.August, 9)
	store := &fakeStore{
		payments: []models.Payment{
			testPayment(1, "registration", 7000, day),
		},
	}
	e := newTestEngine(store, day)

	report, err := e.Daily(context.Background(), day)
	require.NoError(t, err)

	s := report.Summary
	assert.Equal(t, int64(7000), s.TotalPayments)
	assert.Equal(t, 1, s.PaymentsCount)
	assert.Equal(t, PaymentsByType{}, s.PaymentsByType)
}

func TestDailyEmptyDate(t *testing.T) {
	store := &fakeStore{}
	e := newTestEngine(store, date(2025, time.August, 9))

	report, err := e.Daily(context.Background(), date(2025, time.August, 9))
	require.NoError(t, err)
	assert.Empty(t, report.Payments)
	assert.Empty(t, report.Expenses)
	assert.Equal(t, int64(0), report.Summary.NetAmount)
	assert.NotNil(t, report.Summary.ExpensesByCategory)
}

func TestDailyFailsWholeReportOnStoreError(t *testing.T) {
	store := &fakeStore{failWith: errStoreDown}
	e := newTestEngine(store, date(2025, time.August, 9))

	_, err := e.Daily(context.Background(), date(2025, time.August, 9))
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
}
