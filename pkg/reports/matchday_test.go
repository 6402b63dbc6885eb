package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
)

func matchDayFixture() *fakeStore {
	mdID := uint(1)
	matchDate := date(2025, time.August, 16)
	return &fakeStore{
		matchDays: []models.MatchDay{
			{ID: mdID, MatchDate: matchDate, Opponent: "Kitende FC", Venue: "Home", MatchType: "friendly"},
			{ID: 2, MatchDate: date(2025, time.August, 23), Opponent: "Rangers", Venue: "Away", MatchType: "league"},
		},
		expenses: []models.Expense{
			{Category: "Referee", Amount: 5000, ExpenseDate: matchDate, MatchDayID: &mdID},
			{Category: "Referee", Amount: 3000, ExpenseDate: matchDate, MatchDayID: &mdID},
			{Category: "Water", Amount: 4000, ExpenseDate: matchDate, MatchDayID: &mdID},
		},
		payments: []models.Payment{
			{PlayerID: 1, PlayerName: "Okello", PaymentType: models.PaymentMatchDay, Amount: 5000, Date: matchDate},
			{PlayerID: 2, PlayerName: "Auma", PaymentType: models.PaymentMatchDay, Amount: 5000, Date: matchDate},
			// Same date but a different dues type: not a match-day payment.
			{PlayerID: 3, PlayerName: "Odoi", PaymentType: models.PaymentMonthly, Amount: 10000, Date: matchDate},
		},
	}
}

func TestMatchDayCollapsesExpenseCategories(t *testing.T) {
	e := newTestEngine(matchDayFixture(), date(2025, time.September, 1))

	detail, err := e.MatchDay(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(12000), detail.TotalExpenses)
	assert.Equal(t, int64(10000), detail.TotalPayments)
	assert.Equal(t, int64(-2000), detail.NetBalance)
	require.Len(t, detail.ExpenseBreakdown, 2)
	assert.Equal(t, BreakdownEntry{Category: "Referee", Amount: 8000}, detail.ExpenseBreakdown[0])
	assert.Equal(t, BreakdownEntry{Category: "Water", Amount: 4000}, detail.ExpenseBreakdown[1])
	assert.Len(t, detail.PaymentBreakdown, 2)
	assert.Len(t, detail.Expenses, 3)
	assert.Len(t, detail.Payments, 2)
}

func TestMatchDayNotFound(t *testing.T) {
	e := newTestEngine(matchDayFixture(), date(2025, time.September, 1))

	_, err := e.MatchDay(context.Background(), 42)
	require.ErrorIs(t, err, ErrMatchDayNotFound)
}

func TestMatchDayListAgreesWithSingle(t *testing.T) {
	e := newTestEngine(matchDayFixture(), date(2025, time.September, 1))

	detail, err := e.MatchDay(context.Background(), 1)
	require.NoError(t, err)
	list, err := e.MatchDays(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, list.Data, 2)

	var fromList *MatchDaySummary
	for i := range list.Data {
		if list.Data[i].MatchDayID == 1 {
			fromList = &list.Data[i]
		}
	}
	require.NotNil(t, fromList)
	assert.Equal(t, detail.MatchDaySummary, *fromList)
}

func TestMatchDayListMostRecentFirst(t *testing.T) {
	e := newTestEngine(matchDayFixture(), date(2025, time.September, 1))

	list, err := e.MatchDays(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, list.Data, 2)
	assert.Equal(t, "2025-08-23", list.Data[0].MatchDate)
	assert.Equal(t, "2025-08-16", list.Data[1].MatchDate)
}

func TestMatchDayListDateRange(t *testing.T) {
	e := newTestEngine(matchDayFixture(), date(2025, time.September, 1))

	start := date(2025, time.August, 20)
	list, err := e.MatchDays(context.Background(), &start, nil)
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, uint(2), list.Data[0].MatchDayID)
}

func TestMatchDayWithoutActivity(t *testing.T) {
	store := &fakeStore{
		matchDays: []models.MatchDay{
			{ID: 1, MatchDate: date(2025, time.August, 16), MatchType: "friendly"},
		},
	}
	e := newTestEngine(store, date(2025, time.September, 1))

	detail, err := e.MatchDay(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), detail.TotalExpenses)
	assert.Equal(t, int64(0), detail.TotalPayments)
	assert.Equal(t, int64(0), detail.NetBalance)
	assert.Empty(t, detail.ExpenseBreakdown)
	assert.Empty(t, detail.PaymentBreakdown)
}

func TestMatchDayListFailsWholeReportOnStoreError(t *testing.T) {
	store := &fakeStore{failWith: errStoreDown}
	e := newTestEngine(store, date(2025, time.September, 1))

	_, err := e.MatchDays(context.Background(), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
}
