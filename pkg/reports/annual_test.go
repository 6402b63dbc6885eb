package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
)

func TestAnnualNoCarryoverBeforeCutover(t *testing.T) {
	store := &fakeStore{
		players: []models.Player{testPlayer(1, "Okello")},
		payments: []models.Payment{
			// 2024 went fully unpaid but must not roll into 2025.
			testPayment(1, models.PaymentAnnual, 50000, date(2025, time.March, 10)),
		},
	}
	e := newTestEngine(store, date(2025, time.October, 1))

	report, err := e.Annual(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, report.Data, 1)

	row := report.Data[0]
	assert.Equal(t, int64(0), row.Carryover)
	assert.Equal(t, int64(150000), row.TotalDue)
	assert.Equal(t, int64(50000), row.AmountPaid)
	assert.Equal(t, int64(100000), row.Balance)
	assert.Equal(t, StatusPartial, row.Status)
}

func TestAnnualCarryoverFromPriorYear(t *testing.T) {
	store := &fakeStore{
		players: []models.Player{testPlayer(1, "Okello")},
		payments: []models.Payment{
			testPayment(1, models.PaymentAnnual, 90000, date(2025, time.September, 5)),
		},
	}
	e := newTestEngine(store, date(2026, time.February, 1))

	report, err := e.Annual(context.Background(), 2026)
	require.NoError(t, err)
	require.Len(t, report.Data, 1)

	row := report.Data[0]
	assert.Equal(t, int64(60000), row.Carryover)
	assert.Equal(t, int64(210000), row.TotalDue)
	assert.Equal(t, int64(0), row.AmountPaid)
	assert.Equal(t, StatusUnpaid, row.Status)
	assert.Nil(t, row.LastPaymentDate)
}

func TestAnnualOverpaymentGoesNegative(t *testing.T) {
	store := &fakeStore{
		players: []models.Player{testPlayer(1, "Okello")},
		payments: []models.Payment{
			testPayment(1, models.PaymentAnnual, 200000, date(2025, time.August, 1)),
		},
	}
	e := newTestEngine(store, date(2025, time.December, 1))

	report, err := e.Annual(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, report.Data, 1)

	row := report.Data[0]
	assert.Equal(t, int64(-50000), row.Balance)
	assert.Equal(t, StatusComplete, row.Status)
}

func TestAnnualDefaultsExpectedWhenUnset(t *testing.T) {
	player := testPlayer(1, "Okello")
	player.AnnualDue = 0
	store := &fakeStore{players: []models.Player{player}}
	e := newTestEngine(store, date(2025, time.October, 1))

	report, err := e.Annual(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, report.Data, 1)
	assert.Equal(t, models.DefaultAnnualDue, report.Data[0].ExpectedAmount)
}

func TestAnnualSortsMostOwedFirst(t *testing.T) {
	store := &fakeStore{
		players: []models.Player{
			testPlayer(1, "Paid"),
			testPlayer(2, "Unpaid"),
			testPlayer(3, "Partial"),
		},
		payments: []models.Payment{
			testPayment(1, models.PaymentAnnual, 150000, date(2025, time.July, 1)),
			testPayment(3, models.PaymentAnnual, 40000, date(2025, time.July, 2)),
		},
	}
	e := newTestEngine(store, date(2025, time.October, 1))

	report, err := e.Annual(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, report.Data, 3)
	assert.Equal(t, "Unpaid", report.Data[0].PlayerName)
	assert.Equal(t, "Partial", report.Data[1].PlayerName)
	assert.Equal(t, "Paid", report.Data[2].PlayerName)
}

func TestAnnualSkipsDanglingPayments(t *testing.T) {
	store := &fakeStore{
		players: []models.Player{testPlayer(1, "Okello")},
		payments: []models.Payment{
			testPayment(99, models.PaymentAnnual, 150000, date(2025, time.July, 1)),
		},
	}
	e := newTestEngine(store, date(2025, time.October, 1))

	report, err := e.Annual(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, report.Data, 1)
	assert.Equal(t, int64(0), report.Data[0].AmountPaid)
	assert.Equal(t, int64(0), report.Summary.TotalPaid)
}

func TestAnnualSummaryCounts(t *testing.T) {
	store := &fakeStore{
		players: []models.Player{
			testPlayer(1, "Complete"),
			testPlayer(2, "Partial"),
			testPlayer(3, "Unpaid"),
		},
		payments: []models.Payment{
			testPayment(1, models.PaymentAnnual, 150000, date(2025, time.July, 1)),
			testPayment(2, models.PaymentAnnual, 10000, date(2025, time.July, 1)),
		},
	}
	e := newTestEngine(store, date(2025, time.October, 1))

	report, err := e.Annual(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Summary.TotalPlayers)
	assert.Equal(t, 1, report.Summary.CompleteCount)
	assert.Equal(t, 1, report.Summary.PartialCount)
	assert.Equal(t, 1, report.Summary.UnpaidCount)
	assert.Equal(t, int64(450000), report.Summary.TotalExpected)
	assert.Equal(t, int64(160000), report.Summary.TotalPaid)
	assert.Equal(t, int64(290000), report.Summary.TotalBalance)
	assert.Equal(t, 3, report.TotalRecords)
}

func TestAnnualFailsWholeReportOnStoreError(t *testing.T) {
	store := &fakeStore{failWith: errStoreDown}
	e := newTestEngine(store, date(2025, time.October, 1))

	_, err := e.Annual(context.Background(), 2025)
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestAnnualIsIdempotent(t *testing.T) {
	store := &fakeStore{
		players: []models.Player{testPlayer(1, "Okello"), testPlayer(2, "Auma")},
		payments: []models.Payment{
			testPayment(1, models.PaymentAnnual, 90000, date(2025, time.September, 5)),
			testPayment(2, models.PaymentAnnual, 150000, date(2025, time.August, 2)),
		},
	}
	e := newTestEngine(store, date(2026, time.February, 1))

	first, err := e.Annual(context.Background(), 2026)
	require.NoError(t, err)
	second, err := e.Annual(context.Background(), 2026)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
