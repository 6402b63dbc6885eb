package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
)

func TestPaymentTypeTotals(t *testing.T) {
	store := &fakeStore{
		payments: []models.Payment{
			testPayment(1, models.PaymentAnnual, 150000, date(2025, time.July, 1)),
			testPayment(2, models.PaymentMonthly, 10000, date(2025, time.July, 2)),
			testPayment(2, models.PaymentMonthly, 10000, date(2025, time.August, 2)),
			testPayment(3, models.PaymentPitch, 5000, date(2025, time.July, 3)),
			testPayment(4, models.PaymentMatchDay, 5000, date(2025, time.July, 5)),
			testPayment(5, "registration", 7000, date(2025, time.July, 6)),
		},
	}
	e := newTestEngine(store, date(2025, time.September, 1))

	stats, err := e.PaymentTypeTotals(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(150000), stats.AnnualTotal)
	assert.Equal(t, int64(20000), stats.MonthlyTotal)
	assert.Equal(t, int64(5000), stats.PitchTotal)
	assert.Equal(t, int64(5000), stats.MatchDayTotal)
	assert.Equal(t, int64(187000), stats.TotalAmount)
	assert.Equal(t, 6, stats.TotalPayments)
}

func TestPaymentTypeTotalsEmpty(t *testing.T) {
	e := newTestEngine(&fakeStore{}, date(2025, time.September, 1))

	stats, err := e.PaymentTypeTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &PaymentTypeSummary{}, stats)
}

func TestPaymentTypeTotalsFailsOnStoreError(t *testing.T) {
	e := newTestEngine(&fakeStore{failWith: errStoreDown}, date(2025, time.September, 1))

	_, err := e.PaymentTypeTotals(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
}
