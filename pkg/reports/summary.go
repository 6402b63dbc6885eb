package reports

import (
	"context"
	"fmt"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
)

// PaymentTypeSummary holds running totals per payment type across all
// recorded payments. Unknown types count toward the grand totals only.
type PaymentTypeSummary struct {
	AnnualTotal   int64 `json:"annual_total"`
	MonthlyTotal  int64 `json:"monthly_total"`
	PitchTotal    int64 `json:"pitch_total"`
	MatchDayTotal int64 `json:"matchday_total"`
	TotalAmount   int64 `json:"total_amount"`
	TotalPayments int   `json:"total_payments"`
}

// PaymentTypeTotals computes the all-time payment totals in a single pass.
func (e *Engine) PaymentTypeTotals(ctx context.Context) (*PaymentTypeSummary, error) {
	payments, err := e.store.ListPayments(ctx, PaymentFilter{})
	if err != nil {
		return nil, fmt.Errorf("payment summary: fetch data: %w", err)
	}

	stats := PaymentTypeSummary{TotalPayments: len(payments)}
	for _, p := range payments {
		stats.TotalAmount += p.Amount
		switch p.PaymentType {
		case models.PaymentAnnual:
			stats.AnnualTotal += p.Amount
		case models.PaymentMonthly:
			stats.MonthlyTotal += p.Amount
		case models.PaymentPitch:
			stats.PitchTotal += p.Amount
		case models.PaymentMatchDay:
			stats.MatchDayTotal += p.Amount
		}
	}
	return &stats, nil
}
