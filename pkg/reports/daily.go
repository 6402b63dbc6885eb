package reports

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
)

// TypeBucket is a count plus amount accumulator.
type TypeBucket struct {
	Count  int   `json:"count"`
	Amount int64 `json:"amount"`
}

// PaymentsByType groups a day's payments into the four known dues
// categories. Payments of any other type stay out of the buckets but still
// count toward the day's totals.
type PaymentsByType struct {
	Annual   TypeBucket `json:"annual"`
	Monthly  TypeBucket `json:"monthly"`
	Pitch    TypeBucket `json:"pitch"`
	MatchDay TypeBucket `json:"matchday"`
}

// DailySummary aggregates one day's money movement.
type DailySummary struct {
	TotalPayments      int64                 `json:"totalPayments"`
	TotalExpenses      int64                 `json:"totalExpenses"`
	NetAmount          int64                 `json:"netAmount"`
	PaymentsCount      int                   `json:"paymentsCount"`
	ExpensesCount      int                   `json:"expensesCount"`
	UniquePlayers      int                   `json:"uniquePlayers"`
	PaymentsByType     PaymentsByType        `json:"paymentsByType"`
	ExpensesByCategory map[string]TypeBucket `json:"expensesByCategory"`
}

// DailyReport is the financial summary for a single calendar date.
type DailyReport struct {
	SelectedDate string           `json:"selectedDate"`
	Payments     []models.Payment `json:"payments"`
	Expenses     []models.Expense `json:"expenses"`
	Summary      DailySummary     `json:"summary"`
}

// Daily summarizes all payments and expenses recorded on exactly the given
// date.
func (e *Engine) Daily(ctx context.Context, date time.Time) (*DailyReport, error) {
	var (
		payments []models.Payment
		expenses []models.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		payments, err = e.store.ListPayments(gctx, PaymentFilter{Date: &date})
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = e.store.ListExpenses(gctx, ExpenseFilter{Date: &date})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("daily report: fetch data: %w", err)
	}

	sortPaymentsByRecency(payments)
	sortExpensesByRecency(expenses)

	summary := DailySummary{
		PaymentsCount:      len(payments),
		ExpensesCount:      len(expenses),
		UniquePlayers:      distinctPlayers(payments),
		ExpensesByCategory: make(map[string]TypeBucket),
	}
	for _, p := range payments {
		summary.TotalPayments += p.Amount
		switch p.PaymentType {
		case models.PaymentAnnual:
			summary.PaymentsByType.Annual.Count++
			summary.PaymentsByType.Annual.Amount += p.Amount
		case models.PaymentMonthly:
			summary.PaymentsByType.Monthly.Count++
			summary.PaymentsByType.Monthly.Amount += p.Amount
		case models.PaymentPitch:
			summary.PaymentsByType.Pitch.Count++
			summary.PaymentsByType.Pitch.Amount += p.Amount
		case models.PaymentMatchDay:
			summary.PaymentsByType.MatchDay.Count++
			summary.PaymentsByType.MatchDay.Amount += p.Amount
		}
	}
	for _, x := range expenses {
		summary.TotalExpenses += x.Amount
		b := summary.ExpensesByCategory[x.Category]
		b.Count++
		b.Amount += x.Amount
		summary.ExpensesByCategory[x.Category] = b
	}
	summary.NetAmount = summary.TotalPayments - summary.TotalExpenses

	return &DailyReport{
		SelectedDate: dateStr(date),
		Payments:     payments,
		Expenses:     expenses,
		Summary:      summary,
	}, nil
}
