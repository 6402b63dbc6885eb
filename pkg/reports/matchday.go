package reports

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
)

// BreakdownEntry is an expense category total within one match day.
type BreakdownEntry struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// PaymentShare is one player's contribution on a match day.
type PaymentShare struct {
	PlayerName string `json:"playerName"`
	Amount     int64  `json:"amount"`
}

// MatchDaySummary is the financial outcome of a single match day. Expenses
// attach by foreign key; payments attach by date equality with the match
// date, which is why match dates are unique.
type MatchDaySummary struct {
	MatchDayID       uint             `json:"matchDayId"`
	MatchDate        string           `json:"matchDate"`
	Opponent         string           `json:"opponent"`
	Venue            string           `json:"venue"`
	MatchType        string           `json:"matchType"`
	TotalExpenses    int64            `json:"totalExpenses"`
	TotalPayments    int64            `json:"totalPayments"`
	NetBalance       int64            `json:"netBalance"`
	ExpenseBreakdown []BreakdownEntry `json:"expenseBreakdown"`
	PaymentBreakdown []PaymentShare   `json:"paymentBreakdown"`
}

// MatchDayDetail is the single-match-day report, including the raw records
// behind the summary.
type MatchDayDetail struct {
	MatchDaySummary
	Expenses []models.Expense `json:"expenses"`
	Payments []models.Payment `json:"payments"`
}

// MatchDayList is the list-mode match-day report.
type MatchDayList struct {
	Data         []MatchDaySummary `json:"data"`
	TotalRecords int               `json:"totalRecords"`
}

// MatchDay reports a single match day by id. Returns ErrMatchDayNotFound
// when the id does not exist.
func (e *Engine) MatchDay(ctx context.Context, id uint) (*MatchDayDetail, error) {
	md, err := e.store.MatchDayByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var (
		expenses []models.Expense
		payments []models.Payment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = e.store.ListExpenses(gctx, ExpenseFilter{MatchDayID: md.ID})
		return err
	})
	g.Go(func() error {
		var err error
		date := md.MatchDate
		payments, err = e.store.ListPayments(gctx, PaymentFilter{Type: models.PaymentMatchDay, Date: &date})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("match day report: fetch data: %w", err)
	}

	return &MatchDayDetail{
		MatchDaySummary: buildMatchDaySummary(*md, expenses, payments),
		Expenses:        expenses,
		Payments:        payments,
	}, nil
}

// MatchDays reports every match day whose date falls within the optional
// inclusive range, most recent match first.
func (e *Engine) MatchDays(ctx context.Context, start, end *time.Time) (*MatchDayList, error) {
	var (
		matchDays []models.MatchDay
		expenses  []models.Expense
		payments  []models.Payment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		matchDays, err = e.store.ListMatchDays(gctx, MatchDayFilter{StartDate: start, EndDate: end})
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = e.store.ListExpenses(gctx, ExpenseFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = e.store.ListPayments(gctx, PaymentFilter{Type: models.PaymentMatchDay})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("match day report: fetch data: %w", err)
	}

	rows := make([]MatchDaySummary, 0, len(matchDays))
	for _, md := range matchDays {
		var mdExpenses []models.Expense
		for _, x := range expenses {
			if x.MatchDayID != nil && *x.MatchDayID == md.ID {
				mdExpenses = append(mdExpenses, x)
			}
		}
		var mdPayments []models.Payment
		for _, p := range payments {
			if sameDay(p.Date, md.MatchDate) {
				mdPayments = append(mdPayments, p)
			}
		}
		rows = append(rows, buildMatchDaySummary(md, mdExpenses, mdPayments))
	}

	return &MatchDayList{Data: rows, TotalRecords: len(rows)}, nil
}

// buildMatchDaySummary is shared by both modes so a match day queried by id
// reports the same totals it shows in a list.
func buildMatchDaySummary(md models.MatchDay, expenses []models.Expense, payments []models.Payment) MatchDaySummary {
	breakdown := make([]BreakdownEntry, 0, len(expenses))
	index := make(map[string]int, len(expenses))
	for _, x := range expenses {
		if i, ok := index[x.Category]; ok {
			breakdown[i].Amount += x.Amount
			continue
		}
		index[x.Category] = len(breakdown)
		breakdown = append(breakdown, BreakdownEntry{Category: x.Category, Amount: x.Amount})
	}

	shares := make([]PaymentShare, 0, len(payments))
	for _, p := range payments {
		shares = append(shares, PaymentShare{PlayerName: p.PlayerName, Amount: p.Amount})
	}

	totalExpenses := sumExpenses(expenses)
	totalPayments := sumPayments(payments)
	return MatchDaySummary{
		MatchDayID:       md.ID,
		MatchDate:        dateStr(md.MatchDate),
		Opponent:         md.Opponent,
		Venue:            md.Venue,
		MatchType:        md.MatchType,
		TotalExpenses:    totalExpenses,
		TotalPayments:    totalPayments,
		NetBalance:       totalPayments - totalExpenses,
		ExpenseBreakdown: breakdown,
		PaymentBreakdown: shares,
	}
}
