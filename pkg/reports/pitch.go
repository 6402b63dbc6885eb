package reports

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
	"github.com/Kasasatrevor256/ProFootball-Manager/pkg/fiscal"
)

// AllMonths selects every fiscal month from July 2025 through the current
// month in the pitch report.
const AllMonths = 0

// PitchRow is one (player, month) cell of the pitch dues report. Balance is
// clamped to zero: overpayment in a month is not shown as credit.
type PitchRow struct {
	PlayerID        uint    `json:"playerId"`
	PlayerName      string  `json:"playerName"`
	Phone           string  `json:"phone"`
	ExpectedAmount  int64   `json:"expectedAmount"`
	AmountPaid      int64   `json:"amountPaid"`
	Balance         int64   `json:"balance"`
	CarryoverAmount int64   `json:"carryoverAmount"`
	TotalAmount     int64   `json:"totalAmount"`
	PaymentCount    int     `json:"paymentCount"`
	LastPaymentDate *string `json:"lastPaymentDate"`
	Status          string  `json:"status"`
	MonthKey        string  `json:"monthKey"`
}

// PitchSummary aggregates the pitch report. Month is "all" or the numeric
// month that was requested.
type PitchSummary struct {
	Month           string `json:"month"`
	Year            int    `json:"year"`
	TotalPlayers    int    `json:"totalPlayers"`
	TotalExpected   int64  `json:"totalExpected"`
	TotalPaid       int64  `json:"totalPaid"`
	TotalBalance    int64  `json:"totalBalance"`
	TotalCarryover  int64  `json:"totalCarryover"`
	CompleteCount   int    `json:"completeCount"`
	IncompleteCount int    `json:"incompleteCount"`
}

// PitchReport holds one row per (player, month) pair.
type PitchReport struct {
	Summary      PitchSummary `json:"summary"`
	Data         []PitchRow   `json:"data"`
	TotalRecords int          `json:"totalRecords"`
}

// Pitch reconciles monthly pitch dues. month is 1-12 for a single month of
// the given year, or AllMonths for every tracked month. Carryover for a month
// covers the whole span from its fiscal-year start: expected dues for the
// elapsed months minus everything paid in that span, never negative.
func (e *Engine) Pitch(ctx context.Context, month int, year int) (*PitchReport, error) {
	var (
		players  []models.Player
		payments []models.Payment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		players, err = e.store.ListPlayers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = e.store.ListPayments(gctx, PaymentFilter{Type: models.PaymentPitch})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("pitch report: fetch data: %w", err)
	}

	var monthKeys []string
	if month == AllMonths {
		now := e.now()
		monthKeys = fiscal.EnumerateMonths(fiscal.FirstTrackedYear, fiscal.StartMonth, now.Year(), now.Month())
	} else {
		monthKeys = []string{fiscal.Key(year, time.Month(month))}
	}

	var rows []PitchRow
	for _, pl := range players {
		for _, key := range monthKeys {
			first, err := fiscal.ParseMonthKey(key)
			if err != nil {
				return nil, fmt.Errorf("pitch report: %w", err)
			}
			monthStart, monthEnd := fiscal.MonthBounds(first)

			var (
				paidInMonth int64
				count       int
				last        time.Time
			)
			for _, p := range payments {
				if p.PlayerID != pl.ID || p.Date.Before(monthStart) || p.Date.After(monthEnd) {
					continue
				}
				paidInMonth += p.Amount
				count++
				if p.Date.After(last) {
					last = p.Date
				}
			}

			// The fiscal start month itself has no prior span, so no carryover.
			var carry int64
			if monthStart.Month() > fiscal.StartMonth || monthStart.Year() > fiscal.FirstTrackedYear {
				fyYear := fiscal.FirstTrackedYear
				if monthStart.Year() >= fiscal.FirstTrackedYear+1 {
					fyYear = monthStart.Year() - 1
				}
				fyStart := fiscal.YearStart(fyYear)

				var paidInSpan int64
				for _, p := range payments {
					if p.PlayerID != pl.ID || p.Date.Before(fyStart) || !p.Date.Before(monthStart) {
						continue
					}
					paidInSpan += p.Amount
				}
				elapsed := fiscal.MonthsSince(fyStart, monthStart)
				carry = Carryover(int64(elapsed)*pl.PitchDue, paidInSpan)
			}

			total := pl.PitchDue + carry
			balance := total - paidInMonth
			if balance < 0 {
				balance = 0
			}

			rows = append(rows, PitchRow{
				PlayerID:        pl.ID,
				PlayerName:      pl.Name,
				Phone:           pl.Phone,
				ExpectedAmount:  pl.PitchDue,
				AmountPaid:      paidInMonth,
				Balance:         balance,
				CarryoverAmount: carry,
				TotalAmount:     total,
				PaymentCount:    count,
				LastPaymentDate: dateStrPtr(last),
				Status:          pitchStatus(balance),
				MonthKey:        key,
			})
		}
	}

	monthLabel := "all"
	if month != AllMonths {
		monthLabel = strconv.Itoa(month)
	}
	summary := PitchSummary{Month: monthLabel, Year: year}
	seen := make(map[uint]struct{})
	for _, r := range rows {
		seen[r.PlayerID] = struct{}{}
		summary.TotalExpected += r.TotalAmount
		summary.TotalPaid += r.AmountPaid
		summary.TotalBalance += r.Balance
		summary.TotalCarryover += r.CarryoverAmount
		if r.Status == StatusComplete {
			summary.CompleteCount++
		} else {
			summary.IncompleteCount++
		}
	}
	summary.TotalPlayers = len(seen)

	return &PitchReport{
		Summary:      summary,
		Data:         rows,
		TotalRecords: len(rows),
	}, nil
}
