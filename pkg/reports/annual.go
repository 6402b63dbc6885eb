package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
)

// AnnualRow is one player's reconciled annual dues for a calendar year.
// Balance is totalDue minus amountPaid and may go negative on overpayment.
type AnnualRow struct {
	PlayerID        uint    `json:"playerId"`
	PlayerName      string  `json:"playerName"`
	Phone           string  `json:"phone"`
	ExpectedAmount  int64   `json:"expectedAmount"`
	AmountPaid      int64   `json:"amountPaid"`
	Balance         int64   `json:"balance"`
	Carryover       int64   `json:"carryover"`
	TotalDue        int64   `json:"totalDue"`
	LastPaymentDate *string `json:"lastPaymentDate"`
	PaymentCount    int     `json:"paymentCount"`
	Status          string  `json:"status"`
}

// AnnualSummary aggregates the annual report.
type AnnualSummary struct {
	Year           int   `json:"year"`
	TotalPlayers   int   `json:"totalPlayers"`
	TotalExpected  int64 `json:"totalExpected"`
	TotalPaid      int64 `json:"totalPaid"`
	TotalBalance   int64 `json:"totalBalance"`
	TotalCarryover int64 `json:"totalCarryover"`
	CompleteCount  int   `json:"completeCount"`
	PartialCount   int   `json:"partialCount"`
	UnpaidCount    int   `json:"unpaidCount"`
}

// AnnualReport lists every player's annual dues position, most owed first.
type AnnualReport struct {
	Year         int           `json:"year"`
	Summary      AnnualSummary `json:"summary"`
	Data         []AnnualRow   `json:"data"`
	TotalRecords int           `json:"totalRecords"`
}

// Annual reconciles annual dues for the given calendar year. Carryover from
// the prior year applies from CarryoverCutoverYear onward. Payments whose
// player no longer exists are skipped.
func (e *Engine) Annual(ctx context.Context, year int) (*AnnualReport, error) {
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
		payments, err = e.store.ListPayments(gctx, PaymentFilter{Type: models.PaymentAnnual})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("annual report: fetch data: %w", err)
	}

	rows := make([]AnnualRow, 0, len(players))
	for _, pl := range players {
		var (
			paid      int64
			priorPaid int64
			count     int
			last      time.Time
		)
		for _, p := range payments {
			if p.PlayerID != pl.ID {
				continue
			}
			switch p.Date.Year() {
			case year:
				paid += p.Amount
				count++
				if p.Date.After(last) {
					last = p.Date
				}
			case year - 1:
				priorPaid += p.Amount
			}
		}

		expected := pl.AnnualDue
		if expected == 0 {
			expected = models.DefaultAnnualDue
		}
		var carry int64
		if year >= CarryoverCutoverYear {
			carry = Carryover(expected, priorPaid)
		}
		totalDue := expected + carry
		balance := totalDue - paid

		rows = append(rows, AnnualRow{
			PlayerID:        pl.ID,
			PlayerName:      pl.Name,
			Phone:           pl.Phone,
			ExpectedAmount:  expected,
			AmountPaid:      paid,
			Balance:         balance,
			Carryover:       carry,
			TotalDue:        totalDue,
			LastPaymentDate: dateStrPtr(last),
			PaymentCount:    count,
			Status:          annualStatus(paid, totalDue),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Balance > rows[j].Balance })

	summary := AnnualSummary{Year: year, TotalPlayers: len(rows)}
	for _, r := range rows {
		summary.TotalExpected += r.TotalDue
		summary.TotalPaid += r.AmountPaid
		summary.TotalBalance += r.Balance
		summary.TotalCarryover += r.Carryover
		switch r.Status {
		case StatusComplete:
			summary.CompleteCount++
		case StatusPartial:
			summary.PartialCount++
		default:
			summary.UnpaidCount++
		}
	}

	return &AnnualReport{
		Year:         year,
		Summary:      summary,
		Data:         rows,
		TotalRecords: len(rows),
	}, nil
}
