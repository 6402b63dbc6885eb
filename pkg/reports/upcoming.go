package reports

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
	"github.com/Kasasatrevor256/ProFootball-Manager/pkg/fiscal"
)

// DefaultUpcomingLimit caps the upcoming-payments report when the caller
// gives no limit.
const DefaultUpcomingLimit = 10

// missedMonthDays approximates one missed month when reporting how far
// overdue a player is.
const missedMonthDays = 30

// UpcomingPlayer is the player snapshot carried in the upcoming report.
type UpcomingPlayer struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Annual  int64  `json:"annual"`
	Monthly int64  `json:"monthly"`
	Pitch   int64  `json:"pitch"`
}

// LastPayment is the most recent payment of any type for a player.
type LastPayment struct {
	PaymentType string `json:"paymentType"`
	Amount      int64  `json:"amount"`
	Date        string `json:"date"`
}

// PlayerPaymentStatus classifies a player's monthly payment cadence.
type PlayerPaymentStatus struct {
	Player         UpcomingPlayer `json:"player"`
	LastPayment    *LastPayment   `json:"lastPayment"`
	IsDue          bool           `json:"isDue"`
	IsOverdue      bool           `json:"isOverdue"`
	DaysOverdue    int            `json:"daysOverdue"`
	ExpectedAmount int64          `json:"expectedAmount"`
	PaymentType    string         `json:"paymentType"`
	NextDueDate    *string        `json:"nextDueDate"`
	Status         string         `json:"status"`
}

// UpcomingPayments lists players behind on their monthly cadence, most
// overdue first, truncated to limit. A player with an annual payment in the
// current fiscal year has satisfied the year and is never listed. Each
// missed month counts as 30 days overdue.
func (e *Engine) UpcomingPayments(ctx context.Context, limit int) ([]PlayerPaymentStatus, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

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
		payments, err = e.store.ListPayments(gctx, PaymentFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("upcoming payments: fetch data: %w", err)
	}
	sortPaymentsByRecency(payments)

	now := e.now()
	fyStart := fiscal.YearStartFor(now)
	elapsed := fiscal.MonthsSince(fyStart, now)

	out := make([]PlayerPaymentStatus, 0, len(players))
	for _, pl := range players {
		var (
			last        *LastPayment
			hasAnnual   bool
			monthlyPaid int
		)
		for _, p := range payments {
			if p.PlayerID != pl.ID {
				continue
			}
			if last == nil {
				last = &LastPayment{PaymentType: p.PaymentType, Amount: p.Amount, Date: dateStr(p.Date)}
			}
			if p.Date.Before(fyStart) {
				continue
			}
			switch p.PaymentType {
			case models.PaymentAnnual:
				hasAnnual = true
			case models.PaymentMonthly:
				monthlyPaid++
			}
		}
		if hasAnnual {
			// An annual payment covers the whole year's cadence.
			continue
		}

		expectedMonthly := elapsed + 1
		missed := expectedMonthly - monthlyPaid
		if missed <= 0 {
			continue
		}

		status := PlayerPaymentStatus{
			Player: UpcomingPlayer{
				ID:      pl.ID,
				Name:    pl.Name,
				Phone:   pl.Phone,
				Annual:  pl.AnnualDue,
				Monthly: pl.MonthlyDue,
				Pitch:   pl.PitchDue,
			},
			LastPayment:    last,
			IsDue:          true,
			ExpectedAmount: pl.MonthlyDue,
			PaymentType:    models.PaymentMonthly,
			Status:         StatusDueSoon,
		}
		if missed > 1 {
			status.IsOverdue = true
			status.DaysOverdue = missed * missedMonthDays
			status.Status = StatusOverdue
		}
		out = append(out, status)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysOverdue > out[j].DaysOverdue })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
