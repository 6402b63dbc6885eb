package reports

import (
	"context"
	"errors"
	"time"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
)

// fakeStore is an in-memory Store with the same filter and ordering
// semantics as the database-backed implementation.
type fakeStore struct {
	players   []models.Player
	payments  []models.Payment
	expenses  []models.Expense
	matchDays []models.MatchDay

	failWith error
}

func (s *fakeStore) ListPlayers(ctx context.Context) ([]models.Player, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return append([]models.Player(nil), s.players...), nil
}

func (s *fakeStore) ListPayments(ctx context.Context, f PaymentFilter) ([]models.Payment, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []models.Payment
	for _, p := range s.payments {
		if f.PlayerID != 0 && p.PlayerID != f.PlayerID {
			continue
		}
		if f.Type != "" && p.PaymentType != f.Type {
			continue
		}
		if f.Date != nil && !sameDay(p.Date, *f.Date) {
			continue
		}
		if f.StartDate != nil && p.Date.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && p.Date.After(*f.EndDate) {
			continue
		}
		out = append(out, p)
	}
	sortPaymentsByRecency(out)
	return out, nil
}

func (s *fakeStore) ListExpenses(ctx context.Context, f ExpenseFilter) ([]models.Expense, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []models.Expense
	for _, x := range s.expenses {
		if f.Category != "" && x.Category != f.Category {
			continue
		}
		if f.MatchDayID != 0 && (x.MatchDayID == nil || *x.MatchDayID != f.MatchDayID) {
			continue
		}
		if f.Date != nil && !sameDay(x.ExpenseDate, *f.Date) {
			continue
		}
		if f.StartDate != nil && x.ExpenseDate.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && x.ExpenseDate.After(*f.EndDate) {
			continue
		}
		out = append(out, x)
	}
	sortExpensesByRecency(out)
	return out, nil
}

func (s *fakeStore) ListMatchDays(ctx context.Context, f MatchDayFilter) ([]models.MatchDay, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []models.MatchDay
	for _, md := range s.matchDays {
		if f.StartDate != nil && md.MatchDate.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && md.MatchDate.After(*f.EndDate) {
			continue
		}
		out = append(out, md)
	}
	for i := 0; i < len(out)/2; i++ {
		out[i], out[len(out)-1-i] = out[len(out)-1-i], out[i]
	}
	return out, nil
}

func (s *fakeStore) MatchDayByID(ctx context.Context, id uint) (*models.MatchDay, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, md := range s.matchDays {
		if md.ID == id {
			c := md
			return &c, nil
		}
	}
	return nil, ErrMatchDayNotFound
}

var errStoreDown = errors.New("connection refused")

func newTestEngine(s *fakeStore, now time.Time) *Engine {
	e := New(s)
	e.now = func() time.Time { return now }
	return e
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testPlayer(id uint, name string) models.Player {
	return models.Player{
		ID:         id,
		Name:       name,
		Phone:      "0700000000",
		AnnualDue:  models.DefaultAnnualDue,
		MonthlyDue: models.DefaultMonthlyDue,
		PitchDue:   models.DefaultPitchDue,
	}
}

func testPayment(playerID uint, typ string, amount int64, on time.Time) models.Payment {
	return models.Payment{
		PlayerID:    playerID,
		PlayerName:  "player",
		PaymentType: typ,
		Amount:      amount,
		Date:        on,
	}
}
