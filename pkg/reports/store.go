package reports

import (
	"context"
	"errors"
	"time"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
)

// ErrMatchDayNotFound is returned when a requested match day does not exist.
var ErrMatchDayNotFound = errors.New("match day not found")

// PaymentFilter narrows a payment listing. All set fields apply together.
// Date ranges are inclusive.
type PaymentFilter struct {
	PlayerID  uint
	Type      string
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time
}

// ExpenseFilter narrows an expense listing.
type ExpenseFilter struct {
	Category   string
	MatchDayID uint
	Date       *time.Time
	StartDate  *time.Time
	EndDate    *time.Time
}

// MatchDayFilter narrows a match-day listing by match date.
type MatchDayFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Store is the engine's read-only boundary to persistence. Every call
// returns a point-in-time snapshot; the engine never writes. Payments and
// expenses come back most-recent first, match days by match date descending.
type Store interface {
	ListPlayers(ctx context.Context) ([]models.Player, error)
	ListPayments(ctx context.Context, f PaymentFilter) ([]models.Payment, error)
	ListExpenses(ctx context.Context, f ExpenseFilter) ([]models.Expense, error)
	ListMatchDays(ctx context.Context, f MatchDayFilter) ([]models.MatchDay, error)
	MatchDayByID(ctx context.Context, id uint) (*models.MatchDay, error)
}
