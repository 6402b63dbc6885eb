// Package storage adapts a GORM connection to the report engine's read-only
// Store boundary.
package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
	"github.com/Kasasatrevor256/ProFootball-Manager/pkg/reports"
)

const dateLayout = "2006-01-02"

// Store reads report snapshots from Postgres. Every method returns a fresh
// snapshot; ordering follows the contract documented on reports.Store.
type Store struct {
	db *gorm.DB
}

// New returns a Store backed by db.
func New(db *gorm.DB) Store {
	return Store{db: db}
}

func (s Store) ListPlayers(ctx context.Context) ([]models.Player, error) {
	var players []models.Player
	if err := s.db.WithContext(ctx).Order("name asc").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (s Store) ListPayments(ctx context.Context, f reports.PaymentFilter) ([]models.Payment, error) {
	q := s.db.WithContext(ctx).Model(&models.Payment{}).Order("date desc, created_at desc")
	if f.PlayerID != 0 {
		q = q.Where("player_id = ?", f.PlayerID)
	}
	if f.Type != "" {
		q = q.Where("payment_type = ?", f.Type)
	}
	if f.Date != nil {
		q = q.Where("date = ?", f.Date.Format(dateLayout))
	}
	if f.StartDate != nil {
		q = q.Where("date >= ?", f.StartDate.Format(dateLayout))
	}
	if f.EndDate != nil {
		q = q.Where("date <= ?", f.EndDate.Format(dateLayout))
	}
	var payments []models.Payment
	if err := q.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (s Store) ListExpenses(ctx context.Context, f reports.ExpenseFilter) ([]models.Expense, error) {
	q := s.db.WithContext(ctx).Model(&models.Expense{}).Order("expense_date desc, created_at desc")
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.MatchDayID != 0 {
		q = q.Where("match_day_id = ?", f.MatchDayID)
	}
	if f.Date != nil {
		q = q.Where("expense_date = ?", f.Date.Format(dateLayout))
	}
	if f.StartDate != nil {
		q = q.Where("expense_date >= ?", f.StartDate.Format(dateLayout))
	}
	if f.EndDate != nil {
		q = q.Where("expense_date <= ?", f.EndDate.Format(dateLayout))
	}
	var expenses []models.Expense
	if err := q.Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (s Store) ListMatchDays(ctx context.Context, f reports.MatchDayFilter) ([]models.MatchDay, error) {
	q := s.db.WithContext(ctx).Model(&models.MatchDay{}).Order("match_date desc")
	if f.StartDate != nil {
		q = q.Where("match_date >= ?", f.StartDate.Format(dateLayout))
	}
	if f.EndDate != nil {
		q = q.Where("match_date <= ?", f.EndDate.Format(dateLayout))
	}
	var matchDays []models.MatchDay
	if err := q.Find(&matchDays).Error; err != nil {
		return nil, err
	}
	return matchDays, nil
}

func (s Store) MatchDayByID(ctx context.Context, id uint) (*models.MatchDay, error) {
	var md models.MatchDay
	if err := s.db.WithContext(ctx).First(&md, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reports.ErrMatchDayNotFound
		}
		return nil, err
	}
	return &md, nil
}
