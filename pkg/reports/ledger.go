package reports

import (
	"sort"
	"time"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
)

const dateLayout = "2006-01-02"

func dateStr(t time.Time) string {
	return t.Format(dateLayout)
}

func dateStrPtr(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := dateStr(t)
	return &s
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func sumPayments(payments []models.Payment) int64 {
	var total int64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

func sumExpenses(expenses []models.Expense) int64 {
	var total int64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

func distinctPlayers(payments []models.Payment) int {
	seen := make(map[uint]struct{}, len(payments))
	for _, p := range payments {
		seen[p.PlayerID] = struct{}{}
	}
	return len(seen)
}

// sortByRecency orders records most recent first: date desc, then createdAt
// desc, then amount desc. It sorts in place; callers own the slice.
func sortPaymentsByRecency(payments []models.Payment) {
	sort.SliceStable(payments, func(i, j int) bool {
		if !sameDay(payments[i].Date, payments[j].Date) {
			return payments[i].Date.After(payments[j].Date)
		}
		if !payments[i].CreatedAt.Equal(payments[j].CreatedAt) {
			return payments[i].CreatedAt.After(payments[j].CreatedAt)
		}
		return payments[i].Amount > payments[j].Amount
	})
}

func sortExpensesByRecency(expenses []models.Expense) {
	sort.SliceStable(expenses, func(i, j int) bool {
		if !sameDay(expenses[i].ExpenseDate, expenses[j].ExpenseDate) {
			return expenses[i].ExpenseDate.After(expenses[j].ExpenseDate)
		}
		if !expenses[i].CreatedAt.Equal(expenses[j].CreatedAt) {
			return expenses[i].CreatedAt.After(expenses[j].CreatedAt)
		}
		return expenses[i].Amount > expenses[j].Amount
	})
}
