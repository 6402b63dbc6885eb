package models

import "time"

// Expense is an operational cost. Category is free-form: reports group by
// whatever strings occur, so new categories need no schema change.
// MatchDayID is optional and links match-day costs to their event.
type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Description string    `gorm:"size:512;not null" json:"description"`
	Category    string    `gorm:"size:128;not null;index" json:"category"`
	Amount      int64     `gorm:"not null" json:"amount"`
	ExpenseDate time.Time `gorm:"type:date;not null;index" json:"expenseDate"`
	MatchDayID  *uint     `gorm:"index" json:"matchDayId"`
	CreatedBy   string    `gorm:"size:255" json:"createdBy"`
}
