package models

import "time"

// Payment type values. PaymentType is stored as a plain string: historical
// imports may carry types outside this set and reports tolerate them.
const (
	PaymentAnnual   = "annual"
	PaymentMonthly  = "monthly"
	PaymentPitch    = "pitch"
	PaymentMatchDay = "matchday"
)

// Payment is a single dues payment. PlayerName is captured at creation time
// and is allowed to drift from the player's current name.
type Payment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	PlayerID    uint      `gorm:"index;not null" json:"playerId"`
	PlayerName  string    `gorm:"size:255;not null" json:"playerName"`
	PaymentType string    `gorm:"size:32;not null;index" json:"paymentType"`
	Amount      int64     `gorm:"not null" json:"amount"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	CreatedBy   string    `gorm:"size:255" json:"createdBy"`
}
