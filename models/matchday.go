package models

import "time"

// MatchDay is a club game. MatchDate is unique: match-day payments carry no
// foreign key and are attributed by date equality, so at most one match day
// may exist per calendar date.
type MatchDay struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	MatchDate time.Time `gorm:"type:date;not null;uniqueIndex" json:"matchDate"`
	Opponent  string    `gorm:"size:255" json:"opponent"`
	Venue     string    `gorm:"size:255" json:"venue"`
	MatchType string    `gorm:"size:64;not null" json:"matchType"`
}
