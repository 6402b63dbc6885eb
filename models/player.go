package models

import "time"

// Default dues applied at registration when the request omits them,
// in the smallest currency unit.
const (
	DefaultAnnualDue  int64 = 150000
	DefaultMonthlyDue int64 = 10000
	DefaultPitchDue   int64 = 5000
)

// Player represents a registered club member and the expected amounts for
// each dues category. Reports treat a player row as an immutable snapshot.
type Player struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Phone       string    `gorm:"size:64;not null" json:"phone"`
	AnnualDue   int64     `gorm:"column:annual;not null;default:150000" json:"annual"`
	MonthlyDue  int64     `gorm:"column:monthly;not null;default:10000" json:"monthly"`
	PitchDue    int64     `gorm:"column:pitch;not null;default:5000" json:"pitch"`
	MatchDayDue *int64    `gorm:"column:match_day" json:"matchDay"`
}
