package models

import "time"

// User roles and statuses.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User is an application account (treasurer, admin). Players are not users.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Email          string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	HashedPassword []byte    `gorm:"not null" json:"-"`
	Role           string    `gorm:"size:32;not null;default:user" json:"role"`
	Status         string    `gorm:"size:32;not null;default:active" json:"status"`
}
