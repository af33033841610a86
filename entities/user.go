package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `json:"-"`
	Role     string    `gorm:"default:user" json:"role"`
	IsActive bool      `json:"is_active"`

	Timestamp
}
