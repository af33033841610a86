package entities

import (
	"github.com/google/uuid"
	"time"
)

type Reservation struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name            string    `json:"name"`
	Email           string    `gorm:"index" json:"email"`
	Phone           string    `json:"phone"`
	Date            string    `gorm:"type:varchar(10);index" json:"date"` // YYYY-MM-DD
	Time            string    `gorm:"type:varchar(5)" json:"time"`        // HH:MM
	Guests          int       `json:"guests"`
	SpecialRequests string    `gorm:"type:text" json:"special_requests"`
	SubmittedAt     time.Time `json:"submitted_at"`
	Status          string    `gorm:"default:pending" json:"status"` // "pending", "confirmed", "cancelled"

	Timestamp
}
