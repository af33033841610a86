package entities

import (
	"github.com/google/uuid"
)

type MenuItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Price          float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Description    string    `gorm:"type:text" json:"description"`
	Category       string    `gorm:"index" json:"category"` // "starters", "mains", "desserts", "drinks"
	Icon           string    `json:"icon"`
	Tags           string    `json:"tags"` // comma separated
	HasAllergies   bool      `json:"has_allergies"`
	AllergyDetails string    `gorm:"type:text" json:"allergy_details"`
	ImageURL       string    `json:"image_url,omitempty"`

	Timestamp
}
