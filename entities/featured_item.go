package entities

import (
	"github.com/google/uuid"
)

type FeaturedItem struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SlotNumber int       `gorm:"uniqueIndex;not null" json:"slot_number"`
	MenuItemID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"menu_item_id"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE" json:"menu_item,omitempty"`
	Timestamp
}
