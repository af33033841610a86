package domain

import "errors"

var (
	MessageSuccessLoadFeatured  = "featured dishes loaded"
	MessageSuccessSaveFeatured  = "Featured items updated successfully!"
	MessageSuccessClearFeatured = "All featured dishes cleared"
	MessageSuccessSelectSlot    = "slot selected"
	MessageSuccessAssignDish    = "dish assigned"
	MessageSuccessRemoveSlot    = "Item removed from featured selection"
	MessageSuccessGetFeatured   = "featured dishes retrieved successfully"

	MessageFailedSaveFeatured  = "Failed to update featured items"
	MessageFailedClearFeatured = "Failed to clear featured items"
	MessageFailedGetFeatured   = "Failed to load featured dishes"
	MessageFailedFeaturedBoard = "Failed to update featured selection"
	MessageNoFeaturedSelected  = "Please select at least one dish"
	MessageConfirmClear        = "Are you sure you want to clear all featured dishes?"

	ErrInvalidSlot      = errors.New("invalid slot number")
	ErrNoSlotSelected   = errors.New("Please select a slot first")
	ErrNoFeaturedDishes = errors.New(MessageNoFeaturedSelected)
)

const (
	SlotFilled = "filled"
	SlotEmpty  = "empty"
)

type (
	FeaturedDish struct {
		ID             string  `json:"id"`
		Name           string  `json:"name"`
		Price          float64 `json:"price"`
		Description    string  `json:"description"`
		Category       string  `json:"category"`
		Icon           string  `json:"icon,omitempty"`
		Tags           string  `json:"tags,omitempty"`
		HasAllergies   bool    `json:"has_allergies"`
		AllergyDetails string  `json:"allergy_details,omitempty"`
		ImageURL       string  `json:"image_url,omitempty"`
	}

	SlotView struct {
		Slot    int           `json:"slot"`
		State   string        `json:"state"` // "filled" or "empty"
		Pending bool          `json:"pending"`
		Dish    *FeaturedDish `json:"dish,omitempty"`
	}

	AvailableDish struct {
		FeaturedDish
		CategoryTitle string `json:"category_title"`
		Selected      bool   `json:"selected"`
	}

	FeaturedBoardResponse struct {
		Slots       []SlotView      `json:"slots"`
		PendingSlot int             `json:"pending_slot,omitempty"`
		Available   []AvailableDish `json:"available,omitempty"`
		Notices     []Notice        `json:"notices,omitempty"`
	}

	AssignFeaturedRequest struct {
		MenuItemID string `json:"menu_item_id" validate:"required,uuid"`
		Slot       int    `json:"slot" validate:"omitempty,min=1"`
	}

	PublicFeaturedDish struct {
		Slot int `json:"slot"`
		MenuCard
	}
)
