package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddMenuItem    = "Menu item added successfully!"
	MessageSuccessUpdateMenuItem = "Menu item updated successfully!"
	MessageSuccessDeleteMenuItem = "Menu item deleted successfully!"
	MessageSuccessGetMenuItems   = "menu items retrieved successfully"
	MessageSuccessUploadImage    = "menu item image uploaded successfully"
	MessageSuccessGetMenu        = "menu retrieved successfully"

	MessageFailedAddMenuItem    = "Failed to save menu item"
	MessageFailedUpdateMenuItem = "Failed to update menu item"
	MessageFailedDeleteMenuItem = "Failed to delete menu item"
	MessageFailedGetMenuItems   = "Failed to load menu items"
	MessageFailedUploadImage    = "Failed to upload menu item image"
	MessageFailedGetMenu        = "Failed to load menu items. Please try again later."
	MessageRequiredFields       = "Please fill in all required fields"
	MessageConfirmDeleteItem    = "Are you sure you want to delete this menu item?"
	MessageNoMenuItems          = "No menu items available"

	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrInvalidImageFormat = errors.New("invalid image format")
)

type (
	MenuItemRequest struct {
		Name           string  `json:"name" form:"name" validate:"required,notblank"`
		Price          float64 `json:"price" form:"price" validate:"required,gt=0"`
		Description    string  `json:"description" form:"description" validate:"required,notblank"`
		Category       string  `json:"category" form:"category" validate:"required,notblank"`
		Icon           string  `json:"icon" form:"icon"`
		Tags           string  `json:"tags" form:"tags"`
		HasAllergies   bool    `json:"has_allergies" form:"has_allergies"`
		AllergyDetails string  `json:"allergy_details" form:"allergy_details"`
		ImageURL       string  `json:"image_url" form:"image_url" validate:"omitempty,url"`
	}

	UploadMenuImageRequest struct {
		Image *multipart.FileHeader `form:"image" validate:"required"`
	}

	MenuItemResponse struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Price          float64   `json:"price"`
		Description    string    `json:"description"`
		Category       string    `json:"category"`
		Icon           string    `json:"icon"`
		Tags           []string  `json:"tags"`
		HasAllergies   bool      `json:"has_allergies"`
		AllergyDetails string    `json:"allergy_details,omitempty"`
		ImageURL       string    `json:"image_url,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
	}

	// MenuItemListResponse is what the admin grid is rendered from after every
	// mutation.
	MenuItemListResponse struct {
		Items     []MenuItemResponse `json:"items"`
		Total     int                `json:"total"`
		CanEdit   bool               `json:"can_edit"`
		CanDelete bool               `json:"can_delete"`
	}

	MenuCard struct {
		ID           string   `json:"id"`
		Name         string   `json:"name"`
		Price        string   `json:"price"`
		Description  string   `json:"description"`
		Tags         []string `json:"tags"`
		ImageURL     string   `json:"image_url,omitempty"`
		Icon         string   `json:"icon,omitempty"`
		HasAllergies bool     `json:"has_allergies"`
	}

	MenuSection struct {
		Category     string     `json:"category"`
		Title        string     `json:"title"`
		Items        []MenuCard `json:"items"`
		EmptyMessage string     `json:"empty_message,omitempty"`
	}

	MenuCatalogResponse struct {
		Sections []MenuSection `json:"sections"`
		Total    int           `json:"total"`
	}
)
