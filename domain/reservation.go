package domain

import (
	"errors"
	"time"
)

const (
	ReservationStatusPending = "pending"
)

var (
	MessageSuccessCreateReservation = "Reservation submitted successfully! We'll confirm within 2 hours."
	MessageSuccessGetTimeOptions    = "available times retrieved successfully"

	MessageFailedCreateReservation = "Failed to submit reservation. Please try again."
	MessageFailedValidation        = "Please correct the highlighted fields"
	MessageFailedGetTimeOptions    = "failed to retrieve available times"

	MessageFieldRequired = "This field is required"
	MessageInvalidEmail  = "Please enter a valid email address"
	MessageInvalidPhone  = "Please enter a valid phone number"
	MessagePastDate      = "Please select a future date"
	MessageDateTooFar    = "Reservations can only be made up to %d months in advance"
	MessageInvalidDate   = "Please select a valid date"
	MessageInvalidTime   = "Please select an available time"
	MessageInvalidGuests = "Please select a valid party size"

	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

type (
	CreateReservationRequest struct {
		Name            string `json:"name" form:"name" validate:"required,notblank"`
		Email           string `json:"email" form:"email" validate:"required,reservation_email"`
		Phone           string `json:"phone" form:"phone" validate:"required,reservation_phone"`
		Date            string `json:"date" form:"date" validate:"required,notblank"`
		Time            string `json:"time" form:"time" validate:"required,notblank"`
		Guests          int    `json:"guests" form:"guests" validate:"required"`
		SpecialRequests string `json:"special_requests" form:"special_requests"`
	}

	ReservationResponse struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Email           string    `json:"email"`
		Phone           string    `json:"phone"`
		Date            string    `json:"date"`
		Time            string    `json:"time"`
		Guests          int       `json:"guests"`
		SpecialRequests string    `json:"special_requests,omitempty"`
		SubmittedAt     time.Time `json:"submitted_at"`
		Status          string    `json:"status"`
	}

	TimeOption struct {
		Value   string `json:"value"`
		Display string `json:"display"`
	}

	TimeOptionsResponse struct {
		Date    string       `json:"date"`
		Weekday string       `json:"weekday"`
		Times   []TimeOption `json:"times"`
	}

	// ReservationNotice is what gets sent to the guest and to staff after a
	// reservation lands.
	ReservationNotice struct {
		Reservation ReservationResponse
	}
)
