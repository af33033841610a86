package handlers

import (
	"errors"
	"restaurant-backend/domain"
	"restaurant-backend/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrPermissionDenied), errors.Is(err, domain.ErrUserInactive):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusUnauthorized
	case domain.IsValidationError(err),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrInvalidSlot),
		errors.Is(err, domain.ErrNoSlotSelected),
		errors.Is(err, domain.ErrNoFeaturedDishes),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidImageFormat):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrConfirmationRequired):
		return fiber.StatusPreconditionRequired
	case errors.Is(err, domain.ErrRequestInProgress):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrMenuItemNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrStorageNotConfigured):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

// fail maps a service error onto a status and a notice. Backend failures get
// the generic fallback message; anything the user can act on is shown as is.
func fail(c *fiber.Ctx, fallback string, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		log.Errorw(fallback, "path", c.Path(), "err", err)
		return presenters.ErrorResponse(c, status, fallback, err)
	}

	message := err.Error()
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		message = verr.Message
	}

	level := domain.NoticeError
	if errors.Is(err, domain.ErrNoSlotSelected) || errors.Is(err, domain.ErrConfirmationRequired) {
		level = domain.NoticeInfo
	}
	log.Warnw(message, "path", c.Path(), "status", status)
	return presenters.ErrorResponseWithNotice(c, status, message, err, domain.NewNotice(level, message))
}

// confirmOrFail asks the client to repeat the request with confirm=true,
// showing prompt, when the service refused an unconfirmed destructive call.
func confirmOrFail(c *fiber.Ctx, prompt, fallback string, err error) error {
	if errors.Is(err, domain.ErrConfirmationRequired) {
		return presenters.ErrorResponseWithNotice(c, fiber.StatusPreconditionRequired, prompt, err, domain.NewNotice(domain.NoticeInfo, prompt))
	}
	return fail(c, fallback, err)
}
