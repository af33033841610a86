package presenters

import (
	"restaurant-backend/domain"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool           `json:"status"`
	Message string         `json:"message"`
	Data    any            `json:"data,omitempty"`
	Error   any            `json:"error,omitempty"`
	Notice  *domain.Notice `json:"notice,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// NoticeResponse is a success response that also asks the client to flash
// message as a transient notice.
func NoticeResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	notice := domain.NewNotice(domain.NoticeSuccess, message)
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
		Notice:  &notice,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	return ErrorResponseWithNotice(c, statusCode, message, err, domain.NewNotice(domain.NoticeError, message))
}

func ErrorResponseWithNotice(c *fiber.Ctx, statusCode int, message string, err error, notice domain.Notice) error {
	return c.Status(statusCode).JSON(Response{
		Status:  false,
		Message: message,
		Error:   errorDetail(statusCode, err),
		Notice:  &notice,
	})
}

// errorDetail keeps backend failures opaque and spells out field errors.
func errorDetail(statusCode int, err error) any {
	if err == nil || statusCode >= fiber.StatusInternalServerError {
		return nil
	}
	if v, ok := err.(*domain.ValidationError); ok && v.HasErrors() {
		return v.Fields
	}
	return err.Error()
}
