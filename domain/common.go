package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageUnauthenticated      = "please sign in to continue"

	ErrParseUUID               = errors.New("failed to parse UUID")
	ErrPermissionDenied        = errors.New("insufficient permissions")
	ErrUnauthenticated         = errors.New("not authenticated")
	ErrConfirmationRequired    = errors.New("confirmation required")
	ErrRequestInProgress       = errors.New("another request is already in progress")
	ErrTokenNotFound           = errors.New("failed to token not found")
	ErrTokenInvalid            = errors.New("token invalid")
	ErrTokenExpired            = errors.New("token expired")
	ErrStorageNotConfigured    = errors.New("image storage is not configured")
	ErrNotificationUnavailable = errors.New("notification channel unavailable")
)

// ValidationError carries one message per offending field.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message, Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, message string) {
	if _, exists := e.Fields[field]; exists {
		return
	}
	e.Fields[field] = message
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
