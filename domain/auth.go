package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessLogin      = "Login successful! Redirecting to admin dashboard..."
	MessageSuccessLogout     = "signed out"
	MessageSuccessGetSession = "session retrieved successfully"

	MessageFailedLogin = "Login failed. Please try again."

	ErrInvalidCredentials = errors.New("Incorrect email or password. Please check your credentials and try again.")
	ErrUserInactive       = errors.New("Your account is disabled. Please contact an administrator.")
	ErrSessionNotFound    = errors.New("session not found")
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	SessionUser struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}

	LoginResponse struct {
		Token     string      `json:"token"`
		ExpiresAt time.Time   `json:"expires_at"`
		View      string      `json:"view"`
		User      SessionUser `json:"user"`
	}

	SessionResponse struct {
		Authenticated bool         `json:"authenticated"`
		View          string       `json:"view"`
		User          *SessionUser `json:"user,omitempty"`
		Permissions   []string     `json:"permissions"`
	}
)
