package handlers

import (
	"restaurant-backend/domain"
	"restaurant-backend/internal/api/presenters"
	"restaurant-backend/internal/middleware"
	"restaurant-backend/pkg/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Session(c *fiber.Ctx) error
	}

	authHandler struct {
		guard     session.Guard
		validator *validator.Validate
	}
)

func NewAuthHandler(guard session.Guard, validator *validator.Validate) AuthHandler {
	return &authHandler{
		guard:     guard,
		validator: validator,
	}
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrInvalidCredentials.Error(), err)
	}

	sess, token, err := h.guard.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, domain.MessageFailedLogin, err)
	}

	return presenters.NoticeResponse(c, domain.LoginResponse{
		Token:     token,
		ExpiresAt: sess.ExpiresAt,
		View:      string(session.ViewFor(sess)),
		User:      sessionUser(sess),
	}, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *authHandler) Logout(c *fiber.Ctx) error {
	if sess := middleware.SessionFrom(c); sess != nil {
		if err := h.guard.SignOut(c.Context(), sess.ID); err != nil {
			return fail(c, domain.MessageFailedProcessRequest, err)
		}
	}
	return presenters.SuccessResponse(c, domain.SessionResponse{
		Authenticated: false,
		View:          string(session.ViewLogin),
		Permissions:   []string{},
	}, fiber.StatusOK, domain.MessageSuccessLogout)
}

// Session reports which view the caller should see. It never fails with 401.
func (h *authHandler) Session(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	res := domain.SessionResponse{
		Authenticated: sess.IsAuthenticated(),
		View:          string(session.ViewFor(sess)),
		Permissions:   sess.Permissions(),
	}
	if sess.IsAuthenticated() {
		user := sessionUser(sess)
		res.User = &user
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSession)
}

func sessionUser(sess *session.Session) domain.SessionUser {
	return domain.SessionUser{
		ID:    sess.UserID,
		Email: sess.Email,
		Role:  string(sess.Role),
	}
}
