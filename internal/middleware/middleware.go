package middleware

import (
	"restaurant-backend/domain"
	"restaurant-backend/internal/api/presenters"
	"restaurant-backend/pkg/session"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const (
	sessionKey = "session"
	tokenKey   = "token"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(guard session.Guard) fiber.Handler
		OptionalAuthMiddleware(guard session.Guard) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	})
}

// AuthMiddleware rejects requests without a live session.
func (m *middleware) AuthMiddleware(guard session.Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthenticated, domain.ErrTokenNotFound)
		}

		sess, err := guard.Current(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthenticated, err)
		}

		c.Locals(sessionKey, sess)
		c.Locals(tokenKey, token)
		return c.Next()
	}
}

// OptionalAuthMiddleware attaches a session when the token resolves to one and
// lets every request through.
func (m *middleware) OptionalAuthMiddleware(guard session.Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			if sess, err := guard.Current(token); err == nil {
				c.Locals(sessionKey, sess)
				c.Locals(tokenKey, token)
			}
		}
		return c.Next()
	}
}

// SessionFrom returns the session attached by the auth middleware, or nil.
func SessionFrom(c *fiber.Ctx) *session.Session {
	sess, _ := c.Locals(sessionKey).(*session.Session)
	return sess
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
