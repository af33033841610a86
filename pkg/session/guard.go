package session

import (
	"context"
	"errors"
	"restaurant-backend/domain"
	"restaurant-backend/entities"
	"restaurant-backend/pkg/jwt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type EventType string

const (
	EventSignedIn  EventType = "SIGNED_IN"
	EventSignedOut EventType = "SIGNED_OUT"

	DefaultTTL = 2 * time.Hour
)

type (
	Event struct {
		Type    EventType
		Session Session
	}

	Listener func(Event)

	UserLookup interface {
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	}

	Guard interface {
		SignIn(ctx context.Context, email, password string) (*Session, string, error)
		SignOut(ctx context.Context, sessionID string) error
		Current(token string) (*Session, error)
		Subscribe(listener Listener) (unsubscribe func())
	}

	guard struct {
		users  UserLookup
		tokens jwt.JWTService
		ttl    time.Duration
		now    func() time.Time

		mu        sync.RWMutex
		sessions  map[string]*Session
		listeners map[int]Listener
		nextID    int
	}
)

func NewGuard(users UserLookup, tokens jwt.JWTService) Guard {
	return NewGuardWithClock(users, tokens, DefaultTTL, time.Now)
}

func NewGuardWithClock(users UserLookup, tokens jwt.JWTService, ttl time.Duration, now func() time.Time) Guard {
	return &guard{
		users:     users,
		tokens:    tokens,
		ttl:       ttl,
		now:       now,
		sessions:  map[string]*Session{},
		listeners: map[int]Listener{},
	}
}

func (g *guard) SignIn(ctx context.Context, email, password string) (*Session, string, error) {
	user, err := g.users.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", domain.ErrUserInactive
	}
	if !IsKnownRole(user.Role) {
		log.Warnw("user has unknown role, granting nothing", "user_id", user.ID, "role", user.Role)
	}

	g.sweep()

	now := g.now()
	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    user.ID.String(),
		Email:     user.Email,
		Role:      Role(user.Role),
		IssuedAt:  now,
		ExpiresAt: now.Add(g.ttl),
	}

	token, err := g.tokens.GenerateSessionToken(sess.ID, sess.UserID, string(sess.Role), sess.ExpiresAt)
	if err != nil {
		return nil, "", err
	}

	g.mu.Lock()
	g.sessions[sess.ID] = sess
	g.mu.Unlock()

	log.Infow("user signed in", "email", sess.Email, "role", sess.Role)
	g.emit(Event{Type: EventSignedIn, Session: *sess})

	out := *sess
	return &out, token, nil
}

// SignOut always succeeds locally; an unknown id just means there is nothing
// left to clear.
func (g *guard) SignOut(_ context.Context, sessionID string) error {
	g.mu.Lock()
	sess, ok := g.sessions[sessionID]
	delete(g.sessions, sessionID)
	g.mu.Unlock()

	if !ok {
		return nil
	}
	log.Infow("user signed out", "email", sess.Email)
	g.emit(Event{Type: EventSignedOut, Session: *sess})
	return nil
}

func (g *guard) Current(token string) (*Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	claims, err := g.tokens.ParseSessionToken(token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) && claims != nil {
			g.expire(claims.ID)
		}
		return nil, err
	}

	g.mu.RLock()
	sess, ok := g.sessions[claims.ID]
	g.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	if sess.expired(g.now()) {
		g.expire(sess.ID)
		return nil, domain.ErrTokenExpired
	}

	out := *sess
	return &out, nil
}

// expire drops a session that ran out and tells listeners it is gone.
func (g *guard) expire(sessionID string) {
	g.mu.Lock()
	sess, ok := g.sessions[sessionID]
	delete(g.sessions, sessionID)
	g.mu.Unlock()

	if !ok {
		return
	}
	log.Infow("session expired", "email", sess.Email)
	g.emit(Event{Type: EventSignedOut, Session: *sess})
}

// sweep expires every session past its deadline, including ones whose token
// is never presented again.
func (g *guard) sweep() {
	now := g.now()
	g.mu.RLock()
	var stale []string
	for id, sess := range g.sessions {
		if sess.expired(now) {
			stale = append(stale, id)
		}
	}
	g.mu.RUnlock()

	for _, id := range stale {
		g.expire(id)
	}
}

func (g *guard) Subscribe(listener Listener) func() {
	g.mu.Lock()
	id := g.nextID
	g.nextID++
	g.listeners[id] = listener
	g.mu.Unlock()

	return func() {
		g.mu.Lock()
		delete(g.listeners, id)
		g.mu.Unlock()
	}
}

func (g *guard) emit(ev Event) {
	g.mu.RLock()
	listeners := make([]Listener, 0, len(g.listeners))
	for _, l := range g.listeners {
		listeners = append(listeners, l)
	}
	g.mu.RUnlock()

	for _, l := range listeners {
		l(ev)
	}
}
