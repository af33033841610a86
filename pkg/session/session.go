package session

import (
	"errors"
	"slices"
	"time"
)

type (
	Capability string
	Role       string
	View       string
)

const (
	CapRead         Capability = "read"
	CapWrite        Capability = "write"
	CapDelete       Capability = "delete"
	CapManageUsers  Capability = "manage_users"
	CapViewAuditLog Capability = "view_audit_log"

	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"

	ViewLogin     View = "login"
	ViewDashboard View = "dashboard"
)

var ErrUnknownRole = errors.New("unknown role")

var permissions = map[Role][]Capability{
	RoleAdmin:   {CapRead, CapWrite, CapDelete, CapManageUsers, CapViewAuditLog},
	RoleManager: {CapRead, CapWrite},
	RoleUser:    {CapRead},
}

// Session is the authenticated identity a request acts as. A nil *Session is
// the unauthenticated session and grants nothing.
type Session struct {
	ID        string
	UserID    string
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != ""
}

func (s *Session) HasPermission(c Capability) bool {
	if !s.IsAuthenticated() {
		return false
	}
	return slices.Contains(permissions[s.Role], c)
}

// Permissions lists granted capabilities in table order.
func (s *Session) Permissions() []string {
	out := []string{}
	if !s.IsAuthenticated() {
		return out
	}
	for _, c := range permissions[s.Role] {
		out = append(out, string(c))
	}
	return out
}

func (s *Session) expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// ViewFor decides which region is visible: the login form or the dashboard.
// Nothing else in the codebase makes that call.
func ViewFor(s *Session) View {
	if s.IsAuthenticated() && s.HasPermission(CapRead) {
		return ViewDashboard
	}
	return ViewLogin
}

func IsKnownRole(role string) bool {
	_, ok := permissions[Role(role)]
	return ok
}
