// Package session tracks which account, if any, is logged in to the console.
//
// The session is a three-state machine:
//
//	Anonymous ──login(admin)────▶ AuthenticatedAdmin    ──logout──▶ Anonymous
//	Anonymous ──login(customer)─▶ AuthenticatedCustomer ──logout──▶ Anonymous
//
// Registration and failed logins leave it Anonymous.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/shashiranjanraj/kashvi-shop/app/models"
	"github.com/shashiranjanraj/kashvi-shop/pkg/reqid"
)

// State selects which menu the shell shows.
type State int

const (
	Anonymous State = iota
	AuthenticatedAdmin
	AuthenticatedCustomer
)

func (s State) String() string {
	switch s {
	case AuthenticatedAdmin:
		return "admin"
	case AuthenticatedCustomer:
		return "customer"
	default:
		return "anonymous"
	}
}

var (
	// ErrNotCustomer is returned by Customer when no customer is logged in.
	ErrNotCustomer = errors.New("session: no customer logged in")

	// ErrAlreadyLoggedIn guards against a second login without logout.
	ErrAlreadyLoggedIn = errors.New("session: already logged in")
)

// Session holds at most one logged-in account.
type Session struct {
	account models.Account
	id      string
	since   time.Time
}

func New() *Session {
	return &Session{}
}

// State derives the machine state from the account's role.
func (s *Session) State() State {
	if s.account == nil {
		return Anonymous
	}
	switch s.account.Role() {
	case models.RoleAdmin:
		return AuthenticatedAdmin
	case models.RoleCustomer:
		return AuthenticatedCustomer
	}
	return Anonymous
}

// Login makes account current and mints a new session ID.
func (s *Session) Login(account models.Account) error {
	if s.account != nil {
		return ErrAlreadyLoggedIn
	}
	s.account = account
	s.id = reqid.New()
	s.since = time.Now()
	return nil
}

// Logout returns to Anonymous. It is a no-op when nobody is logged in.
func (s *Session) Logout() {
	s.account = nil
	s.id = ""
	s.since = time.Time{}
}

// Account returns the current account, or nil.
func (s *Session) Account() models.Account { return s.account }

// Role returns the current role and whether anyone is logged in.
func (s *Session) Role() (models.Role, bool) {
	if s.account == nil {
		return "", false
	}
	return s.account.Role(), true
}

// Customer resolves the logged-in customer for the shopping menu.
func (s *Session) Customer() (*models.Customer, error) {
	c, ok := s.account.(*models.Customer)
	if !ok {
		return nil, ErrNotCustomer
	}
	return c, nil
}

// ID is the correlation ID of the current login, "" when anonymous.
func (s *Session) ID() string { return s.id }

// Duration reports how long the current login has lasted.
func (s *Session) Duration() time.Duration {
	if s.since.IsZero() {
		return 0
	}
	return time.Since(s.since)
}

// Context tags ctx with the session ID for logging.
func (s *Session) Context(ctx context.Context) context.Context {
	if s.id == "" {
		return ctx
	}
	return reqid.WithValue(ctx, s.id)
}
