package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/kashvi-shop/app/models"
	"github.com/shashiranjanraj/kashvi-shop/app/repositories"
	"github.com/shashiranjanraj/kashvi-shop/pkg/event"
)

// AuthService handles registration, login and passwords.
type AuthService struct {
	store *repositories.Store
	bus   *event.Bus
}

func NewAuthService(store *repositories.Store, bus *event.Bus) *AuthService {
	return &AuthService{store: store, bus: bus}
}

// Register creates a customer. It never logs the customer in.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if err := s.store.Customers.Register(models.NewCustomer(username, password)); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	s.bus.Fire(ctx, event.CustomerRegistered, event.Payload{"username": username})
	return nil
}

// Login checks administrators first, then customers. An administrator whose
// username and password both match wins over a customer of the same name.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.Account, error) {
	if admin, err := s.store.Admins.Find(username); err == nil && admin.CheckPassword(password) {
		s.bus.Fire(ctx, event.LoginSucceeded, event.Payload{"username": username, "role": admin.Role()})
		return admin, nil
	}
	if customer, err := s.store.Customers.Find(username); err == nil && customer.CheckPassword(password) {
		s.bus.Fire(ctx, event.LoginSucceeded, event.Payload{"username": username, "role": customer.Role()})
		return customer, nil
	}

	s.bus.Fire(ctx, event.LoginFailed, event.Payload{"username": username})
	return nil, ErrInvalidCredentials
}

// Logout only announces the end of a login; the session is cleared by the
// caller.
func (s *AuthService) Logout(ctx context.Context, account models.Account) {
	if account == nil {
		return
	}
	s.bus.Fire(ctx, event.LoggedOut, event.Payload{"username": account.Username(), "role": account.Role()})
}

// ChangePassword sets the password of the given account. It always succeeds.
func (s *AuthService) ChangePassword(ctx context.Context, account models.Account, password string) {
	account.SetPassword(password)
	s.bus.Fire(ctx, event.PasswordChanged, event.Payload{"username": account.Username(), "role": account.Role()})
}

// CustomerExists lets callers check a target before asking for a password.
func (s *AuthService) CustomerExists(username string) bool {
	return s.store.Customers.Exists(username)
}

// ResetCustomerPassword overwrites any customer's password by username.
func (s *AuthService) ResetCustomerPassword(ctx context.Context, username, password string) error {
	customer, err := s.store.Customers.Find(username)
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	customer.SetPassword(password)
	s.bus.Fire(ctx, event.PasswordReset, event.Payload{"username": username})
	return nil
}
