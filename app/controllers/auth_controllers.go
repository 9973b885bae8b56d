package controllers

import (
	"context"
	"errors"
	"fmt"

	"github.com/shashiranjanraj/kashvi-shop/app/models"
	"github.com/shashiranjanraj/kashvi-shop/app/repositories"
	"github.com/shashiranjanraj/kashvi-shop/app/services"
	"github.com/shashiranjanraj/kashvi-shop/pkg/logger"
)

// AuthController handles registration, login, logout and passwords for both
// roles.
type AuthController struct {
	Deps
	service *services.AuthService
}

func NewAuthController(deps Deps, service *services.AuthService) *AuthController {
	return &AuthController{Deps: deps, service: service}
}

func (c *AuthController) Register(ctx context.Context) error {
	username, err := c.Console.ReadLine("Enter username: ")
	if err != nil {
		return err
	}
	password, err := c.Console.ReadLine("Enter password: ")
	if err != nil {
		return err
	}

	if err := c.service.Register(ctx, username, password); err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			c.Console.Println("Username already exists")
			return nil
		}
		return err
	}
	c.Console.Println("Registration successful")
	return nil
}

func (c *AuthController) Login(ctx context.Context) error {
	username, err := c.Console.ReadLine("Enter username: ")
	if err != nil {
		return err
	}
	password, err := c.Console.ReadLine("Enter password: ")
	if err != nil {
		return err
	}

	account, err := c.service.Login(ctx, username, password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.Console.Println("Invalid username or password")
		return nil
	}
	if err != nil {
		return err
	}
	if err := c.Session.Login(account); err != nil {
		return fmt.Errorf("login %s: %w", username, err)
	}

	logger.WithCtx(c.Session.Context(ctx)).Info("session started", "username", username, "role", account.Role())
	if account.Role() == models.RoleAdmin {
		c.Console.Println("Admin login successful")
	} else {
		c.Console.Println("Customer login successful")
	}
	return nil
}

func (c *AuthController) Logout(ctx context.Context) error {
	account := c.Session.Account()
	if account != nil {
		logger.WithCtx(ctx).Info("session ended", "username", account.Username(), "duration", c.Session.Duration())
	}
	c.service.Logout(ctx, account)
	c.Session.Logout()
	c.Console.Println("Logged out")
	return nil
}

// ChangePassword sets the password of whoever is logged in.
func (c *AuthController) ChangePassword(ctx context.Context) error {
	account := c.Session.Account()
	if account == nil {
		return fmt.Errorf("change password: %w", errNoAccount)
	}
	password, err := c.Console.ReadLine("Enter new password: ")
	if err != nil {
		return err
	}
	c.service.ChangePassword(ctx, account, password)
	c.Console.Println("Password changed successfully")
	return nil
}

// ResetPassword overwrites a customer's password by username. The new
// password is only asked for once the customer is known to exist.
func (c *AuthController) ResetPassword(ctx context.Context) error {
	username, err := c.Console.ReadLine("Enter the customer's username: ")
	if err != nil {
		return err
	}
	if !c.service.CustomerExists(username) {
		c.Console.Println("Customer not found")
		return nil
	}
	password, err := c.Console.ReadLine("Enter new password: ")
	if err != nil {
		return err
	}

	if err := c.service.ResetCustomerPassword(ctx, username, password); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.Console.Println("Customer not found")
			return nil
		}
		return err
	}
	c.Console.Println("Password reset successful")
	return nil
}
