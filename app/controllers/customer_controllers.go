package controllers

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/kashvi-shop/app/repositories"
	"github.com/shashiranjanraj/kashvi-shop/app/services"
)

// CustomerController is the administrator's customer management.
type CustomerController struct {
	Deps
	service *services.CustomerService
}

func NewCustomerController(deps Deps, service *services.CustomerService) *CustomerController {
	return &CustomerController{Deps: deps, service: service}
}

func (c *CustomerController) List(context.Context) error {
	usernames := c.service.List()
	if len(usernames) == 0 {
		c.Console.Println("No customers")
		return nil
	}
	for _, u := range usernames {
		c.Console.Println(u)
	}
	return nil
}

func (c *CustomerController) Delete(ctx context.Context) error {
	username, err := c.Console.ReadLine("Enter the username to delete: ")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx, username); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.Console.Println("Customer not found")
			return nil
		}
		return err
	}
	c.Console.Println("Customer deleted")
	return nil
}

func (c *CustomerController) Query(context.Context) error {
	username, err := c.Console.ReadLine("Enter the username to look up: ")
	if err != nil {
		return err
	}

	if c.service.Exists(username) {
		c.Console.Println("Customer exists: " + username)
	} else {
		c.Console.Println("Customer not found")
	}
	return nil
}
