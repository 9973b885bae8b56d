package controllers

import (
	"context"

	"github.com/shashiranjanraj/kashvi-shop/app/services"
)

// ShopController runs the shopping submenu of the logged-in customer. Every
// handler resolves the customer from the session and fails fast when the
// session holds anyone else.
type ShopController struct {
	Deps
	service *services.CartService
}

func NewShopController(deps Deps, service *services.CartService) *ShopController {
	return &ShopController{Deps: deps, service: service}
}

func (c *ShopController) Add(ctx context.Context) error {
	customer, err := c.Session.Customer()
	if err != nil {
		return err
	}
	item, err := c.Console.ReadLine("Enter the product name to add to your cart: ")
	if err != nil {
		return err
	}

	c.service.Add(ctx, customer, item)
	c.Console.Println("Item added to cart")
	return nil
}

// Remove confirms even when the item was not in the cart.
func (c *ShopController) Remove(ctx context.Context) error {
	customer, err := c.Session.Customer()
	if err != nil {
		return err
	}
	item, err := c.Console.ReadLine("Enter the product name to remove from your cart: ")
	if err != nil {
		return err
	}

	c.service.Remove(ctx, customer, item)
	c.Console.Println("Item removed from cart")
	return nil
}

func (c *ShopController) ViewCart(context.Context) error {
	customer, err := c.Session.Customer()
	if err != nil {
		return err
	}
	c.printItems(c.service.Cart(customer), "Your cart is empty", "Items in your cart:")
	return nil
}

func (c *ShopController) Checkout(ctx context.Context) error {
	customer, err := c.Session.Customer()
	if err != nil {
		return err
	}
	c.service.Checkout(ctx, customer)
	c.Console.Println("Checkout complete")
	return nil
}

func (c *ShopController) History(context.Context) error {
	customer, err := c.Session.Customer()
	if err != nil {
		return err
	}
	c.printItems(c.service.History(customer), "No purchase history", "Purchase history:")
	return nil
}

func (c *ShopController) printItems(items []string, empty, heading string) {
	if len(items) == 0 {
		c.Console.Println(empty)
		return
	}
	c.Console.Println(heading)
	for _, item := range items {
		c.Console.Println(item)
	}
}
