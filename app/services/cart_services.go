package services

import (
	"context"

	"github.com/shashiranjanraj/kashvi-shop/app/models"
	"github.com/shashiranjanraj/kashvi-shop/pkg/event"
)

// CartService runs a customer's cart and checkout. Item names are free
// text and are not checked against the catalog.
type CartService struct {
	bus *event.Bus
}

func NewCartService(bus *event.Bus) *CartService {
	return &CartService{bus: bus}
}

func (s *CartService) Add(ctx context.Context, c *models.Customer, item string) {
	c.AddToCart(item)
	s.bus.Fire(ctx, event.CartItemAdded, event.Payload{"username": c.Username(), "item": item})
}

// Remove drops the first matching item. Removing an absent item is a no-op.
func (s *CartService) Remove(ctx context.Context, c *models.Customer, item string) bool {
	removed := c.RemoveFromCart(item)
	if removed {
		s.bus.Fire(ctx, event.CartItemRemoved, event.Payload{"username": c.Username(), "item": item})
	}
	return removed
}

func (s *CartService) Cart(c *models.Customer) []string {
	return c.Cart()
}

// Checkout moves the cart onto the history and returns the item count.
func (s *CartService) Checkout(ctx context.Context, c *models.Customer) int {
	n := c.Checkout()
	s.bus.Fire(ctx, event.CartCheckedOut, event.Payload{"username": c.Username(), "items": n})
	return n
}

func (s *CartService) History(c *models.Customer) []string {
	return c.History()
}
