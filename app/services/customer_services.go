package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/kashvi-shop/app/repositories"
	"github.com/shashiranjanraj/kashvi-shop/pkg/event"
)

// CustomerService is the administrator's view of the customer registry.
type CustomerService struct {
	store *repositories.Store
	bus   *event.Bus
}

func NewCustomerService(store *repositories.Store, bus *event.Bus) *CustomerService {
	return &CustomerService{store: store, bus: bus}
}

// List returns every customer username in registration order.
func (s *CustomerService) List() []string {
	return s.store.Customers.List()
}

func (s *CustomerService) Exists(username string) bool {
	return s.store.Customers.Exists(username)
}

// Delete removes a customer together with its cart and history.
func (s *CustomerService) Delete(ctx context.Context, username string) error {
	if err := s.store.Customers.Delete(username); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	s.bus.Fire(ctx, event.CustomerDeleted, event.Payload{"username": username})
	return nil
}
