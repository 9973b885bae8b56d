package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/kashvi-shop/app/models"
	"github.com/shashiranjanraj/kashvi-shop/app/repositories"
	"github.com/shashiranjanraj/kashvi-shop/pkg/event"
)

// ProductService manages the catalog.
type ProductService struct {
	store *repositories.Store
	bus   *event.Bus
}

func NewProductService(store *repositories.Store, bus *event.Bus) *ProductService {
	return &ProductService{store: store, bus: bus}
}

func (s *ProductService) List() []models.Product {
	return s.store.Products.All()
}

// Add appends a product; duplicate names are allowed.
func (s *ProductService) Add(ctx context.Context, name string, price float64) models.Product {
	p := s.store.Products.Add(name, price)
	s.bus.Fire(ctx, event.ProductAdded, event.Payload{"name": name, "price": price})
	return p
}

// Query finds the first product called name.
func (s *ProductService) Query(name string) (models.Product, error) {
	p, err := s.store.Products.FindByName(name)
	if err != nil {
		return models.Product{}, fmt.Errorf("query product: %w", err)
	}
	return p, nil
}

func (s *ProductService) Exists(name string) bool {
	_, err := s.store.Products.FindByName(name)
	return err == nil
}

// Edit renames and reprices the first product called name.
func (s *ProductService) Edit(ctx context.Context, name, newName string, newPrice float64) error {
	if err := s.store.Products.Edit(name, newName, newPrice); err != nil {
		return fmt.Errorf("edit product: %w", err)
	}
	s.bus.Fire(ctx, event.ProductUpdated, event.Payload{"name": name, "new_name": newName, "price": newPrice})
	return nil
}

// Delete removes the first product called name.
func (s *ProductService) Delete(ctx context.Context, name string) error {
	if err := s.store.Products.Delete(name); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	s.bus.Fire(ctx, event.ProductDeleted, event.Payload{"name": name})
	return nil
}
