package repositories

import (
	"fmt"
	"sync"

	"github.com/shashiranjanraj/kashvi-shop/app/models"
	"github.com/shashiranjanraj/kashvi-shop/pkg/collection"
)

// ProductRepository is the ordered catalog. Names may repeat; every lookup
// acts on the first match.
type ProductRepository struct {
	mu       sync.RWMutex
	products []*models.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Add appends a product without any duplicate check.
func (r *ProductRepository) Add(name string, price float64) models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := &models.Product{Name: name, Price: price}
	r.products = append(r.products, p)
	return *p
}

// FindByName returns the first product called name.
func (r *ProductRepository) FindByName(name string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := collection.First(r.products, byName(name))
	if !ok {
		return models.Product{}, fmt.Errorf("product %q: %w", name, ErrNotFound)
	}
	return *p, nil
}

// Edit renames and reprices the first product called name in place.
func (r *ProductRepository) Edit(name, newName string, newPrice float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := collection.First(r.products, byName(name))
	if !ok {
		return fmt.Errorf("product %q: %w", name, ErrNotFound)
	}
	p.Name = newName
	p.Price = newPrice
	return nil
}

// Delete removes the first product called name.
func (r *ProductRepository) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, ok := collection.RemoveFirst(r.products, byName(name))
	if !ok {
		return fmt.Errorf("product %q: %w", name, ErrNotFound)
	}
	r.products = products
	return nil
}

// All returns copies of every product in storage order.
func (r *ProductRepository) All() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return collection.Map(r.products, func(p *models.Product) models.Product { return *p })
}

func (r *ProductRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}

func byName(name string) func(*models.Product) bool {
	return func(p *models.Product) bool { return p.Name == name }
}
