package repositories

import "github.com/shashiranjanraj/kashvi-shop/app/models"

// Store is the whole in-memory state of one shop process.
type Store struct {
	Customers *Registry[*models.Customer]
	Admins    *Registry[*models.Administrator]
	Products  *ProductRepository
}

// NewStore returns an empty store. Seeding is done by database/seeders.
func NewStore() *Store {
	return &Store{
		Customers: NewRegistry[*models.Customer](),
		Admins:    NewRegistry[*models.Administrator](),
		Products:  NewProductRepository(),
	}
}
