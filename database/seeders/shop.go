package seeders

import (
	"github.com/shashiranjanraj/kashvi-shop/app/models"
	"github.com/shashiranjanraj/kashvi-shop/app/repositories"
)

func init() {
	Register("admins", SeedAdmins)
	Register("products", SeedProducts)
}

// SeedAdmins creates the built-in administrator.
func SeedAdmins(store *repositories.Store) error {
	return store.Admins.Register(models.NewAdministrator("admin", "admin123"))
}

// SeedProducts fills the starting catalog.
func SeedProducts(store *repositories.Store) error {
	store.Products.Add("Apple", 1.0)
	store.Products.Add("Banana", 0.5)
	return nil
}
