package controllers

import (
	"github.com/shashiranjanraj/kashvi-shop/app/repositories"
	"github.com/shashiranjanraj/kashvi-shop/app/services"
	"github.com/shashiranjanraj/kashvi-shop/pkg/event"
	"github.com/shashiranjanraj/kashvi-shop/pkg/session"
)

// Console is the prompting I/O a controller needs; *console.IO satisfies it.
type Console interface {
	Println(a ...any)
	ReadLine(prompt string) (string, error)
	ReadPrice(prompt string) (float64, error)
}

// Controllers groups every console handler so routes can be registered in
// one call.
type Controllers struct {
	Auth      *AuthController
	Customers *CustomerController
	Products  *ProductController
	Shop      *ShopController
}

// Deps are the collaborators shared by every controller.
type Deps struct {
	Console Console
	Session *session.Session
}

// New builds every controller over one store and event bus.
func New(deps Deps, store *repositories.Store, bus *event.Bus) *Controllers {
	return &Controllers{
		Auth:      NewAuthController(deps, services.NewAuthService(store, bus)),
		Customers: NewCustomerController(deps, services.NewCustomerService(store, bus)),
		Products:  NewProductController(deps, services.NewProductService(store, bus)),
		Shop:      NewShopController(deps, services.NewCartService(bus)),
	}
}
