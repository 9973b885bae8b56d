package routes

import (
	"github.com/shashiranjanraj/kashvi-shop/app/controllers"
	"github.com/shashiranjanraj/kashvi-shop/app/models"
	"github.com/shashiranjanraj/kashvi-shop/pkg/rbac"
	"github.com/shashiranjanraj/kashvi-shop/pkg/router"
)

// Names of the role menus served by the shell.
const (
	GuestMenu    = "guest"
	AdminMenu    = "admin"
	CustomerMenu = "customer"
)

// RegisterMenus builds the guest, admin and customer menu trees. Option
// order is part of the console contract.
func RegisterMenus(r *router.Router, c *controllers.Controllers, roles rbac.RoleSource) {
	admin := rbac.HasRole(roles, models.RoleAdmin)
	customer := rbac.HasRole(roles, models.RoleCustomer)

	r.Menu(GuestMenu, "Welcome to the shop", rbac.Guest(roles)).
		Handle("Register", "guest.register", c.Auth.Register).
		Handle("Log in", "guest.login", c.Auth.Login)

	passwords := r.Menu("admin.passwords", "Password management", admin).
		Handle("Reset a customer's password", "admin.passwords.reset", c.Auth.ResetPassword).
		Handle("Change my password", "admin.passwords.change", c.Auth.ChangePassword)

	customers := r.Menu("admin.customers", "Customer management", admin).
		Handle("List customers", "admin.customers.list", c.Customers.List).
		Handle("Delete a customer", "admin.customers.delete", c.Customers.Delete).
		Handle("Look up a customer", "admin.customers.query", c.Customers.Query)

	products := r.Menu("admin.products", "Product management", admin).
		Handle("List products", "admin.products.list", c.Products.List).
		Handle("Add a product", "admin.products.add", c.Products.Add).
		Handle("Edit a product", "admin.products.edit", c.Products.Edit).
		Handle("Delete a product", "admin.products.delete", c.Products.Delete).
		Handle("Look up a product", "admin.products.query", c.Products.Query)

	r.Menu(AdminMenu, "Administrator menu", admin).
		Submenu("Password management", "admin.passwords", passwords).
		Submenu("Customer management", "admin.customers", customers).
		Submenu("Product management", "admin.products", products).
		Handle("Log out", "admin.logout", c.Auth.Logout)

	shop := r.Menu("customer.shop", "Shopping", customer).
		Handle("Add an item to the cart", "customer.shop.add", c.Shop.Add).
		Handle("Remove an item from the cart", "customer.shop.remove", c.Shop.Remove).
		Handle("View cart", "customer.shop.cart", c.Shop.ViewCart).
		Handle("Check out", "customer.shop.checkout", c.Shop.Checkout).
		Handle("View purchase history", "customer.shop.history", c.Shop.History).
		Back("Return", "customer.shop.return")

	r.Menu(CustomerMenu, "Customer menu", customer).
		Handle("Change my password", "customer.password.change", c.Auth.ChangePassword).
		Handle("Reset a password", "customer.password.reset", c.Auth.ResetPassword).
		Submenu("Shop", "customer.shop", shop).
		Handle("Log out", "customer.logout", c.Auth.Logout)
}
