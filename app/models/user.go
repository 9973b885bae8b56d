package models

import (
	"sync"

	"github.com/shashiranjanraj/kashvi-shop/pkg/collection"
)

// Role discriminates the two account variants.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Account is the capability shared by administrators and customers.
type Account interface {
	Username() string
	Role() Role
	CheckPassword(candidate string) bool
	SetPassword(password string)
}

// Credentials is the username/password record embedded by both variants.
// The username never changes after construction.
type Credentials struct {
	username string
	password string
}

func (c *Credentials) Username() string { return c.username }

// CheckPassword is a plain string comparison; passwords are not hashed.
func (c *Credentials) CheckPassword(candidate string) bool {
	return c.password == candidate
}

func (c *Credentials) SetPassword(password string) {
	c.password = password
}

// Administrator manages customers and the catalog.
type Administrator struct {
	Credentials
}

func NewAdministrator(username, password string) *Administrator {
	return &Administrator{Credentials{username: username, password: password}}
}

func (*Administrator) Role() Role { return RoleAdmin }

// Customer owns a cart and a purchase history. Both hold free-text product
// names in insertion order, duplicates included.
type Customer struct {
	Credentials

	mu      sync.Mutex
	cart    []string
	history []string
}

func NewCustomer(username, password string) *Customer {
	return &Customer{Credentials: Credentials{username: username, password: password}}
}

func (*Customer) Role() Role { return RoleCustomer }

// AddToCart appends name to the cart.
func (c *Customer) AddToCart(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart = append(c.cart, name)
}

// RemoveFromCart drops the first entry equal to name and reports whether one
// was found.
func (c *Customer) RemoveFromCart(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	var removed bool
	c.cart, removed = collection.RemoveFirst(c.cart, func(item string) bool { return item == name })
	return removed
}

// Cart returns a copy of the cart.
func (c *Customer) Cart() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.cart...)
}

// History returns a copy of the purchase history.
func (c *Customer) History() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.history...)
}

// Checkout moves the whole cart onto the end of the history and empties the
// cart. It returns how many items moved.
func (c *Customer) Checkout() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.cart)
	c.history = append(c.history, c.cart...)
	c.cart = nil
	return n
}
