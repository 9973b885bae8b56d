package repositories

import (
	"fmt"
	"sync"

	"github.com/shashiranjanraj/kashvi-shop/app/models"
)

// Registry maps usernames to accounts of one variant. Listing follows
// insertion order.
type Registry[T models.Account] struct {
	mu       sync.RWMutex
	accounts map[string]T
	order    []string
}

// NewRegistry returns an empty registry.
func NewRegistry[T models.Account]() *Registry[T] {
	return &Registry[T]{accounts: make(map[string]T)}
}

// Register adds account under its username. The registry is left untouched
// when the name is taken.
func (r *Registry[T]) Register(account T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := account.Username()
	if _, ok := r.accounts[name]; ok {
		return fmt.Errorf("username %q: %w", name, ErrAlreadyExists)
	}
	r.accounts[name] = account
	r.order = append(r.order, name)
	return nil
}

// Find looks up an account by username.
func (r *Registry[T]) Find(username string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[username]
	if !ok {
		var zero T
		return zero, fmt.Errorf("username %q: %w", username, ErrNotFound)
	}
	return account, nil
}

func (r *Registry[T]) Exists(username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.accounts[username]
	return ok
}

// Delete removes an account by username.
func (r *Registry[T]) Delete(username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[username]; !ok {
		return fmt.Errorf("username %q: %w", username, ErrNotFound)
	}
	delete(r.accounts, username)
	for i, name := range r.order {
		if name == username {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns every username in insertion order.
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
