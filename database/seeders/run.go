// Package seeders provides a registry of functions that fill a fresh store.
//
// Usage (define a seeder in any file in this package):
//
//	func init() {
//	    seeders.Register("products", SeedProducts)
//	}
//
//	func SeedProducts(store *repositories.Store) error {
//	    store.Products.Add("Apple", 1.0)
//	    return nil
//	}
//
// The shell calls RunAll once at startup.
package seeders

import (
	"fmt"
	"sync"

	"github.com/shashiranjanraj/kashvi-shop/app/repositories"
	"github.com/shashiranjanraj/kashvi-shop/pkg/logger"
)

// SeederFunc is the signature for a seed function.
type SeederFunc func(store *repositories.Store) error

type seederEntry struct {
	name string
	fn   SeederFunc
}

var (
	mu      sync.Mutex
	entries []seederEntry
)

// Register adds a seeder to the global registry.
// Call this from init() in your seeder files.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seederEntry{name: name, fn: fn})
}

// Names lists the registered seeders in run order.
func Names() []string {
	mu.Lock()
	defer mu.Unlock()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// RunAll executes every registered seeder in registration order.
// It stops on the first error.
func RunAll(store *repositories.Store) error {
	mu.Lock()
	current := make([]seederEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	for _, e := range current {
		if err := e.fn(store); err != nil {
			return fmt.Errorf("seeder %q: %w", e.name, err)
		}
		logger.Debug("seeded", "seeder", e.name)
	}
	return nil
}
