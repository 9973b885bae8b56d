// Package event provides a small synchronous event dispatcher.
//
// Services fire domain events (a customer registered, a cart checked out)
// and listeners such as the audit log and metrics react to them.
package event

import (
	"context"
	"sync"
)

// Names of the events fired by app/services.
const (
	CustomerRegistered = "customer.registered"
	CustomerDeleted    = "customer.deleted"
	LoginSucceeded     = "auth.login"
	LoginFailed        = "auth.login_failed"
	LoggedOut          = "auth.logout"
	PasswordChanged    = "auth.password_changed"
	PasswordReset      = "auth.password_reset"
	ProductAdded       = "product.added"
	ProductUpdated     = "product.updated"
	ProductDeleted     = "product.deleted"
	CartItemAdded      = "cart.item_added"
	CartItemRemoved    = "cart.item_removed"
	CartCheckedOut     = "cart.checked_out"
)

// Payload carries event attributes as key/value pairs.
type Payload map[string]any

// Handler receives an event name and its payload.
type Handler func(ctx context.Context, name string, payload Payload)

// Bus dispatches events to listeners in registration order.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	any      []Handler
}

func NewBus() *Bus {
	return &Bus{handlers: map[string][]Handler{}}
}

// Listen registers h for one event name.
func (b *Bus) Listen(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// ListenAll registers h for every event.
func (b *Bus) ListenAll(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.any = append(b.any, h)
}

// Fire dispatches synchronously. A nil Bus drops the event.
func (b *Bus) Fire(ctx context.Context, name string, payload Payload) {
	if b == nil {
		return
	}

	b.mu.RLock()
	hs := make([]Handler, 0, len(b.handlers[name])+len(b.any))
	hs = append(hs, b.handlers[name]...)
	hs = append(hs, b.any...)
	b.mu.RUnlock()

	for _, h := range hs {
		h(ctx, name, payload)
	}
}

// Flush removes all listeners.
func (b *Bus) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = map[string][]Handler{}
	b.any = nil
}
