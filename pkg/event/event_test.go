package event_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/kashvi-shop/pkg/event"
)

func TestFireReachesNamedAndWildcardListeners(t *testing.T) {
	bus := event.NewBus()
	var got []string

	bus.Listen(event.CartCheckedOut, func(_ context.Context, name string, p event.Payload) {
		got = append(got, "named:"+name+":"+p["username"].(string))
	})
	bus.ListenAll(func(_ context.Context, name string, _ event.Payload) {
		got = append(got, "all:"+name)
	})

	bus.Fire(context.Background(), event.CartCheckedOut, event.Payload{"username": "bob"})
	bus.Fire(context.Background(), event.LoggedOut, nil)

	assert.Equal(t, []string{
		"named:cart.checked_out:bob",
		"all:cart.checked_out",
		"all:auth.logout",
	}, got)
}

func TestFlushAndNilBus(t *testing.T) {
	bus := event.NewBus()
	calls := 0
	bus.ListenAll(func(context.Context, string, event.Payload) { calls++ })
	bus.Flush()
	bus.Fire(context.Background(), event.ProductAdded, nil)
	assert.Zero(t, calls)

	var nilBus *event.Bus
	assert.NotPanics(t, func() { nilBus.Fire(context.Background(), event.ProductAdded, nil) })
}
