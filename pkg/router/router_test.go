package router_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-shop/pkg/router"
)

// fakeTerm replays scripted selections and records printed lines.
type fakeTerm struct {
	choices []int
	lines   []string
}

func (f *fakeTerm) Println(a ...any) {
	for _, v := range a {
		f.lines = append(f.lines, v.(string))
	}
}

func (f *fakeTerm) ReadInt(string) (int, error) {
	if len(f.choices) == 0 {
		return 0, io.EOF
	}
	n := f.choices[0]
	f.choices = f.choices[1:]
	return n, nil
}

func record(calls *[]string, name string) router.Handler {
	return func(context.Context) error {
		*calls = append(*calls, name)
		return nil
	}
}

func TestOptionsAreNumberedInOrder(t *testing.T) {
	r := router.New()
	r.Menu("guest", "").
		Handle("Register", "guest.register", nil).
		Handle("Log in", "guest.login", nil)

	routes := r.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, router.Option{Menu: "guest", Key: 1, Label: "Register", Name: "guest.register"}, routes[0])
	assert.Equal(t, 2, routes[1].Key)
}

func TestDuplicateMenuPanics(t *testing.T) {
	r := router.New()
	r.Menu("guest", "")
	assert.Panics(t, func() { r.Menu("guest", "") })
}

func TestDispatchInvalidChoice(t *testing.T) {
	r := router.New()
	r.Menu("guest", "").Handle("Register", "guest.register", func(context.Context) error { return nil })

	for _, n := range []int{0, 2, -1} {
		_, err := r.Dispatch(context.Background(), "guest", n)
		assert.ErrorIs(t, err, router.ErrInvalidChoice)
	}
	_, err := r.Dispatch(context.Background(), "nope", 1)
	assert.Error(t, err)
}

func TestServeRedisplaysAfterInvalidChoice(t *testing.T) {
	var calls []string
	r := router.New()
	r.Menu("guest", "Welcome").Handle("Register", "guest.register", record(&calls, "register"))

	term := &fakeTerm{choices: []int{9, 1}}
	require.NoError(t, r.Serve(context.Background(), "guest", term))

	assert.Equal(t, []string{"register"}, calls)
	assert.Equal(t, []string{
		"Welcome", "1. Register",
		router.InvalidChoiceMessage,
		"Welcome", "1. Register",
	}, term.lines)
}

func TestLoopingMenuRunsUntilBack(t *testing.T) {
	var calls []string
	r := router.New()
	r.Menu("shop", "").
		Handle("Add", "shop.add", record(&calls, "add")).
		Handle("View", "shop.view", record(&calls, "view")).
		Back("Return", "shop.back")

	term := &fakeTerm{choices: []int{1, 1, 2, 3, 1}}
	require.NoError(t, r.Serve(context.Background(), "shop", term))

	assert.Equal(t, []string{"add", "add", "view"}, calls)
	assert.Equal(t, []int{1}, term.choices, "selection after Back is not consumed")
}

func TestSubmenuIsServedWithSameTerminal(t *testing.T) {
	var calls []string
	r := router.New()
	products := r.Menu("admin.products", "Products").Handle("List", "admin.products.list", record(&calls, "list"))
	r.Menu("admin", "Admin").Submenu("Products", "admin.products", products)

	term := &fakeTerm{choices: []int{1, 1}}
	require.NoError(t, r.Serve(context.Background(), "admin", term))
	assert.Equal(t, []string{"list"}, calls)
	assert.Contains(t, term.lines, "Products")
}

func TestMiddlewareOrderAndOptionContext(t *testing.T) {
	var trace []string
	mw := func(tag string) router.Middleware {
		return func(next router.Handler) router.Handler {
			return func(ctx context.Context) error {
				o, _ := router.OptionFromCtx(ctx)
				trace = append(trace, tag+":"+o.Name)
				return next(ctx)
			}
		}
	}

	r := router.New()
	r.Use(mw("router"))
	r.Menu("m", "", mw("menu")).Handle("Go", "m.go", record(&trace, "handler"), mw("option"))

	_, err := r.Dispatch(context.Background(), "m", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"router:m.go", "menu:m.go", "option:m.go", "handler"}, trace)
}

func TestServePropagatesHandlerErrorsAndEOF(t *testing.T) {
	boom := errors.New("boom")
	r := router.New()
	r.Menu("m", "").Handle("Fail", "m.fail", func(context.Context) error { return boom })

	assert.ErrorIs(t, r.Serve(context.Background(), "m", &fakeTerm{choices: []int{1}}), boom)
	assert.ErrorIs(t, r.Serve(context.Background(), "m", &fakeTerm{}), io.EOF)
}

func TestServeStopsOnCancelledContext(t *testing.T) {
	r := router.New()
	r.Menu("m", "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, r.Serve(ctx, "m", &fakeTerm{choices: []int{1}}), context.Canceled)
}
