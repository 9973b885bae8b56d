// Package router maps numbered console menu selections to handlers.
//
// Menus are registered by name and their options are numbered in
// registration order, starting at 1. Every option also carries a dotted name
// ("admin.products.add") used by logs, metrics and `shop menu:list`.
//
//	r := router.New()
//	main := r.Menu("guest", "Welcome")
//	main.Handle("Register", "guest.register", auth.Register)
//	main.Handle("Log in", "guest.login", auth.Login)
//	err := r.Serve(ctx, "guest", term)
package router

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidChoice is returned by Dispatch for a number with no option.
var ErrInvalidChoice = errors.New("invalid choice")

const (
	DefaultPrompt        = "Choose an option: "
	InvalidChoiceMessage = "Invalid choice."
)

// Handler runs one menu action.
type Handler func(ctx context.Context) error

// Middleware wraps a Handler. The selected Option is available through
// OptionFromCtx.
type Middleware func(Handler) Handler

// Terminal is what Serve needs from the console.
type Terminal interface {
	Println(a ...any)
	ReadInt(prompt string) (int, error)
}

// Option is one numbered entry of a menu.
type Option struct {
	Menu  string
	Key   int
	Label string
	Name  string

	handler     Handler
	middlewares []Middleware
	back        bool
}

// Menu is a titled list of options. A looping menu keeps redisplaying after
// each action until its Back option is chosen.
type Menu struct {
	router      *Router
	name        string
	title       string
	options     []*Option
	middlewares []Middleware
	loop        bool
}

// Router owns every menu.
type Router struct {
	mu          sync.RWMutex
	menus       map[string]*Menu
	order       []string
	middlewares []Middleware
	prompt      string
}

func New() *Router {
	return &Router{
		menus:  make(map[string]*Menu),
		prompt: DefaultPrompt,
	}
}

// Use appends middleware applied to every option of every menu.
func (r *Router) Use(middlewares ...Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.middlewares = append(r.middlewares, middlewares...)
}

// Menu registers a new menu. It panics if name is already taken.
func (r *Router) Menu(name, title string, middlewares ...Middleware) *Menu {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.menus[name]; ok {
		panic(fmt.Sprintf("router: menu %q registered twice", name))
	}
	m := &Menu{
		router:      r,
		name:        name,
		title:       title,
		middlewares: append([]Middleware(nil), middlewares...),
	}
	r.menus[name] = m
	r.order = append(r.order, name)
	return m
}

func (m *Menu) Name() string { return m.name }

// Handle appends an option bound to h.
func (m *Menu) Handle(label, name string, h Handler, middlewares ...Middleware) *Menu {
	m.add(&Option{Label: label, Name: name, handler: h, middlewares: middlewares})
	return m
}

// Submenu appends an option that serves sub.
func (m *Menu) Submenu(label, name string, sub *Menu, middlewares ...Middleware) *Menu {
	h := func(ctx context.Context) error {
		term, ok := terminalFromCtx(ctx)
		if !ok {
			return fmt.Errorf("router: no terminal to serve %q", sub.name)
		}
		return m.router.Serve(ctx, sub.name, term)
	}
	return m.Handle(label, name, h, middlewares...)
}

// Back appends the option that leaves a looping menu and marks m as looping.
func (m *Menu) Back(label, name string) *Menu {
	m.loop = true
	m.add(&Option{Label: label, Name: name, back: true})
	return m
}

func (m *Menu) add(o *Option) {
	m.router.mu.Lock()
	defer m.router.mu.Unlock()

	o.Menu = m.name
	o.Key = len(m.options) + 1
	m.options = append(m.options, o)
}

// Routes lists every option of every menu in registration order.
func (r *Router) Routes() []Option {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Option
	for _, name := range r.order {
		for _, o := range r.menus[name].options {
			out = append(out, Option{Menu: o.Menu, Key: o.Key, Label: o.Label, Name: o.Name})
		}
	}
	return out
}

// Render writes the menu title and numbered options to term.
func (r *Router) Render(name string, term Terminal) error {
	m, err := r.lookup(name)
	if err != nil {
		return err
	}
	if m.title != "" {
		term.Println(m.title)
	}
	for _, o := range m.options {
		term.Println(fmt.Sprintf("%d. %s", o.Key, o.Label))
	}
	return nil
}

// Serve renders the named menu, reads one selection and runs it. Invalid
// selections print InvalidChoiceMessage and redisplay the menu. Looping
// menus continue until their Back option. Any other handler error stops
// Serve and is returned.
func (r *Router) Serve(ctx context.Context, name string, term Terminal) error {
	m, err := r.lookup(name)
	if err != nil {
		return err
	}
	ctx = withTerminal(ctx, term)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.Render(name, term); err != nil {
			return err
		}
		choice, err := term.ReadInt(r.prompt)
		if err != nil {
			return err
		}

		back, err := r.Dispatch(ctx, name, choice)
		switch {
		case errors.Is(err, ErrInvalidChoice):
			term.Println(InvalidChoiceMessage)
			continue
		case err != nil:
			return err
		case back || !m.loop:
			return nil
		}
	}
}

// Dispatch runs the option numbered choice of the named menu. It reports
// back=true when the option is a Back option.
func (r *Router) Dispatch(ctx context.Context, name string, choice int) (back bool, err error) {
	m, err := r.lookup(name)
	if err != nil {
		return false, err
	}
	if choice < 1 || choice > len(m.options) {
		return false, fmt.Errorf("menu %q option %d: %w", name, choice, ErrInvalidChoice)
	}

	o := m.options[choice-1]
	if o.back {
		return true, nil
	}

	r.mu.RLock()
	chain := make([]Middleware, 0, len(r.middlewares)+len(m.middlewares)+len(o.middlewares))
	chain = append(chain, r.middlewares...)
	chain = append(chain, m.middlewares...)
	chain = append(chain, o.middlewares...)
	r.mu.RUnlock()

	h := wrap(o.handler, chain...)
	return false, h(withOption(ctx, *o))
}

func (r *Router) lookup(name string) (*Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.menus[name]
	if !ok {
		return nil, fmt.Errorf("router: unknown menu %q", name)
	}
	return m, nil
}

func wrap(h Handler, middlewares ...Middleware) Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

type optionKey struct{}

type terminalKey struct{}

func withOption(ctx context.Context, o Option) context.Context {
	return context.WithValue(ctx, optionKey{}, o)
}

// OptionFromCtx returns the option being dispatched.
func OptionFromCtx(ctx context.Context) (Option, bool) {
	o, ok := ctx.Value(optionKey{}).(Option)
	return o, ok
}

func withTerminal(ctx context.Context, term Terminal) context.Context {
	return context.WithValue(ctx, terminalKey{}, term)
}

func terminalFromCtx(ctx context.Context) (Terminal, bool) {
	t, ok := ctx.Value(terminalKey{}).(Terminal)
	return t, ok
}
