// Package shell boots the shop and runs the console main loop.
package shell

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/shashiranjanraj/kashvi-shop/app/controllers"
	"github.com/shashiranjanraj/kashvi-shop/app/listeners"
	"github.com/shashiranjanraj/kashvi-shop/app/repositories"
	"github.com/shashiranjanraj/kashvi-shop/app/routes"
	"github.com/shashiranjanraj/kashvi-shop/config"
	"github.com/shashiranjanraj/kashvi-shop/database/seeders"
	"github.com/shashiranjanraj/kashvi-shop/pkg/console"
	"github.com/shashiranjanraj/kashvi-shop/pkg/event"
	"github.com/shashiranjanraj/kashvi-shop/pkg/logger"
	"github.com/shashiranjanraj/kashvi-shop/pkg/metrics"
	"github.com/shashiranjanraj/kashvi-shop/pkg/middleware"
	"github.com/shashiranjanraj/kashvi-shop/pkg/rbac"
	"github.com/shashiranjanraj/kashvi-shop/pkg/router"
	"github.com/shashiranjanraj/kashvi-shop/pkg/session"
)

const (
	AccessDeniedMessage  = "Access denied"
	InternalErrorMessage = "Internal error"
)

// Shell is one fully wired console session over a fresh, seeded store.
type Shell struct {
	io      *console.IO
	router  *router.Router
	session *session.Session
	store   *repositories.Store
	bus     *event.Bus
	metrics *metrics.Metrics
}

// New seeds a store and wires services, controllers, menus, listeners and
// metrics around in and out.
func New(in io.Reader, out io.Writer) (*Shell, error) {
	store := repositories.NewStore()
	if err := seeders.RunAll(store); err != nil {
		return nil, err
	}

	s := &Shell{
		io:      console.New(in, out),
		router:  router.New(),
		session: session.New(),
		store:   store,
		bus:     event.NewBus(),
		metrics: metrics.New(),
	}

	listeners.Register(s.bus)
	s.metrics.Listen(s.bus, store.Products.Len)

	s.router.Use(middleware.Logger, s.metrics.Middleware(), middleware.Recovery)
	ctrls := controllers.New(controllers.Deps{Console: s.io, Session: s.session}, store, s.bus)
	routes.RegisterMenus(s.router, ctrls, s.session)

	return s, nil
}

// Start loads configuration, points logs at stderr and runs a shell on in and
// out until input ends or ctx is cancelled.
func Start(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := config.Load(); err != nil {
		return err
	}
	logger.Configure(os.Stderr)

	s, err := New(in, out)
	if err != nil {
		return err
	}

	// A blocked read cannot observe ctx, so the loop runs on its own
	// goroutine and cancellation returns without waiting for it.
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		s.shutdown(ctx)
		return nil
	}
}

func (s *Shell) Router() *router.Router { return s.router }

func (s *Shell) Session() *session.Session { return s.session }

func (s *Shell) Store() *repositories.Store { return s.store }

func (s *Shell) Metrics() *metrics.Metrics { return s.metrics }

// Run serves the menu matching the session state, forever. It returns nil
// once input is exhausted or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			s.shutdown(ctx)
			return nil
		}

		sctx := s.session.Context(ctx)
		err := s.router.Serve(sctx, menuFor(s.session.State()), s.io)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF), ctx.Err() != nil:
			s.shutdown(ctx)
			return nil
		case errors.Is(err, rbac.ErrForbidden):
			logger.WithCtx(sctx).Warn("access denied", "error", err)
			s.io.Println(AccessDeniedMessage)
		default:
			logger.WithCtx(sctx).Error("menu action failed", "error", err)
			s.io.Println(InternalErrorMessage)
		}
	}
}

func menuFor(state session.State) string {
	switch state {
	case session.AuthenticatedAdmin:
		return routes.AdminMenu
	case session.AuthenticatedCustomer:
		return routes.CustomerMenu
	default:
		return routes.GuestMenu
	}
}

func (s *Shell) shutdown(ctx context.Context) {
	summary, err := s.metrics.Summary()
	if err != nil {
		logger.WithCtx(ctx).Warn("metrics summary failed", "error", err)
		return
	}
	attrs := make([]any, 0, 2*len(summary))
	for name, v := range summary {
		attrs = append(attrs, name, v)
	}
	logger.WithCtx(ctx).Info("session summary", attrs...)
}
