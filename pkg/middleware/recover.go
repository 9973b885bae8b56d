package middleware

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/shashiranjanraj/kashvi-shop/pkg/logger"
	"github.com/shashiranjanraj/kashvi-shop/pkg/router"
)

// ErrPanic wraps a panic recovered from a menu action.
var ErrPanic = errors.New("menu action panicked")

// Recovery turns a panic in a menu action into an ErrPanic error after
// logging the stack, so one broken action does not end the session.
// Register it after Logger so the failure is also logged as an action
// outcome.
//
//	r.Use(middleware.Logger)
//	r.Use(middleware.Recovery)
func Recovery(next router.Handler) router.Handler {
	return func(ctx context.Context) (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				name := ""
				if o, ok := router.OptionFromCtx(ctx); ok {
					name = o.Name
				}
				logger.WithCtx(ctx).Error("panic recovered",
					"error", fmt.Sprintf("%v", rec),
					"stack", string(debug.Stack()),
					"action", name,
				)
				err = fmt.Errorf("%s: %v: %w", name, rec, ErrPanic)
			}
		}()
		return next(ctx)
	}
}
