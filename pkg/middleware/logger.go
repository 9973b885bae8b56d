// Package middleware holds router middleware shared by every menu.
package middleware

import (
	"context"
	"time"

	"github.com/shashiranjanraj/kashvi-shop/pkg/logger"
	"github.com/shashiranjanraj/kashvi-shop/pkg/router"
)

// Logger logs each menu action with its option name, menu, duration and
// error at debug level, tagged with the session ID when one is in ctx.
func Logger(next router.Handler) router.Handler {
	return func(ctx context.Context) error {
		start := time.Now()
		o, _ := router.OptionFromCtx(ctx)

		err := next(ctx)

		attrs := []any{
			"action", o.Name,
			"menu", o.Menu,
			"duration", time.Since(start).String(),
		}
		if err != nil {
			attrs = append(attrs, "error", err)
		}
		logger.WithCtx(ctx).Debug("menu action", attrs...)
		return err
	}
}
