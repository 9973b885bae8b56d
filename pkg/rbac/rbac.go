// Package rbac guards menu actions by the role of the logged-in account.
package rbac

import (
	"context"
	"errors"
	"fmt"

	"github.com/shashiranjanraj/kashvi-shop/app/models"
	"github.com/shashiranjanraj/kashvi-shop/pkg/router"
)

// ErrForbidden is returned when the current role may not run an action.
var ErrForbidden = errors.New("forbidden")

// RoleSource reports the current role; *session.Session satisfies it.
type RoleSource interface {
	Role() (models.Role, bool)
}

// HasRole allows the action only for the given roles.
func HasRole(src RoleSource, roles ...models.Role) router.Middleware {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next router.Handler) router.Handler {
		return func(ctx context.Context) error {
			role, ok := src.Role()
			if !ok || !allowed[role] {
				return deny(ctx, role)
			}
			return next(ctx)
		}
	}
}

// Guest allows the action only while nobody is logged in.
func Guest(src RoleSource) router.Middleware {
	return func(next router.Handler) router.Handler {
		return func(ctx context.Context) error {
			if role, ok := src.Role(); ok {
				return deny(ctx, role)
			}
			return next(ctx)
		}
	}
}

func deny(ctx context.Context, role models.Role) error {
	name := "?"
	if o, ok := router.OptionFromCtx(ctx); ok {
		name = o.Name
	}
	if role == "" {
		role = "guest"
	}
	return fmt.Errorf("%s as %s: %w", name, role, ErrForbidden)
}
