// Package reqid mints the correlation ID attached to a login session and
// carries it through context so every log line of that session can be
// grouped.
//
//	ctx = reqid.WithValue(ctx, reqid.New())
//	id := reqid.FromCtx(ctx)
package reqid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New returns a random (v4) UUID string.
func New() string {
	return uuid.NewString()
}

// WithValue stores id in ctx.
func WithValue(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromCtx returns the ID stored in ctx, or "".
func FromCtx(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// Valid reports whether id parses as a UUID.
func Valid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
