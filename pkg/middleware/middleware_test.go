package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/kashvi-shop/pkg/logger"
	"github.com/shashiranjanraj/kashvi-shop/pkg/middleware"
	"github.com/shashiranjanraj/kashvi-shop/pkg/reqid"
	"github.com/shashiranjanraj/kashvi-shop/pkg/router"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logger.L
	logger.L = logger.New(&buf, "local", "debug")
	t.Cleanup(func() { logger.L = prev })
	return &buf
}

func TestRecoveryConvertsPanic(t *testing.T) {
	logs := captureLogs(t)

	r := router.New()
	r.Use(middleware.Recovery)
	r.Menu("m", "").Handle("Boom", "m.boom", func(context.Context) error { panic("kaboom") })

	_, err := r.Dispatch(context.Background(), "m", 1)
	assert.ErrorIs(t, err, middleware.ErrPanic)
	assert.Contains(t, err.Error(), "m.boom")
	assert.Contains(t, logs.String(), "panic recovered")
}

func TestLoggerRecordsActionAndSession(t *testing.T) {
	logs := captureLogs(t)

	r := router.New()
	r.Use(middleware.Logger)
	r.Menu("m", "").
		Handle("Ok", "m.ok", func(context.Context) error { return nil }).
		Handle("Fail", "m.fail", func(context.Context) error { return errors.New("nope") })

	ctx := reqid.WithValue(context.Background(), "sess-1")
	_, _ = r.Dispatch(ctx, "m", 1)
	_, err := r.Dispatch(ctx, "m", 2)

	assert.EqualError(t, err, "nope", "errors pass through unchanged")
	out := logs.String()
	assert.Contains(t, out, "action=m.ok")
	assert.Contains(t, out, "action=m.fail")
	assert.Contains(t, out, "error=nope")
	assert.Contains(t, out, "session_id=sess-1")
}
