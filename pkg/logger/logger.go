// Package logger provides the shop's structured, levelled logger built on
// log/slog.
//
// Logs always go to stderr so they never interleave with the menu text on
// stdout. The level defaults to warn, which keeps an interactive session
// quiet; set LOG_LEVEL=debug to see every menu action.
//
// WithCtx attaches the session correlation ID minted at login:
//
//	log := logger.WithCtx(ctx)
//	log.Info("checkout", "items", n)
//	// → time=... level=INFO msg=checkout session_id=9f0c... items=3
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/kashvi-shop/config"
	"github.com/shashiranjanraj/kashvi-shop/pkg/reqid"
)

var L *slog.Logger

func init() {
	Configure(os.Stderr)
}

// Configure rebuilds L writing to w, using APP_ENV for the format and
// LOG_LEVEL for the threshold.
func Configure(w io.Writer) {
	L = New(w, config.AppEnv(), config.LogLevel())
	slog.SetDefault(L)
}

// New builds a logger without touching the package state.
func New(w io.Writer, env, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	switch env {
	case "production", "prod":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("app", config.AppName())
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

type ctxKey struct{}

// WithCtx returns the logger injected into ctx, or L tagged with the
// session ID found in ctx.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	if id := reqid.FromCtx(ctx); id != "" {
		return L.With("session_id", id)
	}
	return L
}

// InjectLogger stores log into ctx for WithCtx.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }

func Info(msg string, args ...any) { L.Info(msg, args...) }

func Warn(msg string, args ...any) { L.Warn(msg, args...) }

func Error(msg string, args ...any) { L.Error(msg, args...) }
