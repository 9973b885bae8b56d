// Package listeners holds the event-bus subscribers of the shop.
package listeners

import (
	"context"
	"log/slog"
	"sort"

	"github.com/shashiranjanraj/kashvi-shop/pkg/event"
	"github.com/shashiranjanraj/kashvi-shop/pkg/logger"
)

// Audit logs every domain event at info, tagged with the session ID found in
// ctx. Payload keys are written in sorted order.
func Audit(ctx context.Context, name string, payload event.Payload) {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, len(keys)+1)
	attrs = append(attrs, slog.String("event", name))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, payload[k]))
	}
	logger.WithCtx(ctx).Info("audit", attrs...)
}

// Register subscribes the shop listeners to bus.
func Register(bus *event.Bus) {
	bus.ListenAll(Audit)
}
