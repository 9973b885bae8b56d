package listeners

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/kashvi-shop/pkg/event"
	"github.com/shashiranjanraj/kashvi-shop/pkg/logger"
	"github.com/shashiranjanraj/kashvi-shop/pkg/reqid"
)

func TestAuditLogsEventWithSession(t *testing.T) {
	var buf bytes.Buffer
	prev := logger.L
	logger.L = logger.New(&buf, "local", "info")
	t.Cleanup(func() { logger.L = prev })

	bus := event.NewBus()
	Register(bus)

	ctx := reqid.WithValue(context.Background(), "sess-1")
	bus.Fire(ctx, event.CartCheckedOut, event.Payload{"username": "bob", "items": 2})

	out := buf.String()
	assert.Contains(t, out, "msg=audit")
	assert.Contains(t, out, "event=cart.checked_out")
	assert.Contains(t, out, "items=2")
	assert.Contains(t, out, "username=bob")
	assert.Contains(t, out, "session_id=sess-1")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("items=")), bytes.Index(buf.Bytes(), []byte("username=")))
}

func TestAuditHiddenAtWarn(t *testing.T) {
	var buf bytes.Buffer
	prev := logger.L
	logger.L = logger.New(&buf, "local", "warn")
	t.Cleanup(func() { logger.L = prev })

	Audit(context.Background(), event.ProductAdded, event.Payload{"name": "Cherry"})
	assert.Empty(t, buf.String())
}
