package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/funnel/internal/config"
)

func TestSetupOTel(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled tracing", func(t *testing.T) {
		tracer, cleanup, err := SetupOTel(ctx, config.TracingConfig{Enabled: false})
		require.NoError(t, err)
		require.NotNil(t, tracer)
		require.NotNil(t, cleanup)

		_, span := tracer.Start(ctx, "test")
		assert.False(t, span.SpanContext().IsValid())
		span.End()

		cleanup()
	})

	t.Run("enabled tracing with unreachable collector", func(t *testing.T) {
		cfg := config.TracingConfig{
			Enabled:     true,
			ServiceName: "test-service",
			ZipkinURL:   "http://invalid-url:9411/api/v2/spans",
		}
		tracer, cleanup, err := SetupOTel(ctx, cfg)
		require.NoError(t, err)
		require.NotNil(t, tracer)

		_, span := tracer.Start(ctx, "test")
		assert.True(t, span.SpanContext().IsValid())
		span.End()

		// Flushing to an unreachable collector is logged, not fatal.
		cleanup()
	})
}

func TestTracedBridgeDelivers(t *testing.T) {
	ctx := context.Background()
	tracer, cleanup, err := SetupOTel(ctx, config.TracingConfig{
		Enabled:     true,
		ServiceName: "test-service",
		ZipkinURL:   "http://localhost:9411/api/v2/spans",
	})
	require.NoError(t, err)
	defer cleanup()

	bridge := NewWatermillBridgeWithTracer(tracer)
	defer bridge.Close()

	received := make(chan Message, 1)
	require.NoError(t, bridge.Subscribe(ctx, "test.topic", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	}))

	require.NoError(t, bridge.Publish(ctx, Message{
		Topic:     "test.topic",
		RequestID: "req-123",
		Payload:   []byte(`{"message":"hello"}`),
		Metadata:  map[string]string{"source": "test"},
	}))

	var msg Message
	select {
	case msg = <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}
	assert.Equal(t, "test.topic", msg.Topic)
	assert.Equal(t, "req-123", msg.RequestID)
	assert.Equal(t, "test", msg.Metadata["source"])
	assert.NotContains(t, msg.Metadata, metaKeyTopic)
}

func TestPayloadPreview(t *testing.T) {
	assert.Equal(t, "short", payloadPreview([]byte("short")))

	long := make([]byte, 150)
	for i := range long {
		long[i] = 'a'
	}
	preview := payloadPreview(long)
	assert.Len(t, preview, payloadPreviewLimit+3)
	assert.True(t, len(preview) > payloadPreviewLimit)
}
