package mq

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsumer_Subscribe_AlreadyStarted(t *testing.T) {
	t.Run("subscribe when already started returns nil", func(t *testing.T) {
		c := &Consumer{
			started: true,
		}

		err := c.Subscribe()
		assert.NoError(t, err)
	})
}

func TestConsumer_Close(t *testing.T) {
	t.Run("nil consumer close returns nil", func(t *testing.T) {
		var c *Consumer
		err := c.Close()
		assert.NoError(t, err)
	})

	t.Run("consumer with nil client close returns nil", func(t *testing.T) {
		c := &Consumer{
			client: nil,
		}
		err := c.Close()
		assert.NoError(t, err)
	})
}

func TestClickHandler(t *testing.T) {
	t.Run("handler processes message", func(t *testing.T) {
		processed := false
		handler := func(ctx context.Context, msg *ClickMessage) error {
			processed = true
			assert.Equal(t, "Abc12345", msg.ShortCode)
			return nil
		}

		msg := &ClickMessage{
			EventID:   "0e4a8b9e-1111-2222-3333-444455556666",
			ShortCode: "Abc12345",
			ClientIP:  "192.168.1.1",
			UserAgent: "test-agent",
			Referer:   "https://example.com",
			ClickedAt: time.Now(),
		}

		err := handler(context.Background(), msg)
		assert.NoError(t, err)
		assert.True(t, processed)
	})

	t.Run("handler returns error", func(t *testing.T) {
		handler := func(ctx context.Context, msg *ClickMessage) error {
			return assert.AnError
		}

		msg := &ClickMessage{
			ShortCode: "Abc12345",
		}

		err := handler(context.Background(), msg)
		assert.Error(t, err)
	})
}

func TestConsumer_NewConsumer_Structure(t *testing.T) {
	t.Run("consumer structure is correct", func(t *testing.T) {
		c := &Consumer{
			topic:   "test-topic",
			group:   "test-group",
			handler: func(ctx context.Context, msg *ClickMessage) error { return nil },
		}

		assert.Equal(t, "test-topic", c.topic)
		assert.Equal(t, "test-group", c.group)
		assert.NotNil(t, c.handler)
	})
}
