package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinylink/internal/mocks"
	"tinylink/internal/mq"
)

func TestClickRecorder_Record(t *testing.T) {
	t.Run("click increments the counter and publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cache := mocks.NewMockCacheInterface(ctrl)
		producer := mocks.NewMockProducerInterface(ctrl)

		var published *mq.ClickMessage
		cache.EXPECT().IncrementClicks(gomock.Any(), "Abc12345").Return(int64(1), nil)
		producer.EXPECT().SendClick(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *mq.ClickMessage) error {
				published = msg
				return nil
			})

		r := NewClickRecorder(cache, producer, 16, 1)
		r.Record(&mq.ClickMessage{
			ShortCode: "Abc12345",
			ClientIP:  "192.168.1.1",
			UserAgent: "Mozilla/5.0",
		})
		r.Close()

		require.NotNil(t, published)
		assert.NotEmpty(t, published.EventID)
		assert.False(t, published.ClickedAt.IsZero())
		assert.Equal(t, "Abc12345", published.ShortCode)
	})

	t.Run("nil producer only counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cache := mocks.NewMockCacheInterface(ctrl)
		cache.EXPECT().IncrementClicks(gomock.Any(), "Abc12345").Return(int64(1), nil)

		r := NewClickRecorder(cache, nil, 16, 1)
		r.Record(&mq.ClickMessage{ShortCode: "Abc12345"})
		r.Close()

		assert.Equal(t, int64(0), r.Dropped())
	})

	t.Run("existing event id and timestamp are preserved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cache := mocks.NewMockCacheInterface(ctrl)
		cache.EXPECT().IncrementClicks(gomock.Any(), "Abc12345").Return(int64(1), nil)

		clickedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		click := &mq.ClickMessage{
			EventID:   "preset-id",
			ShortCode: "Abc12345",
			ClickedAt: clickedAt,
		}

		r := NewClickRecorder(cache, nil, 16, 1)
		r.Record(click)
		r.Close()

		assert.Equal(t, "preset-id", click.EventID)
		assert.True(t, clickedAt.Equal(click.ClickedAt))
	})

	t.Run("processing errors are swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cache := mocks.NewMockCacheInterface(ctrl)
		producer := mocks.NewMockProducerInterface(ctrl)

		cache.EXPECT().IncrementClicks(gomock.Any(), "Abc12345").Return(int64(0), assert.AnError)
		producer.EXPECT().SendClick(gomock.Any(), gomock.Any()).Return(assert.AnError)

		r := NewClickRecorder(cache, producer, 16, 1)
		r.Record(&mq.ClickMessage{ShortCode: "Abc12345"})
		r.Close()
	})
}

func TestClickRecorder_DropsWhenFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCacheInterface(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})

	// The first event parks the only worker; the second fills the buffer.
	cache.EXPECT().IncrementClicks(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (int64, error) {
			close(started)
			<-release
			return 1, nil
		})
	cache.EXPECT().IncrementClicks(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	r := NewClickRecorder(cache, nil, 1, 1)

	r.Record(&mq.ClickMessage{ShortCode: "One11111"})
	<-started
	r.Record(&mq.ClickMessage{ShortCode: "Two22222"})
	r.Record(&mq.ClickMessage{ShortCode: "Three333"})

	assert.Equal(t, int64(1), r.Dropped())

	close(release)
	r.Close()
}

func TestClickRecorder_CloseIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCacheInterface(ctrl)

	r := NewClickRecorder(cache, nil, 16, 2)
	r.Close()
	r.Close()
}

func TestClickRecorder_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCacheInterface(ctrl)

	r := NewClickRecorder(cache, nil, 0, 0)
	assert.Equal(t, 1024, cap(r.queue))
	r.Close()
}
