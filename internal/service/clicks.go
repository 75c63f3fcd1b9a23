package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"tinylink/internal/mq"
	"tinylink/internal/repository"
	"tinylink/pkg/util"

	"github.com/rs/zerolog/log"
)

const clickPublishTimeout = 2 * time.Second

// ClickRecorder accepts click events from the redirect path and processes
// them on background workers: the Redis counter is incremented and the
// event is published to the analytics pipeline. Record never blocks; when
// the buffer is full the event is dropped. Analytics loss is acceptable,
// redirect stalls are not.
type ClickRecorder struct {
	queue    chan *mq.ClickMessage
	cache    repository.CacheInterface
	producer mq.ProducerInterface

	wg      sync.WaitGroup
	dropped atomic.Int64
	once    sync.Once
}

// NewClickRecorder creates a recorder and starts its workers. producer may
// be nil when the MQ pipeline is disabled.
func NewClickRecorder(cache repository.CacheInterface, producer mq.ProducerInterface, queueSize, workers int) *ClickRecorder {
	if queueSize <= 0 {
		queueSize = 1024
	}
	if workers <= 0 {
		workers = 1
	}

	r := &ClickRecorder{
		queue:    make(chan *mq.ClickMessage, queueSize),
		cache:    cache,
		producer: producer,
	}

	r.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go r.worker()
	}
	return r
}

// Record enqueues a click event without blocking. Missing event id and
// timestamp are filled in.
func (r *ClickRecorder) Record(click *mq.ClickMessage) {
	if click.EventID == "" {
		click.EventID = util.GenerateUUID()
	}
	if click.ClickedAt.IsZero() {
		click.ClickedAt = time.Now()
	}

	select {
	case r.queue <- click:
	default:
		n := r.dropped.Add(1)
		if n%1000 == 1 {
			log.Warn().Int64("dropped", n).Msg("Click queue full, dropping events")
		}
	}
}

// Dropped returns the number of events discarded because the buffer was full
func (r *ClickRecorder) Dropped() int64 {
	return r.dropped.Load()
}

// Close stops accepting events and waits for the workers to drain the queue
func (r *ClickRecorder) Close() {
	r.once.Do(func() {
		close(r.queue)
	})
	r.wg.Wait()
}

func (r *ClickRecorder) worker() {
	defer r.wg.Done()

	for click := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), clickPublishTimeout)

		if _, err := r.cache.IncrementClicks(ctx, click.ShortCode); err != nil {
			log.Warn().Err(err).Str("short_code", click.ShortCode).Msg("Failed to increment click counter")
		}

		if r.producer != nil {
			if err := r.producer.SendClick(ctx, click); err != nil {
				log.Error().Err(err).Str("short_code", click.ShortCode).Msg("Failed to publish click event")
			}
		}

		cancel()
	}
}
