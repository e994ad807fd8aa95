package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/atelier/internal/domain/model"
)

// EventSource exposes the subset of application functionality required by the relay.
type EventSource interface {
	ClaimEvents(ctx context.Context, limit int) ([]model.OutboxEvent, error)
	MarkEventPublished(ctx context.Context, id int64) error
}

// Publisher delivers outbox events to the message broker. Its owner closes it.
type Publisher interface {
	Publish(ctx context.Context, event model.OutboxEvent) error
}

// OutboxRelay polls claimable outbox events and publishes them concurrently.
type OutboxRelay struct {
	source       EventSource
	publisher    Publisher
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewOutboxRelay constructs the relay worker pool. A nil publisher yields a
// relay that logs a warning on Start and does nothing.
func NewOutboxRelay(source EventSource, publisher Publisher, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *OutboxRelay {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &OutboxRelay{
		source:       source,
		publisher:    publisher,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
	}
}

// Enabled reports whether a publisher is configured.
func (r *OutboxRelay) Enabled() bool {
	return r.publisher != nil
}

// Start launches background publishing. A stopped relay can be started again.
func (r *OutboxRelay) Start(ctx context.Context) {
	if !r.Enabled() {
		r.logger.Warn("outbox relay disabled (no kafka brokers configured)")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	jobs := make(chan model.OutboxEvent, r.batchSize*r.workers)

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx, jobs)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx, jobs)
}

// Stop cancels polling and waits for all workers to finish.
func (r *OutboxRelay) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	r.wg.Wait()
}

func (r *OutboxRelay) dispatch(ctx context.Context, jobs chan<- model.OutboxEvent) {
	defer r.wg.Done()
	defer close(jobs)
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fetchAndDispatch(ctx, jobs)
		}
	}
}

func (r *OutboxRelay) fetchAndDispatch(ctx context.Context, jobs chan<- model.OutboxEvent) {
	events, err := r.source.ClaimEvents(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("claim outbox events failed", slog.String("error", err.Error()))
		return
	}
	for _, event := range events {
		select {
		case <-ctx.Done():
			return
		case jobs <- event:
		}
	}
}

func (r *OutboxRelay) worker(ctx context.Context, jobs <-chan model.OutboxEvent) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-jobs:
			if !ok {
				return
			}
			r.handleEvent(ctx, event)
		}
	}
}

// handleEvent leaves failed events unpublished; they become claimable again
// once their lease expires.
func (r *OutboxRelay) handleEvent(ctx context.Context, event model.OutboxEvent) {
	if err := r.publisher.Publish(ctx, event); err != nil {
		r.logger.Error("publish outbox event failed",
			slog.Int64("id", event.ID),
			slog.String("event_type", event.EventType),
			slog.String("error", err.Error()),
		)
		return
	}
	if err := r.source.MarkEventPublished(ctx, event.ID); err != nil {
		r.logger.Error("mark outbox event published failed", slog.Int64("id", event.ID), slog.String("error", err.Error()))
	}
}
