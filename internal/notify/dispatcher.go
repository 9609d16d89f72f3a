package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/garvbarthwal/kisaan/internal/domain/model"
	"github.com/garvbarthwal/kisaan/internal/domain/repository"
)

const persistTimeout = 5 * time.Second

// Dispatcher delivers user-facing notifications asynchronously through a
// bounded queue drained by a worker pool. Dispatch never blocks the caller
// and never reports failure: the order transition that produced the event
// must not depend on notification delivery. When the queue is full the
// event is dropped and logged.
type Dispatcher struct {
	store   repository.NotificationRepository
	workers int
	logger  *slog.Logger

	queue  chan model.Notification
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDispatcher constructs the dispatcher with the given pool size and
// queue capacity.
func NewDispatcher(store repository.NotificationRepository, workers, queueSize int, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		store:   store,
		workers: workers,
		logger:  logger,
		queue:   make(chan model.Notification, queueSize),
	}
}

// Start launches the worker pool.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop drains in-flight work and waits for all workers to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Dispatch enqueues a notification best-effort.
func (d *Dispatcher) Dispatch(n model.Notification) {
	select {
	case d.queue <- n:
	default:
		d.logger.Warn("notification queue full, dropping event",
			slog.String("type", string(n.Type)),
			slog.Int64("user_id", n.UserID),
			slog.Int64("order_id", n.OrderID),
		)
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-d.queue:
			d.persist(n)
		}
	}
}

// persist uses its own timeout context: workers outlive the request that
// enqueued the event.
func (d *Dispatcher) persist(n model.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := d.store.Create(ctx, &n); err != nil {
		d.logger.Error("notification delivery failed",
			slog.String("type", string(n.Type)),
			slog.Int64("user_id", n.UserID),
			slog.Int64("order_id", n.OrderID),
			slog.String("error", err.Error()),
		)
	}
}
