package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/craftlink/marketplace/internal/adapter/mailer"
	"github.com/craftlink/marketplace/internal/notify"
)

// NotificationDispatcher delivers lifecycle notifications off the request
// path. Enqueue never blocks: when the queue is full the event is dropped
// and logged, keeping a slow mail relay away from HTTP latency.
type NotificationDispatcher struct {
	sender      mailer.Sender
	sendTimeout time.Duration
	workers     int
	logger      *slog.Logger

	jobs   chan notify.Event
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotificationDispatcher constructs the dispatcher worker pool.
func NewNotificationDispatcher(sender mailer.Sender, queueSize, workers int, sendTimeout time.Duration, logger *slog.Logger) *NotificationDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	if sendTimeout <= 0 {
		sendTimeout = 10 * time.Second
	}
	return &NotificationDispatcher{
		sender:      sender,
		sendTimeout: sendTimeout,
		workers:     workers,
		logger:      logger,
		jobs:        make(chan notify.Event, queueSize),
	}
}

// Start launches background delivery workers.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop terminates the workers and waits for in-flight deliveries.
func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Enqueue hands an event to the pool without blocking the caller.
func (d *NotificationDispatcher) Enqueue(event notify.Event) {
	select {
	case d.jobs <- event:
	default:
		d.logger.Warn("notification queue full, dropping event",
			slog.String("type", string(event.Type)),
			slog.String("recipient", event.Recipient),
		)
	}
}

func (d *NotificationDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-d.jobs:
			d.deliver(ctx, event)
		}
	}
}

func (d *NotificationDispatcher) deliver(ctx context.Context, event notify.Event) {
	msg, err := notify.Render(event)
	if err != nil {
		d.logger.Error("notification render failed",
			slog.String("type", string(event.Type)),
			slog.String("error", err.Error()),
		)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	if err := d.sender.Send(sendCtx, event.Recipient, msg.Subject, msg.Text, msg.HTML); err != nil {
		d.logger.Error("notification delivery failed",
			slog.String("type", string(event.Type)),
			slog.String("recipient", event.Recipient),
			slog.String("error", err.Error()),
		)
		return
	}

	d.logger.Info("notification delivered",
		slog.String("type", string(event.Type)),
		slog.String("recipient", event.Recipient),
	)
}
