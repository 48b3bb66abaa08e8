package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/craftlink/marketplace/internal/notify"
)

type senderStub struct {
	mu    sync.Mutex
	sent  []string
	err   error
	delay time.Duration
}

func (s *senderStub) Send(ctx context.Context, to, subject, text, html string) error {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.delay):
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to)
	return nil
}

func (s *senderStub) recipients() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestDispatcherDeliversEnqueuedEvents(t *testing.T) {
	sender := &senderStub{}
	d := NewNotificationDispatcher(sender, 8, 2, time.Second, discardLogger())
	d.Start(context.Background())
	defer d.Stop()

	d.Enqueue(notify.Event{Type: notify.EventBulkOrderCreated, Recipient: "a@example.com"})
	d.Enqueue(notify.Event{Type: notify.EventOfferAccepted, Recipient: "b@example.com"})

	waitFor(t, func() bool { return len(sender.recipients()) == 2 })
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	sender := &senderStub{delay: time.Minute}
	d := NewNotificationDispatcher(sender, 1, 1, time.Minute, discardLogger())

	// Not started: nothing drains the queue, so only the first event fits.
	d.Enqueue(notify.Event{Type: notify.EventBulkOrderCreated, Recipient: "a@example.com"})
	d.Enqueue(notify.Event{Type: notify.EventBulkOrderCreated, Recipient: "b@example.com"})

	if got := len(d.jobs); got != 1 {
		t.Fatalf("expected exactly one queued event, got %d", got)
	}
}

func TestDispatcherLogsDeliveryFailure(t *testing.T) {
	sender := &senderStub{err: errors.New("relay refused")}
	d := NewNotificationDispatcher(sender, 4, 1, time.Second, discardLogger())
	d.Start(context.Background())

	d.Enqueue(notify.Event{Type: notify.EventOfferSubmitted, Recipient: "a@example.com"})

	// A failed delivery must not wedge the pool.
	waitFor(t, func() bool { return len(d.jobs) == 0 })
	d.Stop()
}

func TestDispatcherStopTerminatesWorkers(t *testing.T) {
	sender := &senderStub{}
	d := NewNotificationDispatcher(sender, 4, 3, time.Second, discardLogger())
	d.Start(context.Background())

	done := make(chan struct{})
	go func() {
		d.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not stop in time")
	}
}

func TestDispatcherNormalizesConstructorArguments(t *testing.T) {
	d := NewNotificationDispatcher(&senderStub{}, 0, 0, 0, discardLogger())
	if d.workers != 1 {
		t.Fatalf("expected one worker fallback, got %d", d.workers)
	}
	if cap(d.jobs) != 1 {
		t.Fatalf("expected queue capacity fallback, got %d", cap(d.jobs))
	}
	if d.sendTimeout <= 0 {
		t.Fatalf("expected positive send timeout, got %v", d.sendTimeout)
	}
}
