package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"crm_admin_backend/platform/logger"
)

type testEvent struct {
	BaseEvent
	name string
}

func (e testEvent) EventName() string { return e.name }

type countingHandler struct {
	mu    sync.Mutex
	calls int
	done  chan struct{}
	err   error
}

func (h *countingHandler) Handle(ctx context.Context, event Event) error {
	h.mu.Lock()
	h.calls++
	h.mu.Unlock()
	if h.done != nil {
		h.done <- struct{}{}
	}
	return h.err
}

func (h *countingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

func TestPublishDispatchesToSubscribers(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))
	handler := &countingHandler{done: make(chan struct{}, 1)}
	bus.Subscribe("test.event", handler)

	bus.Publish(context.Background(), testEvent{name: "test.event"})

	select {
	case <-handler.done:
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
	if handler.count() != 1 {
		t.Fatalf("expected 1 call, got %d", handler.count())
	}
}

func TestPublishSkipsOtherEvents(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))
	handler := &countingHandler{}
	bus.Subscribe("test.event", handler)

	err := bus.PublishSync(context.Background(), testEvent{name: "other.event"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handler.count() != 0 {
		t.Fatalf("handler for a different event must not run, got %d calls", handler.count())
	}
}

func TestPublishSyncReturnsHandlerError(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))
	wantErr := errors.New("handler failed")
	bus.Subscribe("test.event", &countingHandler{err: wantErr})

	err := bus.PublishSync(context.Background(), testEvent{name: "test.event"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected handler error, got %v", err)
	}
}

func TestPublishSyncFansOutToAllHandlers(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))
	first := &countingHandler{}
	second := &countingHandler{}
	bus.Subscribe("test.event", first)
	bus.Subscribe("test.event", second)

	if err := bus.PublishSync(context.Background(), testEvent{name: "test.event"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.count() != 1 || second.count() != 1 {
		t.Fatalf("expected both handlers called once, got %d and %d", first.count(), second.count())
	}
}

func TestPublishSurvivesCancelledContext(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))
	handler := &countingHandler{done: make(chan struct{}, 1)}
	bus.Subscribe("test.event", handler)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bus.Publish(ctx, testEvent{name: "test.event"})

	select {
	case <-handler.done:
	case <-time.After(time.Second):
		t.Fatal("handler should run even after the publisher context is cancelled")
	}
}
