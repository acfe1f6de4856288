package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kidsync/childcare-api/internal/core/domain"
)

// collectingService records processed events and signals each delivery.
type collectingService struct {
	mu        sync.Mutex
	processed []domain.ActivityEvent
	delivered chan struct{}
	failOn    domain.ActivityAction
}

func newCollectingService(capacity int) *collectingService {
	return &collectingService{delivered: make(chan struct{}, capacity)}
}

func (s *collectingService) Process(_ context.Context, event domain.ActivityEvent) error {
	defer func() { s.delivered <- struct{}{} }()
	if s.failOn != "" && event.Action == s.failOn {
		return fmt.Errorf("injected failure for %s", event.Action)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processed = append(s.processed, event)
	return nil
}

func (s *collectingService) Recent(_ context.Context, _ int) ([]*domain.ActivityEvent, error) {
	return nil, nil
}

func (s *collectingService) waitFor(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-s.delivered:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for delivery %d of %d", i+1, n)
		}
	}
}

func (s *collectingService) events() []domain.ActivityEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ActivityEvent, len(s.processed))
	copy(out, s.processed)
	return out
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	svc := newCollectingService(8)
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Record(domain.ActivityEvent{AccountID: "acc-1", Action: domain.ActionLoggedIn})
	d.Record(domain.ActivityEvent{AccountID: "acc-2", Action: domain.ActionRegistered})
	svc.waitFor(t, 2)

	events := svc.events()
	if len(events) != 2 {
		t.Fatalf("expected 2 processed events, got %d", len(events))
	}
}

func TestDispatcher_PerAccountOrdering(t *testing.T) {
	svc := newCollectingService(64)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	actions := []domain.ActivityAction{
		domain.ActionRegistered,
		domain.ActionLoggedIn,
		domain.ActionProfileUpdated,
		domain.ActionPasswordChanged,
		domain.ActionLoggedOut,
	}
	for _, action := range actions {
		d.Record(domain.ActivityEvent{AccountID: "acc-1", Action: action})
	}
	svc.waitFor(t, len(actions))

	events := svc.events()
	if len(events) != len(actions) {
		t.Fatalf("expected %d events, got %d", len(actions), len(events))
	}
	for i, event := range events {
		if event.Action != actions[i] {
			t.Fatalf("event %d out of order: got %s, want %s", i, event.Action, actions[i])
		}
	}
}

func TestDispatcher_SameAccountSameWorker(t *testing.T) {
	d := NewDispatcher(8, newCollectingService(1), zerolog.Nop())

	first := d.shardIndex("acc-42")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("acc-42"); got != first {
			t.Fatalf("shard index not deterministic: got %d, want %d", got, first)
		}
	}
}

func TestDispatcher_ProcessingErrorDoesNotStopWorker(t *testing.T) {
	svc := newCollectingService(8)
	svc.failOn = domain.ActionLoggedIn
	d := NewDispatcher(1, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Record(domain.ActivityEvent{AccountID: "acc-1", Action: domain.ActionLoggedIn})
	d.Record(domain.ActivityEvent{AccountID: "acc-1", Action: domain.ActionLoggedOut})
	svc.waitFor(t, 2)

	events := svc.events()
	if len(events) != 1 || events[0].Action != domain.ActionLoggedOut {
		t.Fatalf("worker should survive the failure and process the next event: %+v", events)
	}
}
