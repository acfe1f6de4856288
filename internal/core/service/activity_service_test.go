package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kidsync/childcare-api/internal/core/domain"
)

type stubActivityRepo struct {
	mu     sync.Mutex
	events []*domain.ActivityEvent
	err    error
}

func (r *stubActivityRepo) Insert(_ context.Context, event *domain.ActivityEvent) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *stubActivityRepo) Recent(_ context.Context, limit int64) ([]*domain.ActivityEvent, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if int64(len(r.events)) < limit {
		limit = int64(len(r.events))
	}
	out := make([]*domain.ActivityEvent, limit)
	copy(out, r.events[:limit])
	return out, nil
}

func TestActivityService_ProcessAssignsID(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	err := svc.Process(context.Background(), domain.ActivityEvent{
		AccountID:  "acc-1",
		Action:     domain.ActionLoggedIn,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected 1 stored event, got %d", len(repo.events))
	}
	if repo.events[0].ID == "" {
		t.Fatalf("event id not assigned")
	}
}

func TestActivityService_ProcessRejectsIncompleteEvent(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	if err := svc.Process(context.Background(), domain.ActivityEvent{Action: domain.ActionLoggedIn}); err == nil {
		t.Fatalf("expected error for event without account id")
	}
	if err := svc.Process(context.Background(), domain.ActivityEvent{AccountID: "acc-1"}); err == nil {
		t.Fatalf("expected error for event without action")
	}
	if len(repo.events) != 0 {
		t.Fatalf("incomplete events must not be stored")
	}
}

func TestActivityService_RecentClampsLimit(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	for i := 0; i < 80; i++ {
		if err := svc.Process(context.Background(), domain.ActivityEvent{
			AccountID: "acc-1",
			Action:    domain.ActionLoggedIn,
		}); err != nil {
			t.Fatalf("process failed: %v", err)
		}
	}

	events, err := svc.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(events) != defaultRecentLimit {
		t.Fatalf("expected the default limit of %d, got %d", defaultRecentLimit, len(events))
	}

	events, err = svc.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(events) != 10 {
		t.Fatalf("expected 10 events, got %d", len(events))
	}
}
