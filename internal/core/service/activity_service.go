package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kidsync/childcare-api/internal/core/domain"
	"github.com/kidsync/childcare-api/internal/core/ports"
)

const defaultRecentLimit = 50

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService persisting to repo.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists a single activity event delivered by the dispatcher.
func (s *activityService) Process(ctx context.Context, event domain.ActivityEvent) error {
	if event.AccountID == "" || event.Action == "" {
		return fmt.Errorf("process activity: incomplete event %+v", event)
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("process activity: %w", err)
	}

	s.log.Debug().
		Str("account_id", event.AccountID).
		Str("action", string(event.Action)).
		Msg("activity recorded")
	return nil
}

// Recent returns the newest events, most recent first.
func (s *activityService) Recent(ctx context.Context, limit int) ([]*domain.ActivityEvent, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultRecentLimit
	}
	return s.repo.Recent(ctx, int64(limit))
}
