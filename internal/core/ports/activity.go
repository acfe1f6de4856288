package ports

import (
	"context"

	"github.com/kidsync/childcare-api/internal/core/domain"
)

// ActivityRecorder is the fire-and-forget side the account service sees.
// Implemented by the queue dispatcher; recording never blocks a request.
type ActivityRecorder interface {
	Record(event domain.ActivityEvent)
}

// ActivityService persists activity events delivered by the dispatcher.
type ActivityService interface {
	Process(ctx context.Context, event domain.ActivityEvent) error
	Recent(ctx context.Context, limit int) ([]*domain.ActivityEvent, error)
}

// ActivityRepository defines persistence for the activity trail.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
	Recent(ctx context.Context, limit int64) ([]*domain.ActivityEvent, error)
}
