package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kidsync/childcare-api/internal/core/domain"
)

const activityCollection = "account_events"

// ActivityRepository stores the append-only account activity trail.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type activityDoc struct {
	ID         string    `bson:"_id"`
	AccountID  string    `bson:"account_id"`
	ActorID    string    `bson:"actor_id,omitempty"`
	Action     string    `bson:"action"`
	OccurredAt time.Time `bson:"occurred_at"`
}

func (r *ActivityRepository) Insert(ctx context.Context, event *domain.ActivityEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, activityDoc{
		ID:         event.ID,
		AccountID:  event.AccountID,
		ActorID:    event.ActorID,
		Action:     string(event.Action),
		OccurredAt: event.OccurredAt,
	})
	return err
}

// Recent returns the newest events first.
func (r *ActivityRepository) Recent(ctx context.Context, limit int64) ([]*domain.ActivityEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "occurred_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := make([]*domain.ActivityEvent, 0, limit)
	for cursor.Next(ctx) {
		var doc activityDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		events = append(events, &domain.ActivityEvent{
			ID:         doc.ID,
			AccountID:  doc.AccountID,
			ActorID:    doc.ActorID,
			Action:     domain.ActivityAction(doc.Action),
			OccurredAt: doc.OccurredAt.UTC(),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// EnsureIndexes creates the indexes backing the recent-events query.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "occurred_at", Value: -1}}},
		{Keys: bson.D{{Key: "account_id", Value: 1}, {Key: "occurred_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
