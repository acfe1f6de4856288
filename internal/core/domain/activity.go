package domain

import "time"

// ActivityAction names a recorded account event.
type ActivityAction string

const (
	ActionRegistered      ActivityAction = "account_registered"
	ActionLoggedIn        ActivityAction = "logged_in"
	ActionLoggedOut       ActivityAction = "logged_out"
	ActionProfileUpdated  ActivityAction = "profile_updated"
	ActionPasswordChanged ActivityAction = "password_changed"
	ActionDeactivated     ActivityAction = "account_deactivated"
	ActionDeleted         ActivityAction = "account_deleted"
)

// ActivityEvent is one entry in the account activity trail.
type ActivityEvent struct {
	ID         string         `json:"id" bson:"_id,omitempty"`
	AccountID  string         `json:"account_id" bson:"account_id"`
	ActorID    string         `json:"actor_id,omitempty" bson:"actor_id,omitempty"`
	Action     ActivityAction `json:"action" bson:"action"`
	OccurredAt time.Time      `json:"occurred_at" bson:"occurred_at"`
}
