package service

import (
	"context"
	"time"
)

// Profile lifecycle event types published for downstream consumers
// (search-index refresh, analytics).
const (
	EventProfileCreated = "profile.created"
	EventProfileDeleted = "profile.deleted"
	EventUserDeleted    = "user.deleted"
)

// ProfileEvent describes a lifecycle change of a user or profile.
type ProfileEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventType  string    `json:"event_type"`
	UserID     string    `json:"user_id"`
	ProfileID  string    `json:"profile_id,omitempty"`
	UserType   string    `json:"user_type"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProfileEvent publishes a lifecycle event for async processing.
	PublishProfileEvent(ctx context.Context, event *ProfileEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
