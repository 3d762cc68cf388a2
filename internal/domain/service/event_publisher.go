package service

import (
	"context"
	"time"
)

// IdentityEvent is a lifecycle notification. It never carries PII.
type IdentityEvent struct {
	EventID    string    `json:"eventId"`
	Type       string    `json:"type"`
	IdentityID string    `json:"identityId"`
	RequestID  string    `json:"requestId,omitempty"` // For distributed tracing
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishIdentityEvent publishes a lifecycle event
	PublishIdentityEvent(ctx context.Context, event *IdentityEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
