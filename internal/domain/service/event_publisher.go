package service

import (
	"context"
)

// UserCreatedMessage is the fixed message text of a user-created event.
const UserCreatedMessage = "New user created"

// EventUser is the public view of a user carried in events.
type EventUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Disabled bool   `json:"disabled"`
}

// UserCreatedEvent is emitted once a registration has been committed.
type UserCreatedEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	Message   string    `json:"message"`
	User      EventUser `json:"user"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishUserCreated publishes a user-created event.
	PublishUserCreated(ctx context.Context, event *UserCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
