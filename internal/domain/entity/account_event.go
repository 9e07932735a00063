package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountEventType enumerates the events emitted when an account changes.
type AccountEventType string

const (
	AccountEventRegistered     AccountEventType = "account.registered"
	AccountEventProfileUpdated AccountEventType = "profile.updated"
)

// AccountEvent is published after a committed change to an account.
type AccountEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	EventID    string           `json:"event_id"`
	Type       AccountEventType `json:"type"`
	UserID     uuid.UUID        `json:"user_id"`
	Username   string           `json:"username"`
	Fields     []string         `json:"fields,omitempty"` // Changed profile fields, for profile.updated
	OccurredAt time.Time        `json:"occurred_at"`
}
