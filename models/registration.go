package models

import (
	"time"

	"github.com/google/uuid"
)

// Registration is a single event sign-up record.
type Registration struct {
	ID            uuid.UUID `json:"id"`
	EventID       uuid.UUID `json:"event_id"`
	OperativeName string    `json:"operative_name"`
	MoodleID      string    `json:"moodle_id"`
	Timestamp     time.Time `json:"timestamp"`

	// Event is the registered-for event, embedded by the backend when it
	// resolves the relationship. May be nil on partial responses.
	Event *Event `json:"event,omitempty"`
}

// RegistrationCreate is the public sign-up payload. MoodleID must be 8-12
// alphanumeric characters; the backend rejects duplicates per event.
type RegistrationCreate struct {
	EventID       uuid.UUID `json:"event_id"`
	OperativeName string    `json:"operative_name"`
	MoodleID      string    `json:"moodle_id"`
}

// RegistrationFilter narrows a registration listing.
type RegistrationFilter struct {
	// EventID keeps only registrations for the given event.
	EventID uuid.UUID

	// MoodleID keeps only registrations submitted under the given id.
	MoodleID string
}
