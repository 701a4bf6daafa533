package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType classifies a club event. The backend stores the value as a
// plain string, so the constants below must match the server-side enum
// verbatim.
type EventType string

const (
	Workshop  EventType = "Workshop"
	Hackathon EventType = "Hackathon"
	Seminar   EventType = "Seminar"
	Bootcamp  EventType = "Bootcamp"
	Lecture   EventType = "Lecture"
)

// EventTypes lists every event type accepted by the backend, in display
// order. Used by form widgets and validators.
var EventTypes = []EventType{Workshop, Hackathon, Seminar, Bootcamp, Lecture}

// Event is a club event as returned by the backend.
type Event struct {
	// ID is the server-assigned event identifier.
	ID uuid.UUID `json:"id"`

	// Title is the human-readable event name (1-200 characters).
	Title string `json:"title"`

	// Type is the event category.
	Type EventType `json:"type"`

	// Date is the calendar day the event takes place on.
	Date Date `json:"date"`

	// Description is optional free-form text shown on the event page.
	Description string `json:"description,omitempty"`

	// IsActive reports whether the event accepts registrations.
	// Deleting an event on the backend flips this flag instead of
	// removing the row.
	IsActive bool `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventCreate is the payload for creating a new event.
type EventCreate struct {
	Title       string    `json:"title"`
	Type        EventType `json:"type"`
	Date        Date      `json:"date"`
	Description string    `json:"description,omitempty"`
}

// EventUpdate is a partial update of an existing event.
// Only non-nil fields are sent to the backend and applied there.
type EventUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Type        *EventType `json:"type,omitempty"`
	Date        *Date      `json:"date,omitempty"`
	Description *string    `json:"description,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

// EventFilter narrows an event listing. Zero-valued fields are omitted
// from the query string.
type EventFilter struct {
	// Type keeps only events of the given category.
	Type EventType

	// IsActive, when set, keeps only events matching the flag.
	IsActive *bool
}
