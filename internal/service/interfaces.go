package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/clubops/clubkit/models"
	"github.com/google/uuid"
)

// AuthService defines the client-side contract for admin authentication and
// session lifecycle.
type AuthService interface {
	// Login validates creds, exchanges them for a bearer token, and returns
	// the authenticated admin profile. On success the token is persisted so
	// a later process can resume the session without re-entering credentials.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// RestoreSession resumes a previously persisted session. Returns the
	// admin profile when the stored token is still accepted by the backend,
	// ErrNoSession when no token is stored, or ErrSessionExpired when the
	// token is expired or rejected (the stale token is discarded).
	RestoreSession(ctx context.Context) (models.User, error)

	// Ping verifies the current session against the backend. Returns
	// ErrSessionExpired (discarding the token) when the backend rejects it.
	Ping(ctx context.Context) error

	// Logout drops the in-memory token and its persisted copy.
	Logout()
}

// EventService defines the client-side contract for managing club events.
type EventService interface {
	// List returns events matching filter.
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, error)

	// Get returns a single event by id.
	Get(ctx context.Context, id uuid.UUID) (models.Event, error)

	// Create validates create and submits it to the backend.
	Create(ctx context.Context, create models.EventCreate) (models.Event, error)

	// Update validates upd and applies it to the event identified by id.
	// At least one field of upd must be set.
	Update(ctx context.Context, id uuid.UUID, upd models.EventUpdate) (models.Event, error)

	// Delete deactivates the event identified by id. The backend keeps the
	// row and flips its active flag, so registrations stay queryable.
	Delete(ctx context.Context, id uuid.UUID) error
}

// RegistrationService defines the client-side contract for participant
// sign-ups: individual event registrations and hackathon team entries.
type RegistrationService interface {
	// Register validates create and submits a participant sign-up.
	Register(ctx context.Context, create models.RegistrationCreate) (models.Registration, error)

	// List returns registrations matching filter.
	List(ctx context.Context, filter models.RegistrationFilter) ([]models.Registration, error)

	// ExportCSV downloads the registration sheet for eventID (all events
	// when eventID is uuid.Nil) and writes it into destDir. Returns the
	// path of the written file.
	ExportCSV(ctx context.Context, eventID uuid.UUID, destDir string) (string, error)

	// CreateTeam validates create and submits a hackathon team sign-up.
	CreateTeam(ctx context.Context, create models.HackathonTeamCreate) (models.HackathonTeam, error)

	// Teams returns all registered hackathon teams.
	Teams(ctx context.Context) ([]models.HackathonTeam, error)
}

// ResourceService defines the client-side contract for the PDF learning
// resource library.
type ResourceService interface {
	// List returns resources, optionally narrowed to a difficulty level.
	List(ctx context.Context, level models.ResourceLevel) ([]models.Resource, error)

	// Get returns a single resource by id.
	Get(ctx context.Context, id uuid.UUID) (models.Resource, error)

	// Upload reads the PDF at filePath and publishes it under the given
	// title and level. The file must carry a .pdf extension and stay within
	// the upload size limit; both are checked before any bytes travel.
	Upload(ctx context.Context, title string, level models.ResourceLevel, filePath string) (models.Resource, error)

	// Update validates upd and applies it to the resource identified by id.
	Update(ctx context.Context, id uuid.UUID, upd models.ResourceUpdate) (models.Resource, error)

	// Delete removes the resource and its stored file.
	Delete(ctx context.Context, id uuid.UUID) error

	// Download fetches the resource PDF and writes it into destDir under
	// the server-supplied filename. Returns the path of the written file.
	Download(ctx context.Context, id uuid.UUID, destDir string) (string, error)
}

// SessionJob defines the contract for a background worker that periodically
// verifies the session token so the console learns about expiry promptly
// instead of on the next keystroke.
type SessionJob interface {
	// Start launches the background goroutine. It pings every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
