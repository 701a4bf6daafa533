// Package adapter provides the transport layer for communicating with the
// club website backend.
//
// The primary abstraction is [ClubAdapter], which decouples the service layer
// from the REST/JSON protocol. Every operation funnels through one internal
// transport primitive, so JSON requests, multipart uploads, and file downloads
// all share the same timeout and error-normalization behavior.
//
// Expected failures (timeouts, connection errors, non-2xx statuses, malformed
// response bodies) never escape as panics or untyped errors: the low-level
// [ClubAdapter.Do] surfaces them as a [Result] value, and the typed operations
// map them onto the sentinel errors defined in errors.go so that callers can
// branch with [errors.Is].
package adapter

import (
	"context"

	"github.com/clubops/clubkit/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/club_adapter_mock.go -package=mock

// ClubAdapter defines transport-agnostic communication with the club backend.
// Implementations are responsible for serialisation, bearer-token management,
// timeout enforcement, and mapping transport-level failures to the sentinel
// errors defined in this package.
type ClubAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests and mirrors it into the durable token store.
	// The adapter is the sole writer of that store.
	SetToken(token string)

	// ClearToken removes the bearer token from memory and from the durable
	// token store. Called on logout.
	ClearToken()

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string

	// Do performs a single JSON request against endpoint (a path relative to
	// the configured base URL) and returns the normalized [Result]. It is the
	// escape hatch for callers that want the raw result union instead of the
	// typed operations below. Exactly one attempt is made; there is no retry.
	Do(ctx context.Context, method, endpoint string, body any) Result

	// Login exchanges the credentials for a bearer token via
	// POST /auth/login. On success the token is stored via SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// CurrentUser fetches the authenticated account profile via GET /auth/me.
	CurrentUser(ctx context.Context) (models.User, error)

	// Events lists events via GET /events, optionally narrowed by filter.
	Events(ctx context.Context, filter models.EventFilter) ([]models.Event, error)

	// Event fetches a single event via GET /events/{id}.
	Event(ctx context.Context, id uuid.UUID) (models.Event, error)

	// CreateEvent creates an event via POST /events. Requires a token.
	CreateEvent(ctx context.Context, create models.EventCreate) (models.Event, error)

	// UpdateEvent applies a partial update via PUT /events/{id}. Only non-nil
	// fields of upd are sent. Requires a token.
	UpdateEvent(ctx context.Context, id uuid.UUID, upd models.EventUpdate) (models.Event, error)

	// DeleteEvent deactivates an event via DELETE /events/{id}. The backend
	// soft-deletes: the event stays listed with is_active=false. Requires a
	// token.
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	// CreateRegistration signs a participant up for an event via
	// POST /registrations. Public; no token required. Returns ErrConflict
	// (wrapped) when the moodle id already registered for the event.
	CreateRegistration(ctx context.Context, create models.RegistrationCreate) (models.Registration, error)

	// Registrations lists sign-ups via GET /registrations, optionally
	// narrowed by filter. Requires a token.
	Registrations(ctx context.Context, filter models.RegistrationFilter) ([]models.Registration, error)

	// ExportRegistrationsCSV fetches the admin CSV export via
	// GET /registrations?export=csv, optionally filtered by event. Returns
	// the raw CSV bytes. Requires a token.
	ExportRegistrationsCSV(ctx context.Context, eventID uuid.UUID) ([]byte, error)

	// Resources lists learning resources via GET /resources, optionally
	// filtered by level.
	Resources(ctx context.Context, level models.ResourceLevel) ([]models.Resource, error)

	// Resource fetches a single resource via GET /resources/{id}.
	Resource(ctx context.Context, id uuid.UUID) (models.Resource, error)

	// UploadResource uploads a new PDF via multipart POST /resources.
	// The multipart boundary is set by the HTTP transport; the bearer token
	// is attached as usual and the shared request timeout applies. Requires
	// a token.
	UploadResource(ctx context.Context, up models.ResourceUpload) (models.Resource, error)

	// UpdateResource updates resource metadata via PUT /resources/{id}.
	// Requires a token.
	UpdateResource(ctx context.Context, id uuid.UUID, upd models.ResourceUpdate) (models.Resource, error)

	// DeleteResource removes a resource via DELETE /resources/{id}.
	// Requires a token.
	DeleteResource(ctx context.Context, id uuid.UUID) error

	// DownloadResource fetches the PDF body via GET /resources/{id}/download.
	// The endpoint is public, so no token is attached. The returned filename
	// is derived from the Content-Disposition header and falls back to
	// "resource-<id>.pdf".
	DownloadResource(ctx context.Context, id uuid.UUID) (models.FileDownload, error)

	// CreateHackathonTeam registers a hackathon team via
	// POST /hackathon-teams. Public; no token required.
	CreateHackathonTeam(ctx context.Context, create models.HackathonTeamCreate) (models.HackathonTeam, error)

	// HackathonTeams lists registered teams via GET /hackathon-teams.
	// Requires a token.
	HackathonTeams(ctx context.Context) ([]models.HackathonTeam, error)
}

// TokenStore persists the bearer token across process restarts. The adapter
// reads it once at construction and writes through on SetToken/ClearToken;
// no other component may write the stored value.
type TokenStore interface {
	// Load returns the stored token, or an empty string when none exists.
	Load() (string, error)

	// Save replaces the stored token. Last writer wins.
	Save(token string) error

	// Clear deletes the stored token. Clearing an absent token is not an
	// error.
	Clear() error
}
