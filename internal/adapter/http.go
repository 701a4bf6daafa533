package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/clubops/clubkit/internal/logger"
	"github.com/clubops/clubkit/internal/utils"
	"github.com/clubops/clubkit/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// defaultRequestTimeout bounds a single request attempt when the config
// does not specify one. Matches the backend deployment default of 30s.
const defaultRequestTimeout = 30 * time.Second

// Config carries the immutable settings of the HTTP adapter. Loading these
// values (env, flags, config file) is the caller's concern; the adapter
// performs no environment parsing of its own.
type Config struct {
	// BaseURL is the request target prefix, e.g. "http://localhost:8000/api".
	BaseURL string

	// RequestTimeout aborts any in-flight call that exceeds it.
	// Zero means defaultRequestTimeout.
	RequestTimeout time.Duration
}

type httpClubAdapter struct {
	client *utils.HTTPClient
	tokens TokenStore

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPClubAdapter constructs the REST implementation of [ClubAdapter].
// It normalises and validates cfg.BaseURL, configures the underlying HTTP
// client with the resolved base URL and request timeout, and restores a
// previously persisted bearer token from tokens, if any.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPClubAdapter(cfg Config, tokens TokenStore, log *logger.Logger) (ClubAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	h := &httpClubAdapter{client: client, tokens: tokens, logger: log}

	if tokens != nil {
		token, loadErr := tokens.Load()
		if loadErr != nil {
			log.Warn().Err(loadErr).Msg("restore persisted token")
		} else if token != "" {
			h.mu.Lock()
			h.token = token
			h.mu.Unlock()
		}
	}

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ClubAdapter]. It stores token (whitespace-trimmed)
// in memory and writes it through to the durable token store.
func (h *httpClubAdapter) SetToken(token string) {
	token = strings.TrimSpace(token)

	h.mu.Lock()
	h.token = token
	h.mu.Unlock()

	if h.tokens != nil {
		if err := h.tokens.Save(token); err != nil {
			h.logger.Warn().Err(err).Msg("persist token")
		}
	}
}

// ClearToken implements [ClubAdapter]. It drops the in-memory token and
// deletes the persisted copy.
func (h *httpClubAdapter) ClearToken() {
	h.mu.Lock()
	h.token = ""
	h.mu.Unlock()

	if h.tokens != nil {
		if err := h.tokens.Clear(); err != nil {
			h.logger.Warn().Err(err).Msg("clear persisted token")
		}
	}
}

// Token implements [ClubAdapter].
func (h *httpClubAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// fileAttachment describes the binary part of a multipart request.
type fileAttachment struct {
	param    string
	filename string
	reader   io.Reader
}

// callSpec describes one backend call for the shared transport primitive.
type callSpec struct {
	method   string
	endpoint string
	body     any        // JSON payload, mutually exclusive with fields/file
	query    url.Values // optional query parameters
	fields   map[string]string
	file     *fileAttachment

	// anonymous suppresses the Authorization header on public endpoints.
	anonymous bool
}

// execute performs a single attempt of spec and classifies the outcome.
// The response is nil when no HTTP exchange completed (timeout or network
// failure); the returned Result then carries status 0 and the canonical
// timeout/network message. The abort timer armed by the client's timeout
// is released on every path, success or failure.
func (h *httpClubAdapter) execute(ctx context.Context, spec callSpec) (*resty.Response, Result) {
	req := h.client.R().SetContext(ctx)

	if !spec.anonymous {
		if token := h.Token(); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
	}
	if len(spec.query) > 0 {
		req.SetQueryParamsFromValues(spec.query)
	}

	switch {
	case spec.file != nil:
		// Multipart: the transport computes the boundary, so no explicit
		// Content-Type here.
		req.SetFormData(spec.fields)
		req.SetFileReader(spec.file.param, spec.file.filename, spec.file.reader)
	case spec.fields != nil:
		req.SetFormData(spec.fields)
	case spec.body != nil:
		req.SetHeader("Content-Type", "application/json").SetBody(spec.body)
	}

	resp, err := req.Execute(spec.method, spec.endpoint)
	if err != nil {
		res := transportFailure(err)
		h.logger.Debug().
			Str("method", spec.method).
			Str("endpoint", spec.endpoint).
			Str("reason", res.Message).
			Msg("request failed before a response was obtained")
		return nil, res
	}

	return resp, newResult(resp.StatusCode(), resp.Body())
}

// transportFailure normalizes an error raised before any HTTP status was
// obtained. Deadline expiry maps to the timeout message, everything else
// (DNS, refused connection, reset) to the network message.
func transportFailure(err error) Result {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return Result{Status: 0, Data: emptyObject, Message: MsgTimeout}
	}
	return Result{Status: 0, Data: emptyObject, Message: MsgNetwork}
}

// Do implements [ClubAdapter].
func (h *httpClubAdapter) Do(ctx context.Context, method, endpoint string, body any) Result {
	if endpoint == "" {
		return Result{Status: 0, Data: emptyObject, Message: "empty endpoint path"}
	}

	_, res := h.execute(ctx, callSpec{method: method, endpoint: endpoint, body: body})
	return res
}

// Login implements [ClubAdapter]. On success the returned bearer token is
// stored via SetToken and attached to all subsequent requests.
func (h *httpClubAdapter) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	_, res := h.execute(ctx, callSpec{
		method:    http.MethodPost,
		endpoint:  "/auth/login",
		body:      creds,
		anonymous: true,
	})
	if err := mapResult(res); err != nil {
		return models.Token{}, err
	}

	var token models.Token
	if err := res.Decode(&token); err != nil {
		return models.Token{}, fmt.Errorf("login: %w", err)
	}

	h.SetToken(token.AccessToken)
	return token, nil
}

// CurrentUser implements [ClubAdapter].
func (h *httpClubAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	_, res := h.execute(ctx, callSpec{method: http.MethodGet, endpoint: "/auth/me"})
	if err := mapResult(res); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := res.Decode(&user); err != nil {
		return models.User{}, fmt.Errorf("current user: %w", err)
	}
	return user, nil
}

// Events implements [ClubAdapter].
func (h *httpClubAdapter) Events(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	query := url.Values{}
	if filter.Type != "" {
		query.Set("type", string(filter.Type))
	}
	if filter.IsActive != nil {
		query.Set("is_active", fmt.Sprintf("%t", *filter.IsActive))
	}

	_, res := h.execute(ctx, callSpec{method: http.MethodGet, endpoint: "/events", query: query})
	if err := mapResult(res); err != nil {
		return nil, err
	}

	var events []models.Event
	if err := res.Decode(&events); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Event implements [ClubAdapter].
func (h *httpClubAdapter) Event(ctx context.Context, id uuid.UUID) (models.Event, error) {
	_, res := h.execute(ctx, callSpec{method: http.MethodGet, endpoint: "/events/" + id.String()})
	if err := mapResult(res); err != nil {
		return models.Event{}, err
	}

	var event models.Event
	if err := res.Decode(&event); err != nil {
		return models.Event{}, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// CreateEvent implements [ClubAdapter].
func (h *httpClubAdapter) CreateEvent(ctx context.Context, create models.EventCreate) (models.Event, error) {
	_, res := h.execute(ctx, callSpec{method: http.MethodPost, endpoint: "/events", body: create})
	if err := mapResult(res); err != nil {
		return models.Event{}, err
	}

	var event models.Event
	if err := res.Decode(&event); err != nil {
		return models.Event{}, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// UpdateEvent implements [ClubAdapter].
func (h *httpClubAdapter) UpdateEvent(ctx context.Context, id uuid.UUID, upd models.EventUpdate) (models.Event, error) {
	_, res := h.execute(ctx, callSpec{method: http.MethodPut, endpoint: "/events/" + id.String(), body: upd})
	if err := mapResult(res); err != nil {
		return models.Event{}, err
	}

	var event models.Event
	if err := res.Decode(&event); err != nil {
		return models.Event{}, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// DeleteEvent implements [ClubAdapter].
func (h *httpClubAdapter) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	_, res := h.execute(ctx, callSpec{method: http.MethodDelete, endpoint: "/events/" + id.String()})
	return mapResult(res)
}

// CreateRegistration implements [ClubAdapter].
func (h *httpClubAdapter) CreateRegistration(ctx context.Context, create models.RegistrationCreate) (models.Registration, error) {
	_, res := h.execute(ctx, callSpec{
		method:    http.MethodPost,
		endpoint:  "/registrations",
		body:      create,
		anonymous: true,
	})
	if err := mapResult(res); err != nil {
		return models.Registration{}, err
	}

	var reg models.Registration
	if err := res.Decode(&reg); err != nil {
		return models.Registration{}, fmt.Errorf("create registration: %w", err)
	}
	return reg, nil
}

// Registrations implements [ClubAdapter].
func (h *httpClubAdapter) Registrations(ctx context.Context, filter models.RegistrationFilter) ([]models.Registration, error) {
	query := url.Values{}
	if filter.EventID != uuid.Nil {
		query.Set("event_id", filter.EventID.String())
	}
	if filter.MoodleID != "" {
		query.Set("moodle_id", filter.MoodleID)
	}

	_, res := h.execute(ctx, callSpec{method: http.MethodGet, endpoint: "/registrations", query: query})
	if err := mapResult(res); err != nil {
		return nil, err
	}

	var regs []models.Registration
	if err := res.Decode(&regs); err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

// ExportRegistrationsCSV implements [ClubAdapter]. The 2xx body is raw CSV,
// so it is returned verbatim instead of being decoded.
func (h *httpClubAdapter) ExportRegistrationsCSV(ctx context.Context, eventID uuid.UUID) ([]byte, error) {
	query := url.Values{"export": {"csv"}}
	if eventID != uuid.Nil {
		query.Set("event_id", eventID.String())
	}

	resp, res := h.execute(ctx, callSpec{method: http.MethodGet, endpoint: "/registrations", query: query})
	if err := mapResult(res); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Resources implements [ClubAdapter].
func (h *httpClubAdapter) Resources(ctx context.Context, level models.ResourceLevel) ([]models.Resource, error) {
	query := url.Values{}
	if level != "" {
		query.Set("level", string(level))
	}

	_, res := h.execute(ctx, callSpec{method: http.MethodGet, endpoint: "/resources", query: query})
	if err := mapResult(res); err != nil {
		return nil, err
	}

	var resources []models.Resource
	if err := res.Decode(&resources); err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return resources, nil
}

// Resource implements [ClubAdapter].
func (h *httpClubAdapter) Resource(ctx context.Context, id uuid.UUID) (models.Resource, error) {
	_, res := h.execute(ctx, callSpec{method: http.MethodGet, endpoint: "/resources/" + id.String()})
	if err := mapResult(res); err != nil {
		return models.Resource{}, err
	}

	var resource models.Resource
	if err := res.Decode(&resource); err != nil {
		return models.Resource{}, fmt.Errorf("get resource: %w", err)
	}
	return resource, nil
}

// UploadResource implements [ClubAdapter]. The request goes through the
// same transport primitive as every other call, so it inherits the shared
// timeout and error-normalization contract.
func (h *httpClubAdapter) UploadResource(ctx context.Context, up models.ResourceUpload) (models.Resource, error) {
	_, res := h.execute(ctx, callSpec{
		method:   http.MethodPost,
		endpoint: "/resources",
		fields: map[string]string{
			"title": up.Title,
			"level": string(up.Level),
		},
		file: &fileAttachment{param: "file", filename: up.Filename, reader: up.File},
	})
	if err := mapResult(res); err != nil {
		return models.Resource{}, err
	}

	var resource models.Resource
	if err := res.Decode(&resource); err != nil {
		return models.Resource{}, fmt.Errorf("upload resource: %w", err)
	}
	return resource, nil
}

// UpdateResource implements [ClubAdapter]. The backend takes resource
// metadata as form fields rather than JSON.
func (h *httpClubAdapter) UpdateResource(ctx context.Context, id uuid.UUID, upd models.ResourceUpdate) (models.Resource, error) {
	fields := map[string]string{}
	if upd.Title != nil {
		fields["title"] = *upd.Title
	}
	if upd.Level != nil {
		fields["level"] = string(*upd.Level)
	}

	_, res := h.execute(ctx, callSpec{method: http.MethodPut, endpoint: "/resources/" + id.String(), fields: fields})
	if err := mapResult(res); err != nil {
		return models.Resource{}, err
	}

	var resource models.Resource
	if err := res.Decode(&resource); err != nil {
		return models.Resource{}, fmt.Errorf("update resource: %w", err)
	}
	return resource, nil
}

// DeleteResource implements [ClubAdapter].
func (h *httpClubAdapter) DeleteResource(ctx context.Context, id uuid.UUID) error {
	_, res := h.execute(ctx, callSpec{method: http.MethodDelete, endpoint: "/resources/" + id.String()})
	return mapResult(res)
}

// DownloadResource implements [ClubAdapter].
func (h *httpClubAdapter) DownloadResource(ctx context.Context, id uuid.UUID) (models.FileDownload, error) {
	resp, res := h.execute(ctx, callSpec{
		method:    http.MethodGet,
		endpoint:  "/resources/" + id.String() + "/download",
		anonymous: true,
	})
	if err := mapResult(res); err != nil {
		return models.FileDownload{}, err
	}

	filename := filenameFromDisposition(resp.Header().Get("Content-Disposition"))
	if filename == "" {
		filename = fmt.Sprintf("resource-%s.pdf", id)
	}

	return models.FileDownload{Filename: filename, Content: resp.Body()}, nil
}

// filenameFromDisposition extracts the filename parameter from a
// Content-Disposition header value. Returns "" when the header is absent
// or unparsable.
func filenameFromDisposition(header string) string {
	if header == "" {
		return ""
	}

	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}

// CreateHackathonTeam implements [ClubAdapter].
func (h *httpClubAdapter) CreateHackathonTeam(ctx context.Context, create models.HackathonTeamCreate) (models.HackathonTeam, error) {
	_, res := h.execute(ctx, callSpec{
		method:    http.MethodPost,
		endpoint:  "/hackathon-teams",
		body:      create,
		anonymous: true,
	})
	if err := mapResult(res); err != nil {
		return models.HackathonTeam{}, err
	}

	var team models.HackathonTeam
	if err := res.Decode(&team); err != nil {
		return models.HackathonTeam{}, fmt.Errorf("create hackathon team: %w", err)
	}
	return team, nil
}

// HackathonTeams implements [ClubAdapter].
func (h *httpClubAdapter) HackathonTeams(ctx context.Context) ([]models.HackathonTeam, error) {
	_, res := h.execute(ctx, callSpec{method: http.MethodGet, endpoint: "/hackathon-teams"})
	if err := mapResult(res); err != nil {
		return nil, err
	}

	var teams []models.HackathonTeam
	if err := res.Decode(&teams); err != nil {
		return nil, fmt.Errorf("list hackathon teams: %w", err)
	}
	return teams, nil
}
