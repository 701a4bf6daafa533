package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/clubops/clubkit/internal/logger"
	"github.com/clubops/clubkit/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryTokenStore is an in-memory TokenStore for tests.
type memoryTokenStore struct {
	token string
}

func (m *memoryTokenStore) Load() (string, error) { return m.token, nil }
func (m *memoryTokenStore) Save(t string) error   { m.token = t; return nil }
func (m *memoryTokenStore) Clear() error          { m.token = ""; return nil }

func newTestAdapter(t *testing.T, serverURL string) *httpClubAdapter {
	t.Helper()

	a, err := NewHTTPClubAdapter(Config{BaseURL: serverURL}, &memoryTokenStore{}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpClubAdapter)
}

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPClubAdapter_BaseURLValidation(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "full url", baseURL: "http://localhost:8000/api"},
		{name: "bare host gets scheme", baseURL: "localhost:8000"},
		{name: "trailing slash trimmed", baseURL: "http://localhost:8000/api/"},
		{name: "empty", baseURL: "", wantErr: true},
		{name: "blank", baseURL: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPClubAdapter(Config{BaseURL: tt.baseURL}, nil, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewHTTPClubAdapter_RestoresPersistedToken(t *testing.T) {
	store := &memoryTokenStore{token: "persisted-token"}

	a, err := NewHTTPClubAdapter(Config{BaseURL: "http://localhost:8000/api"}, store, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "persisted-token", a.Token())
}

// ── Token lifecycle ─────────────────────────────────────────────────────────

func TestSetToken_WritesThroughToStore(t *testing.T) {
	store := &memoryTokenStore{}
	a, err := NewHTTPClubAdapter(Config{BaseURL: "http://localhost:8000/api"}, store, logger.Nop())
	require.NoError(t, err)

	a.SetToken("  abc.def.ghi  ")

	assert.Equal(t, "abc.def.ghi", a.Token())
	assert.Equal(t, "abc.def.ghi", store.token)

	a.ClearToken()

	assert.Empty(t, a.Token())
	assert.Empty(t, store.token)
}

// ── Do: the raw request primitive ───────────────────────────────────────────

func TestDo_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/events", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	res := a.Do(context.Background(), http.MethodGet, "/events", nil)

	assert.True(t, res.OK)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.JSONEq(t, `{"items":[]}`, string(res.Data))
	assert.Empty(t, res.Message)
}

func TestDo_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("some.jwt.token")

	res := a.Do(context.Background(), http.MethodGet, "/auth/me", nil)

	assert.True(t, res.OK)
	assert.Equal(t, "Bearer some.jwt.token", gotAuth)
}

func TestDo_NoTokenNoAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.Do(context.Background(), http.MethodGet, "/events", nil)

	assert.Empty(t, gotAuth)
}

func TestDo_ErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Event not found"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	res := a.Do(context.Background(), http.MethodGet, "/events/missing", nil)

	assert.False(t, res.OK)
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, "Event not found", res.Message)
}

func TestDo_NonJSONBodySynthesizesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>Bad Gateway</html>"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	res := a.Do(context.Background(), http.MethodGet, "/events", nil)

	assert.False(t, res.OK)
	assert.Equal(t, http.StatusBadGateway, res.Status)
	assert.JSONEq(t, `{"detail":"HTTP 502: Bad Gateway"}`, string(res.Data))
	assert.Equal(t, "HTTP 502: Bad Gateway", res.Message)
}

func TestDo_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	a, err := NewHTTPClubAdapter(Config{
		BaseURL:        srv.URL,
		RequestTimeout: 20 * time.Millisecond,
	}, &memoryTokenStore{}, logger.Nop())
	require.NoError(t, err)

	res := a.Do(context.Background(), http.MethodGet, "/events", nil)

	assert.False(t, res.OK)
	assert.Equal(t, 0, res.Status)
	assert.Equal(t, MsgTimeout, res.Message)
	assert.JSONEq(t, `{}`, string(res.Data))
}

func TestDo_NetworkError(t *testing.T) {
	// Grab a port nobody is listening on.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	res := a.Do(context.Background(), http.MethodGet, "/events", nil)

	assert.False(t, res.OK)
	assert.Equal(t, 0, res.Status)
	assert.Equal(t, MsgNetwork, res.Message)
}

func TestDo_EmptyEndpoint(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8000/api")
	res := a.Do(context.Background(), http.MethodGet, "", nil)

	assert.False(t, res.OK)
	assert.Equal(t, 0, res.Status)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "admin", creds.Username)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Token{
			AccessToken: "issued.jwt.token",
			TokenType:   "bearer",
			ExpiresIn:   1800,
		})
	}))
	defer srv.Close()

	store := &memoryTokenStore{}
	a, err := NewHTTPClubAdapter(Config{BaseURL: srv.URL}, store, logger.Nop())
	require.NoError(t, err)

	token, err := a.Login(context.Background(), models.Credentials{Username: "admin", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "issued.jwt.token", token.AccessToken)
	assert.Equal(t, "issued.jwt.token", a.Token())
	assert.Equal(t, "issued.jwt.token", store.token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Incorrect username or password"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "admin", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorContains(t, err, "Incorrect username or password")
	assert.Empty(t, a.Token())
}

// ── Events ──────────────────────────────────────────────────────────────────

func TestEvents_FilterQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events", r.URL.Path)
		assert.Equal(t, "Workshop", r.URL.Query().Get("type"))
		assert.Equal(t, "true", r.URL.Query().Get("is_active"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	active := true
	events, err := a.Events(context.Background(), models.EventFilter{
		Type:     models.Workshop,
		IsActive: &active,
	})

	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCreateEvent_Success(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var create models.EventCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&create))
		assert.Equal(t, "Go Workshop", create.Title)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"` + id.String() + `","title":"Go Workshop","type":"Workshop","date":"2026-09-01","is_active":true}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	event, err := a.CreateEvent(context.Background(), models.EventCreate{
		Title: "Go Workshop",
		Type:  models.Workshop,
		Date:  models.NewDate(2026, 9, 1),
	})

	require.NoError(t, err)
	assert.Equal(t, id, event.ID)
	assert.Equal(t, "Go Workshop", event.Title)
}

func TestDeleteEvent_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Event not found"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteEvent(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Registrations ───────────────────────────────────────────────────────────

func TestCreateRegistration_ValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"loc":["body","moodle_id"],"msg":"string does not match regex"}]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateRegistration(context.Background(), models.RegistrationCreate{
		EventID:       uuid.New(),
		OperativeName: "Alice",
		MoodleID:      "x",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorContains(t, err, MsgValidation)
}

func TestExportRegistrationsCSV(t *testing.T) {
	eventID := uuid.New()
	csv := "operative_name,moodle_id,timestamp\nAlice,ABCD1234,2026-08-01T10:00:00Z\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/registrations", r.URL.Path)
		assert.Equal(t, "csv", r.URL.Query().Get("export"))
		assert.Equal(t, eventID.String(), r.URL.Query().Get("event_id"))
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(csv))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ExportRegistrationsCSV(context.Background(), eventID)

	require.NoError(t, err)
	assert.Equal(t, csv, string(got))
}

// ── Resources ───────────────────────────────────────────────────────────────

func TestUploadResource_Multipart(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Go Basics", r.FormValue("title"))
		assert.Equal(t, "beginner", r.FormValue("level"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "go-basics.pdf", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"` + id.String() + `","title":"Go Basics","level":"beginner","file_size":11}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resource, err := a.UploadResource(context.Background(), models.ResourceUpload{
		Title:    "Go Basics",
		Level:    models.Beginner,
		Filename: "go-basics.pdf",
		File:     strings.NewReader("pdf content"),
	})

	require.NoError(t, err)
	assert.Equal(t, id, resource.ID)
}

func TestUploadResource_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	a, err := NewHTTPClubAdapter(Config{
		BaseURL:        srv.URL,
		RequestTimeout: 20 * time.Millisecond,
	}, &memoryTokenStore{}, logger.Nop())
	require.NoError(t, err)

	_, err = a.UploadResource(context.Background(), models.ResourceUpload{
		Title:    "Go Basics",
		Level:    models.Beginner,
		Filename: "go-basics.pdf",
		File:     strings.NewReader("pdf content"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorContains(t, err, MsgTimeout)
}

func TestDownloadResource_FilenameFromDisposition(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/resources/"+id.String()+"/download", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="lecture-notes.pdf"`)
		_, _ = w.Write([]byte("%PDF-1.4 content"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	dl, err := a.DownloadResource(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "lecture-notes.pdf", dl.Filename)
	assert.Equal(t, []byte("%PDF-1.4 content"), dl.Content)
}

func TestDownloadResource_FallbackFilename(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 content"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	dl, err := a.DownloadResource(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "resource-"+id.String()+".pdf", dl.Filename)
}

func TestFilenameFromDisposition(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "quoted", header: `attachment; filename="report.pdf"`, want: "report.pdf"},
		{name: "unquoted", header: `attachment; filename=report.pdf`, want: "report.pdf"},
		{name: "no filename", header: `attachment`, want: ""},
		{name: "empty", header: "", want: ""},
		{name: "garbage", header: `;;;`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filenameFromDisposition(tt.header))
		})
	}
}

// ── Hackathon teams ─────────────────────────────────────────────────────────

func TestCreateHackathonTeam_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hackathon-teams", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail":"Team name already taken"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateHackathonTeam(context.Background(), models.HackathonTeamCreate{TeamName: "gophers"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorContains(t, err, "Team name already taken")
}
