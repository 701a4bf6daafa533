package service

import (
	"context"
	"testing"
	"time"

	"github.com/clubops/clubkit/internal/adapter"
	"github.com/clubops/clubkit/internal/mock"
	"github.com/clubops/clubkit/internal/validators"
	"github.com/clubops/clubkit/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockClubAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockClubAdapter(ctrl)
	svc := NewAuthService(mockAdapter, validators.NewClubDataValidator())
	return svc, mockAdapter
}

// signedToken builds a JWT whose exp claim lies the given offset from now.
func signedToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	creds := models.Credentials{Username: "admin", Password: "secret"}
	want := models.User{Username: "admin"}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, creds).Return(models.Token{AccessToken: "jwt", TokenType: "bearer"}, nil),
		mockAdapter.EXPECT().CurrentUser(ctx).Return(want, nil),
	)

	user, err := svc.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, want, user)
}

func TestAuthService_Login_ValidationStopsBeforeWire(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "", Password: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyUsername)
}

func TestAuthService_Login_ServerRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	creds := models.Credentials{Username: "admin", Password: "wrong"}
	mockAdapter.EXPECT().Login(ctx, creds).Return(models.Token{}, adapter.ErrUnauthorized)

	_, err := svc.Login(ctx, creds)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginOnServer)
}

// ── RestoreSession ──────────────────────────────────────────────────────────

func TestAuthService_RestoreSession_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)
	mockAdapter.EXPECT().Token().Return("")

	_, err := svc.RestoreSession(context.Background())

	assert.ErrorIs(t, err, ErrNoSession)
}

func TestAuthService_RestoreSession_ExpiredLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)

	gomock.InOrder(
		mockAdapter.EXPECT().Token().Return(signedToken(t, -time.Hour)),
		mockAdapter.EXPECT().ClearToken(),
	)

	_, err := svc.RestoreSession(context.Background())

	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestAuthService_RestoreSession_RejectedByServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Token().Return(signedToken(t, time.Hour)),
		mockAdapter.EXPECT().CurrentUser(ctx).Return(models.User{}, adapter.ErrUnauthorized),
		mockAdapter.EXPECT().ClearToken(),
	)

	_, err := svc.RestoreSession(ctx)

	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestAuthService_RestoreSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	want := models.User{Username: "admin"}
	gomock.InOrder(
		mockAdapter.EXPECT().Token().Return(signedToken(t, time.Hour)),
		mockAdapter.EXPECT().CurrentUser(ctx).Return(want, nil),
	)

	user, err := svc.RestoreSession(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, user)
}

func TestAuthService_RestoreSession_BackendDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// A transport failure must not discard the token: the session may
	// still be valid once the backend is reachable again.
	gomock.InOrder(
		mockAdapter.EXPECT().Token().Return(signedToken(t, time.Hour)),
		mockAdapter.EXPECT().CurrentUser(ctx).Return(models.User{}, adapter.ErrUnavailable),
	)

	_, err := svc.RestoreSession(ctx)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionExpired)
}

// ── Ping / Logout ───────────────────────────────────────────────────────────

func TestAuthService_Ping_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().CurrentUser(ctx).Return(models.User{}, adapter.ErrUnauthorized),
		mockAdapter.EXPECT().ClearToken(),
	)

	assert.ErrorIs(t, svc.Ping(ctx), ErrSessionExpired)
}

func TestAuthService_Ping_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().CurrentUser(ctx).Return(models.User{Username: "admin"}, nil)

	assert.NoError(t, svc.Ping(ctx))
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)
	mockAdapter.EXPECT().ClearToken()

	svc.Logout()
}
