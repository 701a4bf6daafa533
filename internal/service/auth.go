package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/clubops/clubkit/internal/adapter"
	"github.com/clubops/clubkit/internal/utils"
	"github.com/clubops/clubkit/internal/validators"
	"github.com/clubops/clubkit/models"
)

type authService struct {
	adapter   adapter.ClubAdapter
	validator validators.Validator
}

func NewAuthService(clubAdapter adapter.ClubAdapter, validator validators.Validator) AuthService {
	return &authService{adapter: clubAdapter, validator: validator}
}

// Login implements AuthService.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := a.adapter.Login(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	user, err := a.adapter.CurrentUser(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("fetch profile after login: %w", err)
	}

	return user, nil
}

// RestoreSession implements AuthService. The local expiry check reads the
// token's exp claim without verifying the signature; only the backend can
// vouch for the token, so a locally "valid" token is still confirmed with
// a profile request.
func (a *authService) RestoreSession(ctx context.Context) (models.User, error) {
	token := a.adapter.Token()
	if token == "" {
		return models.User{}, ErrNoSession
	}

	if utils.TokenExpired(token) {
		a.adapter.ClearToken()
		return models.User{}, ErrSessionExpired
	}

	user, err := a.adapter.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			a.adapter.ClearToken()
			return models.User{}, fmt.Errorf("%w: %w", ErrSessionExpired, err)
		}
		return models.User{}, fmt.Errorf("restore session: %w", err)
	}

	return user, nil
}

// Ping implements AuthService.
func (a *authService) Ping(ctx context.Context) error {
	if _, err := a.adapter.CurrentUser(ctx); err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			a.adapter.ClearToken()
			return fmt.Errorf("%w: %w", ErrSessionExpired, err)
		}
		return fmt.Errorf("session ping: %w", err)
	}
	return nil
}

// Logout implements AuthService.
func (a *authService) Logout() {
	a.adapter.ClearToken()
}
