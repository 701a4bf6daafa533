package service

import (
	"github.com/clubops/clubkit/internal/adapter"
	"github.com/clubops/clubkit/internal/validators"
)

// Services bundles every client-side service behind one wiring point.
type Services struct {
	AuthService         AuthService
	EventService        EventService
	RegistrationService RegistrationService
	ResourceService     ResourceService
	SessionJob          SessionJob
}

// NewServices wires the service layer on top of the backend adapter.
// onSessionExpired is forwarded to the keep-alive job; nil is allowed.
func NewServices(clubAdapter adapter.ClubAdapter, onSessionExpired func()) *Services {
	validator := validators.NewClubDataValidator()

	authSvc := NewAuthService(clubAdapter, validator)

	return &Services{
		AuthService:         authSvc,
		EventService:        NewEventService(clubAdapter, validator),
		RegistrationService: NewRegistrationService(clubAdapter, validator),
		ResourceService:     NewResourceService(clubAdapter, validator),
		SessionJob:          NewSessionJob(authSvc, onSessionExpired),
	}
}
