package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clubops/clubkit/internal/adapter"
	"github.com/clubops/clubkit/internal/validators"
	"github.com/clubops/clubkit/models"
	"github.com/google/uuid"
)

type registrationService struct {
	adapter   adapter.ClubAdapter
	validator validators.Validator
}

func NewRegistrationService(clubAdapter adapter.ClubAdapter, validator validators.Validator) RegistrationService {
	return &registrationService{adapter: clubAdapter, validator: validator}
}

// Register implements RegistrationService.
func (s *registrationService) Register(ctx context.Context, create models.RegistrationCreate) (models.Registration, error) {
	if err := s.validator.Validate(ctx, create); err != nil {
		return models.Registration{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	reg, err := s.adapter.CreateRegistration(ctx, create)
	if err != nil {
		return models.Registration{}, fmt.Errorf("create registration: %w", err)
	}
	return reg, nil
}

// List implements RegistrationService.
func (s *registrationService) List(ctx context.Context, filter models.RegistrationFilter) ([]models.Registration, error) {
	regs, err := s.adapter.Registrations(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

// ExportCSV implements RegistrationService. The file lands in destDir as
// "registrations-<event-id>-<timestamp>.csv" (or "registrations-all-..."
// when no event is given) so repeated exports never clobber each other.
func (s *registrationService) ExportCSV(ctx context.Context, eventID uuid.UUID, destDir string) (string, error) {
	data, err := s.adapter.ExportRegistrationsCSV(ctx, eventID)
	if err != nil {
		return "", fmt.Errorf("export registrations: %w", err)
	}

	scope := "all"
	if eventID != uuid.Nil {
		scope = eventID.String()
	}
	name := fmt.Sprintf("registrations-%s-%s.csv", scope, time.Now().Format("20060102-150405"))

	path := filepath.Join(destDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	return path, nil
}

// CreateTeam implements RegistrationService.
func (s *registrationService) CreateTeam(ctx context.Context, create models.HackathonTeamCreate) (models.HackathonTeam, error) {
	if err := s.validator.Validate(ctx, create); err != nil {
		return models.HackathonTeam{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	team, err := s.adapter.CreateHackathonTeam(ctx, create)
	if err != nil {
		return models.HackathonTeam{}, fmt.Errorf("create hackathon team: %w", err)
	}
	return team, nil
}

// Teams implements RegistrationService.
func (s *registrationService) Teams(ctx context.Context) ([]models.HackathonTeam, error) {
	teams, err := s.adapter.HackathonTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hackathon teams: %w", err)
	}
	return teams, nil
}
