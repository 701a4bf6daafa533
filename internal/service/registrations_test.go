package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/clubops/clubkit/internal/mock"
	"github.com/clubops/clubkit/internal/validators"
	"github.com/clubops/clubkit/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRegSvc(t *testing.T, ctrl *gomock.Controller) (RegistrationService, *mock.MockClubAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockClubAdapter(ctrl)
	return NewRegistrationService(mockAdapter, validators.NewClubDataValidator()), mockAdapter
}

func TestRegistrationService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestRegSvc(t, ctrl)
	ctx := context.Background()

	create := models.RegistrationCreate{
		EventID:       uuid.New(),
		OperativeName: "Alice",
		MoodleID:      "ABCD1234",
	}
	want := models.Registration{ID: uuid.New(), OperativeName: "Alice"}

	mockAdapter.EXPECT().CreateRegistration(ctx, create).Return(want, nil)

	reg, err := svc.Register(ctx, create)
	require.NoError(t, err)
	assert.Equal(t, want, reg)
}

func TestRegistrationService_Register_BadMoodleID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestRegSvc(t, ctrl)

	_, err := svc.Register(context.Background(), models.RegistrationCreate{
		EventID:       uuid.New(),
		OperativeName: "Alice",
		MoodleID:      "nope",
	})

	assert.ErrorIs(t, err, validators.ErrInvalidMoodleID)
}

func TestRegistrationService_ExportCSV_WritesFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestRegSvc(t, ctrl)
	ctx := context.Background()

	eventID := uuid.New()
	csv := []byte("operative_name,moodle_id\nAlice,ABCD1234\n")
	mockAdapter.EXPECT().ExportRegistrationsCSV(ctx, eventID).Return(csv, nil)

	dir := t.TempDir()
	path, err := svc.ExportCSV(ctx, eventID, dir)

	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Contains(t, filepath.Base(path), eventID.String())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, csv, got)
}

func TestRegistrationService_ExportCSV_AllEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestRegSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ExportRegistrationsCSV(ctx, uuid.Nil).Return([]byte("a,b\n"), nil)

	path, err := svc.ExportCSV(ctx, uuid.Nil, t.TempDir())

	require.NoError(t, err)
	assert.Contains(t, filepath.Base(path), "registrations-all-")
}

func TestRegistrationService_CreateTeam_WrongSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestRegSvc(t, ctrl)

	_, err := svc.CreateTeam(context.Background(), models.HackathonTeamCreate{
		EventName: "Hack Night",
		TeamName:  "gophers",
		TeamMembers: []models.TeamMember{
			{Name: "Solo", MoodleID: "ABCD1234", Mobile: "9876543210", IsLeader: true},
		},
	})

	assert.ErrorIs(t, err, validators.ErrInvalidTeamSize)
}

func TestRegistrationService_CreateTeam_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestRegSvc(t, ctrl)
	ctx := context.Background()

	members := make([]models.TeamMember, 0, models.TeamSize)
	for i := 0; i < models.TeamSize; i++ {
		members = append(members, models.TeamMember{
			Name:     "Member",
			MoodleID: "ABCD1234",
			Mobile:   "9876543210",
			IsLeader: i == 0,
		})
	}
	create := models.HackathonTeamCreate{
		EventName:   "Hack Night",
		TeamName:    "gophers",
		TeamMembers: members,
	}
	want := models.HackathonTeam{ID: uuid.New(), TeamName: "gophers"}

	mockAdapter.EXPECT().CreateHackathonTeam(ctx, create).Return(want, nil)

	team, err := svc.CreateTeam(ctx, create)
	require.NoError(t, err)
	assert.Equal(t, want, team)
}
