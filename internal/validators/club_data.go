package validators

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/clubops/clubkit/models"
	"github.com/google/uuid"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldUsername targets the login name of a credentials pair.
	FieldUsername = "username"

	// FieldPassword targets the password of a credentials pair.
	FieldPassword = "password"

	// FieldTitle targets the human-readable title of an event or resource.
	FieldTitle = "title"

	// FieldEventType targets the event category enum.
	FieldEventType = "event_type"

	// FieldDate targets the calendar date of an event.
	FieldDate = "date"

	// FieldEventID targets the event identifier of a registration.
	FieldEventID = "event_id"

	// FieldOperativeName targets the participant name of a registration.
	FieldOperativeName = "operative_name"

	// FieldMoodleID targets the learning-platform identifier of a
	// registration or team member.
	FieldMoodleID = "moodle_id"

	// FieldLevel targets the difficulty level enum of a resource.
	FieldLevel = "level"

	// FieldFilename targets the upload filename of a resource.
	FieldFilename = "filename"

	// FieldFile targets the binary payload of a resource upload.
	FieldFile = "file"

	// FieldTeamName targets the team name of a hackathon sign-up.
	FieldTeamName = "team_name"

	// FieldEventName targets the hackathon event name of a team sign-up.
	FieldEventName = "event_name"

	// FieldTeamMembers targets the member list of a hackathon sign-up.
	FieldTeamMembers = "team_members"
)

// MaxResourceFileSize caps resource uploads, mirroring the server-side
// limit so oversized files are rejected before any bytes travel.
const MaxResourceFileSize = 10 << 20

// maxTitleLength mirrors the server-side column constraint.
const maxTitleLength = 200

var (
	// moodleIDPattern mirrors the server-side rule: 8-12 alphanumerics.
	moodleIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]{8,12}$`)

	// mobilePattern mirrors the server-side rule: exactly 10 digits.
	mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// ClubDataValidator implements the Validator interface for all payloads the
// client sends to the backend: Credentials, EventCreate, EventUpdate,
// RegistrationCreate, ResourceUpload, ResourceUpdate, and
// HackathonTeamCreate.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type ClubDataValidator struct {
}

// NewClubDataValidator constructs a new ClubDataValidator
// and returns it as the Validator interface.
func NewClubDataValidator() Validator {
	return &ClubDataValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *ClubDataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.EventCreate:
		return v.validateEventCreate(ctx, value, fields...)
	case *models.EventCreate:
		return v.validateEventCreate(ctx, *value, fields...)

	case models.EventUpdate:
		return v.validateEventUpdate(ctx, value, fields...)
	case *models.EventUpdate:
		return v.validateEventUpdate(ctx, *value, fields...)

	case models.RegistrationCreate:
		return v.validateRegistrationCreate(ctx, value, fields...)
	case *models.RegistrationCreate:
		return v.validateRegistrationCreate(ctx, *value, fields...)

	case models.ResourceUpload:
		return v.validateResourceUpload(ctx, value, fields...)
	case *models.ResourceUpload:
		return v.validateResourceUpload(ctx, *value, fields...)

	case models.ResourceUpdate:
		return v.validateResourceUpdate(ctx, value, fields...)
	case *models.ResourceUpdate:
		return v.validateResourceUpdate(ctx, *value, fields...)

	case models.HackathonTeamCreate:
		return v.validateHackathonTeamCreate(ctx, value, fields...)
	case *models.HackathonTeamCreate:
		return v.validateHackathonTeamCreate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// isValidEventType reports whether t is one of the recognized EventType
// values defined in models.EventTypes.
func isValidEventType(t models.EventType) bool {
	for _, known := range models.EventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// isValidResourceLevel reports whether l is one of the recognized
// ResourceLevel values defined in models.ResourceLevels.
func isValidResourceLevel(l models.ResourceLevel) bool {
	for _, known := range models.ResourceLevels {
		if l == known {
			return true
		}
	}
	return false
}

// validateCredentials validates a login payload.
//
// Default validated fields: Username, Password.
func (v *ClubDataValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(creds.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEventCreate validates a new event payload.
//
// Default validated fields: Title, EventType, Date.
func (v *ClubDataValidator) validateEventCreate(_ context.Context, create models.EventCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldEventType, FieldDate}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := validateTitle(create.Title); err != nil {
				return err
			}
		case FieldEventType:
			if !isValidEventType(create.Type) {
				return ErrInvalidEventType
			}
		case FieldDate:
			if create.Date.IsZero() {
				return ErrInvalidDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEventUpdate validates a partial event update. Field-level checks
// only trigger when the corresponding pointer is non-nil (partial update
// semantics: nil means "do not touch").
//
// After field-level checks, at least one field must be set; returns
// ErrNoFieldsToUpdate otherwise.
func (v *ClubDataValidator) validateEventUpdate(_ context.Context, upd models.EventUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldEventType, FieldDate}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if upd.Title != nil {
				if err := validateTitle(*upd.Title); err != nil {
					return err
				}
			}
		case FieldEventType:
			if upd.Type != nil && !isValidEventType(*upd.Type) {
				return ErrInvalidEventType
			}
		case FieldDate:
			if upd.Date != nil && upd.Date.IsZero() {
				return ErrInvalidDate
			}
		default:
			return ErrUnknownField
		}
	}

	if upd.Title == nil && upd.Type == nil && upd.Date == nil && upd.Description == nil && upd.IsActive == nil {
		return ErrNoFieldsToUpdate
	}

	return nil
}

// validateRegistrationCreate validates a public sign-up payload.
//
// Default validated fields: EventID, OperativeName, MoodleID.
func (v *ClubDataValidator) validateRegistrationCreate(_ context.Context, create models.RegistrationCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEventID, FieldOperativeName, FieldMoodleID}
	}

	for _, f := range fields {
		switch f {
		case FieldEventID:
			if create.EventID == uuid.Nil {
				return ErrInvalidEventID
			}
		case FieldOperativeName:
			if strings.TrimSpace(create.OperativeName) == "" {
				return ErrEmptyOperativeName
			}
		case FieldMoodleID:
			if !moodleIDPattern.MatchString(create.MoodleID) {
				return ErrInvalidMoodleID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateResourceUpload validates a resource upload payload. The size cap
// is enforced separately by the caller, which knows the file length.
//
// Default validated fields: Title, Level, Filename, File.
func (v *ClubDataValidator) validateResourceUpload(_ context.Context, up models.ResourceUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldLevel, FieldFilename, FieldFile}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := validateTitle(up.Title); err != nil {
				return err
			}
		case FieldLevel:
			if !isValidResourceLevel(up.Level) {
				return ErrInvalidLevel
			}
		case FieldFilename:
			if !strings.EqualFold(filepath.Ext(up.Filename), ".pdf") {
				return ErrNotPDF
			}
		case FieldFile:
			if up.File == nil {
				return ErrMissingFile
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateResourceUpdate validates a partial resource metadata update.
//
// At least one field must be set; returns ErrNoFieldsToUpdate otherwise.
func (v *ClubDataValidator) validateResourceUpdate(_ context.Context, upd models.ResourceUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldLevel}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if upd.Title != nil {
				if err := validateTitle(*upd.Title); err != nil {
					return err
				}
			}
		case FieldLevel:
			if upd.Level != nil && !isValidResourceLevel(*upd.Level) {
				return ErrInvalidLevel
			}
		default:
			return ErrUnknownField
		}
	}

	if upd.Title == nil && upd.Level == nil {
		return ErrNoFieldsToUpdate
	}

	return nil
}

// validateHackathonTeamCreate validates a hackathon team sign-up.
//
// Default validated fields: EventName, TeamName, TeamMembers.
//
// When FieldTeamMembers is validated, the member list must contain exactly
// models.TeamSize entries with exactly one leader; each member is checked
// individually, and a wrapped error names the index of the first invalid
// member.
func (v *ClubDataValidator) validateHackathonTeamCreate(_ context.Context, create models.HackathonTeamCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEventName, FieldTeamName, FieldTeamMembers}
	}

	for _, f := range fields {
		switch f {
		case FieldEventName:
			if strings.TrimSpace(create.EventName) == "" {
				return ErrEmptyEventName
			}
		case FieldTeamName:
			if strings.TrimSpace(create.TeamName) == "" {
				return ErrEmptyTeamName
			}
		case FieldTeamMembers:
			if len(create.TeamMembers) != models.TeamSize {
				return ErrInvalidTeamSize
			}

			leaders := 0
			for i, member := range create.TeamMembers {
				if member.IsLeader {
					leaders++
				}
				if err := validateTeamMember(member); err != nil {
					return fmt.Errorf("validation error at member %d: %w", i, err)
				}
			}
			if leaders != 1 {
				return ErrInvalidLeaderCount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateTeamMember checks a single hackathon team member.
func validateTeamMember(member models.TeamMember) error {
	if strings.TrimSpace(member.Name) == "" {
		return ErrEmptyMemberName
	}
	if !moodleIDPattern.MatchString(member.MoodleID) {
		return ErrInvalidMoodleID
	}
	if !mobilePattern.MatchString(member.Mobile) {
		return ErrInvalidMobile
	}
	return nil
}

// validateTitle checks the shared title constraint of events and resources.
func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
