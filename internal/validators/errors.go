package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername      = errors.New("username is required")
	ErrEmptyPassword      = errors.New("password is required")
	ErrEmptyTitle         = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title must be at most 200 characters")
	ErrInvalidEventType   = errors.New("invalid event type")
	ErrInvalidDate        = errors.New("invalid event date")
	ErrInvalidEventID     = errors.New("invalid event ID")
	ErrEmptyOperativeName = errors.New("name is required")
	ErrInvalidMoodleID    = errors.New("moodle id must be 8-12 letters or digits")
	ErrInvalidLevel       = errors.New("invalid resource level")
	ErrNotPDF             = errors.New("only PDF files are accepted")
	ErrMissingFile        = errors.New("file is required")
	ErrFileTooLarge       = errors.New("file exceeds the 10 MB limit")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
	ErrEmptyTeamName      = errors.New("team name is required")
	ErrEmptyEventName     = errors.New("event name is required")
	ErrInvalidTeamSize    = errors.New("team must have exactly 4 members")
	ErrInvalidLeaderCount = errors.New("team must have exactly one leader")
	ErrInvalidMobile      = errors.New("mobile number must be exactly 10 digits")
	ErrEmptyMemberName    = errors.New("member name is required")
)
