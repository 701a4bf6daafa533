package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamSize is the exact number of members a hackathon team must have.
const TeamSize = 4

// TeamMember is one participant inside a hackathon team sign-up.
type TeamMember struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	MoodleID   string `json:"moodle_id"`
	RollNo     string `json:"roll_no"`
	Division   string `json:"division"`
	Department string `json:"department"`
	Year       string `json:"year"`

	// Mobile must be exactly 10 digits.
	Mobile string `json:"mobile"`

	// IsLeader marks the single team leader. Exactly one member per team
	// must carry this flag.
	IsLeader bool `json:"is_leader"`
}

// HackathonTeamCreate is the public payload for registering a hackathon
// team. TeamMembers must contain exactly [TeamSize] entries with exactly
// one leader among them.
type HackathonTeamCreate struct {
	EventName   string       `json:"event_name"`
	TeamName    string       `json:"team_name"`
	TeamMembers []TeamMember `json:"team_members"`
}

// HackathonTeam is a stored team registration as returned by the backend.
type HackathonTeam struct {
	ID        uuid.UUID             `json:"id"`
	EventName string                `json:"event_name"`
	TeamName  string                `json:"team_name"`
	CreatedAt time.Time             `json:"created_at"`
	Members   []HackathonTeamMember `json:"members"`
}

// HackathonTeamMember is a stored team member record.
type HackathonTeamMember struct {
	ID uuid.UUID `json:"id"`
	TeamMember
	CreatedAt time.Time `json:"created_at"`
}
