package tui

import (
	"github.com/clubops/clubkit/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the root router to another page; Payload, when set,
// is delivered to the newly opened page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login flow. A nil Err carries the authenticated
// admin profile.
type LoginResult struct {
	User models.User
	Err  error
}
