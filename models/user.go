package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an admin account profile as returned by the backend.
// Credentials never travel in this structure; authentication exchanges
// a username/password pair for a bearer token instead.
type User struct {
	// ID is the server-assigned account identifier.
	ID uuid.UUID `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// LastLogin is the time of the previous successful login, if any.
	LastLogin *time.Time `json:"last_login,omitempty"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// Credentials is the login request payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
