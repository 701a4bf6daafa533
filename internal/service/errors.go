package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrNoSession means no persisted token exists to resume.
	ErrNoSession = errors.New("no stored session")

	// ErrSessionExpired means the stored token is expired or was rejected
	// by the backend; it has been discarded.
	ErrSessionExpired = errors.New("session is expired")

	ErrLoginOnServer = errors.New("login rejected by server")
	ErrFileTooLarge  = errors.New("file exceeds the upload size limit")
)
