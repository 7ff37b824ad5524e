package services

import "errors"

var (
	// Local validation errors: raised before any network call.
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrInvalidForm      = errors.New("please fill in every field with valid values")

	// Backend rejections: the call went through but the backend said no.
	ErrSignupRejected     = errors.New("signup failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSaveRejected       = errors.New("failed to save journal (backend rejected)")
	ErrChatRejected       = errors.New("chat reply missing")
	ErrMalformedHistory   = errors.New("malformed journal history")

	// Transport errors.
	ErrBackendUnreachable = errors.New("backend not reachable")
	ErrTransport          = errors.New("server error")

	// Local storage errors.
	ErrSessionStorage = errors.New("could not store the session locally")

	// Invariant violations.
	ErrNotAuthenticated = errors.New("user not logged in properly")
	ErrCorruptSession   = errors.New("stored session is corrupt")
)

// RejectedError carries the backend-supplied message of a rejection. It
// unwraps to the rejection sentinel, so errors.Is keeps working, and its
// text is the backend message when one was given.
type RejectedError struct {
	Err     error
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}

func rejected(sentinel error, message string) error {
	return &RejectedError{Err: sentinel, Message: message}
}
