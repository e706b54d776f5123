package domain

import "errors"

// Error kinds returned by the service layer. Handlers map these to HTTP
// status codes with errors.Is; storage-level detail never crosses the API
// boundary.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidState    = errors.New("invalid state")
	ErrConflict        = errors.New("reservation conflict")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
)
