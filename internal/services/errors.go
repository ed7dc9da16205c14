package services

import "errors"

// Sentinel errors returned by the ledger services. Handlers map these onto
// HTTP status codes.
var (
	// ErrSelfFollow is returned when a user attempts to follow themselves
	ErrSelfFollow = errors.New("users cannot follow themselves")

	// ErrUserNotFound is returned when an identity does not resolve
	ErrUserNotFound = errors.New("user not found")

	// ErrProjectNotFound is returned when a project does not resolve
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvalidAmount is returned for non-positive point awards
	ErrInvalidAmount = errors.New("point amount must be a positive integer")
)
