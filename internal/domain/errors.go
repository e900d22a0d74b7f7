package domain

import "errors"

// Domain errors (no external dependencies). Handlers map these to HTTP codes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrConflict           = errors.New("conflict with current state")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
	ErrNoManagerAssigned  = errors.New("employee has no assigned manager")
	ErrSelfReview         = errors.New("a user cannot be their own reviewer")
	ErrInvalidStatus      = errors.New("invalid review status")
	ErrAlreadyReviewed    = errors.New("leave request already reviewed")
	ErrInsufficientLeave  = errors.New("insufficient leave balance")
)
