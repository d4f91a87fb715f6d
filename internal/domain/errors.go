package domain

import "errors"

var (
	ErrClassNotFound   = errors.New("class not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrNoSlotsAvailable  = errors.New("no slots available for this class")
	ErrUserNotRegistered = errors.New("email is not registered")
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var (
	ErrValidation = errors.New("validation error")
)
