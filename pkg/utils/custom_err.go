package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrEmailTaken          = errors.New("email already exists")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters")
	ErrTripNameRequired    = errors.New("trip name is required")
	ErrNameTooLong         = errors.New("name must be at most 140 characters")
	ErrDestinationRequired = errors.New("name, lat and lon are required")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUnauthenticated     = errors.New("authentication required")
	ErrForbidden           = errors.New("forbidden")
	ErrUserNotFound        = errors.New("user not found")
	ErrTripNotFound        = errors.New("trip not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrSuggestionsDisabled = errors.New("suggestions are not available")
	ErrDatabaseError       = errors.New("database error")
)
