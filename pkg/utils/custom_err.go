package utils

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrJourneyNotFound  = errors.New("journey not found")
	ErrPOINotFound      = errors.New("poi not found")
	ErrDatabaseError    = errors.New("database error")
)
