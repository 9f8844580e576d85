package repository

import "errors"

// Errors returned by reply repository implementations.
var (
	ErrUnexpectedStatus = errors.New("reply service returned unexpected status")
)
