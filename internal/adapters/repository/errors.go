package repository

import "errors"

// Sentinel kinds for data access errors.
var (
	ErrUnavailable = errors.New("measurement source unavailable")
)
