package app

import (
	"errors"
	"strings"
)

// Sentinel kinds for orchestrator errors.
var (
	ErrNoSource = errors.New("no measurement source configured")
)

// ValidationError reports a malformed analysis request. Every violated
// constraint is enumerated, not just the first.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid analysis request: " + strings.Join(e.Violations, "; ")
}

// AsValidation extracts a ValidationError from an error chain.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
