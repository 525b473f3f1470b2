package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	ErrNotFound       = errors.New("resource not found")
	ErrPlayerNotFound = fmt.Errorf("%w: player", ErrNotFound)
	ErrTeamNotFound   = fmt.Errorf("%w: team", ErrNotFound)

	ErrUnknownCategory  = errors.New("unknown statistical category")
	ErrUnknownMetric    = errors.New("unknown metric")
	ErrInsufficientData = errors.New("insufficient data for analysis")

	ErrHashMismatch = errors.New("hash mismatch")
)

// NewNotFoundError names the missing resource and its id.
func NewNotFoundError(resource error, id interface{}) error {
	return fmt.Errorf("%w with id %v", resource, id)
}

// IsNotFoundError reports whether err is any not-found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
