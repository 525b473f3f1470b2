package player

import "errors"

var (
	ErrUnknownPosition = errors.New("unknown position")
	ErrUnknownRole     = errors.New("unknown role")
	ErrInvariant       = errors.New("record invariant violated")
)
