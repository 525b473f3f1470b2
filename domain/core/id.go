package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SnapshotID identifies one generated population. Regenerating with the same seed
// yields identical records but a new SnapshotID.
type SnapshotID string

// NewSnapshotID returns a UUIDv7, so ids sort by creation time.
func NewSnapshotID() SnapshotID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return SnapshotID(id.String())
}

func (id SnapshotID) String() string { return string(id) }

// ParseSnapshotID validates s as a UUID.
func ParseSnapshotID(s string) (SnapshotID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("snapshot id is empty")
	}
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("snapshot id %q: %w", s, err)
	}
	return SnapshotID(s), nil
}
