package pkg

import "github.com/google/uuid"

// NewID returns a time-ordered unique identifier (UUIDv7).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// only on entropy failure; a random v4 is still unique
		return uuid.NewString()
	}
	return id.String()
}
