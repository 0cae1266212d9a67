package repository

import (
	"fmt"

	"github.com/google/uuid"
)

// newID returns a fresh row identifier. UUIDv7 is collision-resistant under
// rapid successive creation and import batches, and its time-ordered prefix
// keeps ids roughly insertion-ordered.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id.String(), nil
}
