package outfits

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidName marks an outfit name that is not a valid identifier or
	// collides with the reserved "default" name.
	ErrInvalidName = errors.New("invalid outfit name")

	// ErrNotFound marks a lookup of an outfit the store does not hold.
	ErrNotFound = errors.New("outfit not found")
)

// OwnershipError reports a strict-mode load referencing items the save has
// not unlocked.
type OwnershipError struct {
	Missing []string
}

func (e *OwnershipError) Error() string {
	return fmt.Sprintf("save does not own: %s", strings.Join(e.Missing, ", "))
}
