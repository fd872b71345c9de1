package snapshot

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Load when no snapshot has been saved yet.
// Callers treat it as an empty cart, never as a failure.
var ErrNotFound = errors.New("snapshot not found")

// ErrUnknownProvider creates an error for unknown snapshot providers.
func ErrUnknownProvider(provider string) error {
	return fmt.Errorf("unknown snapshot provider: %s", provider)
}
