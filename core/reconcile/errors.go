package reconcile

import (
	"errors"
	"fmt"
)

// ErrNoAdapters is returned when an engine has nothing to load.
var ErrNoAdapters = errors.New("no source adapters registered")

// LoadError reports a source that could not be read or parsed.
// When Load returns a LoadError no snapshot is published.
type LoadError struct {
	// System is the failing source.
	System SourceSystem
	// Location describes where the export was read from.
	Location string
	// Err is the underlying read or parse error.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s from %s: %v", e.System, e.Location, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
