package adsurface

import "errors"

var (
	// ErrNoPlaceholder is returned when a surface is constructed without a
	// placeholder element.
	ErrNoPlaceholder = errors.New("placeholder element is required")

	// ErrDestroyed is the sentinel wrapped by every terminal-state failure.
	// Match with errors.Is.
	ErrDestroyed = errors.New("container has been destroyed")

	// ErrNotReady is returned by operations that need the completed frame
	// before setup has finished.
	ErrNotReady = errors.New("container setup has not completed")
)

// destroyedError is the terminal-state failure. Its message is fixed per
// variant so misuse is attributable in logs.
type destroyedError struct {
	component string
}

func (e *destroyedError) Error() string {
	return e.component + " has been destroyed"
}

func (e *destroyedError) Unwrap() error {
	return ErrDestroyed
}
