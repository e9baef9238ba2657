package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrEmptyCatalog is returned when asked to choose from a catalog with no
	// entries.
	ErrEmptyCatalog = errors.New("prompt: catalog has no entries")
)
