package values

import "errors"

var (
	// ErrEmptyKey is returned when a configuration entry is added without a key.
	ErrEmptyKey = errors.New("configuration key must not be empty")
)
