package generator

import "errors"

var (
	// ErrInvalidModuleName is returned when a module name has an empty segment.
	ErrInvalidModuleName = errors.New("module name segments must not be empty")
)
