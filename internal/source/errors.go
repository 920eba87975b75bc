package source

import "errors"

var (
	// ErrUnsupportedFormat is returned for files whose extension has no parser.
	ErrUnsupportedFormat = errors.New("unsupported configuration file format")
	// ErrInvalidDocument is returned when a document is not a flat key/value mapping.
	ErrInvalidDocument = errors.New("configuration document must be a key/value mapping")
	// ErrInvalidAssignment is returned for assignments not shaped like key=value.
	ErrInvalidAssignment = errors.New("assignment must have the form key=value")
)
