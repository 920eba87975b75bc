package literal

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType is matched by every *UnsupportedTypeError via errors.Is.
var ErrUnsupportedType = errors.New("unsupported config type")

// UnsupportedTypeError reports a configuration value that has no Elm literal.
type UnsupportedTypeError struct {
	Key      string
	TypeName string
	// Detail is set for numbers that cannot be represented, e.g. NaN.
	Detail string
}

func (e *UnsupportedTypeError) Error() string {
	msg := fmt.Sprintf("Unsupported config type '%s' @ '%s'", e.TypeName, e.Key)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}
