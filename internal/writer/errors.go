package writer

import (
	"errors"
	"fmt"
)

// ErrFilesystem is matched by every *FilesystemError via errors.Is.
var ErrFilesystem = errors.New("filesystem error")

// FilesystemError reports a failed directory creation or file write.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *FilesystemError) Unwrap() []error {
	return []error{ErrFilesystem, e.Err}
}
