package writer

import (
	"os"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Writer creates directories and files on an afero filesystem.
type Writer struct {
	fs afero.Fs
}

// New returns a Writer backed by fs. A nil fs selects the OS filesystem.
func New(fs afero.Fs) *Writer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Writer{fs: fs}
}

// Fs returns the underlying filesystem.
func (w *Writer) Fs() afero.Fs {
	return w.fs
}

// MkdirAll creates dir and any missing parents.
func (w *Writer) MkdirAll(dir string) error {
	if err := w.fs.MkdirAll(dir, dirPerm); err != nil {
		return &FilesystemError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}

// WriteFile writes data to path, replacing any existing content.
func (w *Writer) WriteFile(path string, data []byte) (err error) {
	f, err := w.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return &FilesystemError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			err = &FilesystemError{Op: "write", Path: path, Err: err}
		}
	}()
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	_, err = f.Write(data)
	return err
}
