package generator

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	DefaultSourceDirectory = "src"
	DefaultModuleName      = "BuildConfig"

	moduleSeparator = "."
	fileExtension   = ".elm"
)

// Options controls where the module is written and what it is called.
// Empty fields fall back to the defaults.
type Options struct {
	SourceDirectory string
	ModuleName      string
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		SourceDirectory: DefaultSourceDirectory,
		ModuleName:      DefaultModuleName,
	}
}

// WithDefaults fills empty fields of o from DefaultOptions.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.SourceDirectory != "" {
		d.SourceDirectory = o.SourceDirectory
	}
	if o.ModuleName != "" {
		d.ModuleName = o.ModuleName
	}
	return d
}

// Validate checks the module name after defaults are applied.
func (o Options) Validate() error {
	name := o.WithDefaults().ModuleName
	for _, segment := range strings.Split(name, moduleSeparator) {
		if strings.TrimSpace(segment) == "" {
			return fmt.Errorf("%w: %q", ErrInvalidModuleName, name)
		}
	}
	return nil
}

// ResolvePath returns the file the module is written to.
func ResolvePath(o Options) string {
	o = o.WithDefaults()
	rel := strings.ReplaceAll(o.ModuleName, moduleSeparator, string(filepath.Separator))
	return filepath.Join(o.SourceDirectory, rel+fileExtension)
}
