// Package writer persists generated files through an afero filesystem so
// callers can swap the OS filesystem for an in-memory one.
package writer
