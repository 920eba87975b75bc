// Package values defines the configuration values accepted by the generator:
// a closed set of primitive kinds (boolean, string, number) plus an
// Unsupported variant that records the runtime type of anything else, and an
// insertion-ordered Configuration map holding them.
package values
