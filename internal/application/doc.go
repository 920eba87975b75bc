// Package application wires the generator's dependencies together. It loads
// configuration values from the configured sources and hands them to the
// module generator, keeping the main package focused on CLI parsing.
package application
