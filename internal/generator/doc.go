// Package generator assembles an Elm module from a configuration map and
// writes it below a source directory.
//
// The module name doubles as the file location: with the default source
// directory, "Static.Config" is written to src/Static/Config.elm.
package generator
