// Package config resolves the generator's settings from multiple sources
// (YAML settings file, environment variables, CLI flags) with precedence:
// CLI flags > YAML config > Environment variables > Defaults.
package config
