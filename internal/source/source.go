package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/elm-build-config/internal/values"
)

// LoadFile reads a configuration file from fsys, choosing the parser by
// extension. A nil fsys reads from the OS filesystem.
func LoadFile(fsys afero.Fs, path string) (*values.Configuration, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".json", ".hcl":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	if ext == ".hcl" {
		return ParseHCL(path, data)
	}
	return ParseYAML(data)
}

// ParseAssignments turns key=value pairs into a configuration. Values are
// typed the way a YAML scalar would be: true is a boolean, 3 a number, and
// anything that is not a plain scalar stays text.
func ParseAssignments(assignments []string) (*values.Configuration, error) {
	cfg := values.New()
	for _, assignment := range assignments {
		key, raw, ok := strings.Cut(assignment, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAssignment, assignment)
		}
		if err := cfg.Set(key, assignmentValue(raw)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func assignmentValue(raw string) values.Value {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil || len(doc.Content) == 0 {
		return values.String(raw)
	}
	node := doc.Content[0]
	if node.Kind != yaml.ScalarNode {
		return values.String(raw)
	}
	v, err := scalarValue(node)
	if err != nil {
		return values.String(raw)
	}
	if u, isUnsupported := v.(values.Unsupported); isUnsupported && u.Type != "null" {
		return values.String(raw)
	}
	return v
}

// Merge returns a configuration holding base followed by overrides. Keys in
// overrides replace values from base in place.
func Merge(base, overrides *values.Configuration) *values.Configuration {
	out := values.New()
	for _, cfg := range []*values.Configuration{base, overrides} {
		for _, e := range cfg.Entries() {
			// keys were validated when the source configurations were built
			_ = out.Set(e.Key, e.Value)
		}
	}
	return out
}
