package source

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/elm-build-config/internal/values"
)

// ParseYAML reads a YAML or JSON document whose top level is a mapping.
// An empty document yields an empty configuration.
func ParseYAML(data []byte) (*values.Configuration, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	cfg := values.New()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return cfg, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: got %s at line %d", ErrInvalidDocument, kindName(root), root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: non-scalar key at line %d", ErrInvalidDocument, keyNode.Line)
		}
		value, err := nodeValue(valueNode)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyNode.Value, err)
		}
		if err := cfg.Set(keyNode.Value, value); err != nil {
			return nil, fmt.Errorf("line %d: %w", keyNode.Line, err)
		}
	}
	return cfg, nil
}

func nodeValue(n *yaml.Node) (values.Value, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.MappingNode:
		return values.Unsupported{Type: "object"}, nil
	case yaml.SequenceNode:
		return values.Unsupported{Type: "array"}, nil
	case yaml.ScalarNode:
		return scalarValue(n)
	default:
		return values.Unsupported{Type: kindName(n)}, nil
	}
}

func scalarValue(n *yaml.Node) (values.Value, error) {
	switch tag := n.ShortTag(); tag {
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return values.Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return values.Number(f), nil
	case "!!null":
		return values.Unsupported{Type: "null"}, nil
	case "!!str", "!!timestamp":
		// timestamps keep their source text
		return values.String(n.Value), nil
	default:
		return values.Unsupported{Type: strings.TrimPrefix(tag, "!!")}, nil
	}
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "array"
	case yaml.MappingNode:
		return "object"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
