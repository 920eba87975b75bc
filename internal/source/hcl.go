package source

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/eugenenazirov/elm-build-config/internal/values"
)

// ParseHCL reads top-level attributes of an HCL file in source order.
// Expressions are evaluated without variables or functions; blocks are
// rejected.
func ParseHCL(filename string, data []byte) (*values.Configuration, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse HCL: %w", diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, diags.Error())
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	cfg := values.New()
	for _, attr := range ordered {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluate %q: %w", attr.Name, diags)
		}
		if err := cfg.Set(attr.Name, ctyValue(v)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func ctyValue(v cty.Value) values.Value {
	if v.IsNull() {
		return values.Unsupported{Type: "null"}
	}
	if !v.IsKnown() {
		return values.Unsupported{Type: "unknown"}
	}

	ty := v.Type()
	switch {
	case ty == cty.Bool:
		return values.Bool(v.True())
	case ty == cty.String:
		return values.String(v.AsString())
	case ty == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return values.Number(f)
	case ty.IsObjectType() || ty.IsMapType():
		return values.Unsupported{Type: "object"}
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		return values.Unsupported{Type: "array"}
	default:
		return values.Unsupported{Type: ty.FriendlyName()}
	}
}
