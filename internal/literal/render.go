package literal

import (
	"math"
	"strconv"

	"github.com/eugenenazirov/elm-build-config/internal/values"
)

// maxSafeInteger is the largest integer an Elm Int holds without losing
// precision once compiled to JavaScript.
const maxSafeInteger = 1<<53 - 1

// Render converts one configuration entry into a Field.
func Render(key string, v values.Value) (Field, error) {
	switch val := v.(type) {
	case values.Bool:
		return Field{Key: key, Type: Bool, Literal: renderBool(bool(val))}, nil
	case values.String:
		return Field{Key: key, Type: String, Literal: Quote(string(val))}, nil
	case values.Number:
		return renderNumber(key, float64(val))
	case nil:
		return Field{}, &UnsupportedTypeError{Key: key, TypeName: "undefined"}
	default:
		return Field{}, &UnsupportedTypeError{Key: key, TypeName: v.TypeName()}
	}
}

// RenderAll renders every entry of cfg in order and stops at the first error.
func RenderAll(cfg *values.Configuration) ([]Field, error) {
	entries := cfg.Entries()
	fields := make([]Field, 0, len(entries))
	for _, e := range entries {
		f, err := Render(e.Key, e.Value)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func renderBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func renderNumber(key string, n float64) (Field, error) {
	switch {
	case math.IsNaN(n):
		return Field{}, &UnsupportedTypeError{Key: key, TypeName: "number", Detail: "NaN"}
	case math.IsInf(n, 0):
		return Field{}, &UnsupportedTypeError{Key: key, TypeName: "number", Detail: "Infinity"}
	}

	if n == math.Trunc(n) {
		if math.Abs(n) > maxSafeInteger {
			return Field{}, &UnsupportedTypeError{
				Key:      key,
				TypeName: "number",
				Detail:   "integer exceeds safe range",
			}
		}
		if n == 0 {
			// drops the sign of -0
			n = 0
		}
		return Field{Key: key, Type: Int, Literal: strconv.FormatInt(int64(n), 10)}, nil
	}

	return Field{Key: key, Type: Float, Literal: strconv.FormatFloat(n, 'f', -1, 64)}, nil
}
