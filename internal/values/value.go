package values

import (
	"encoding/json"
	"reflect"
)

// Value is one configuration value. The set of implementations is closed:
// Bool, String, Number and Unsupported.
type Value interface {
	// TypeName reports the runtime type name used in error messages.
	TypeName() string
	isValue()
}

// Bool is a boolean configuration value.
type Bool bool

// String is a text configuration value.
type String string

// Number is a numeric configuration value. Integral and fractional numbers
// share one representation; classification happens at render time.
type Number float64

// Unsupported carries a value whose runtime type cannot be rendered.
type Unsupported struct {
	Type string
}

func (Bool) TypeName() string          { return "boolean" }
func (String) TypeName() string        { return "string" }
func (Number) TypeName() string        { return "number" }
func (u Unsupported) TypeName() string { return u.Type }

func (Bool) isValue()        {}
func (String) isValue()      {}
func (Number) isValue()      {}
func (Unsupported) isValue() {}

// FromAny converts a dynamically typed Go value into a Value. It never fails:
// values of any other type become Unsupported.
func FromAny(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(t)
	case int8:
		return Number(t)
	case int16:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case uint:
		return Number(t)
	case uint8:
		return Number(t)
	case uint16:
		return Number(t)
	case uint32:
		return Number(t)
	case uint64:
		return Number(t)
	case float32:
		return Number(t)
	case float64:
		return Number(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Unsupported{Type: "number"}
		}
		return Number(f)
	case nil:
		return Unsupported{Type: "null"}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.String:
		return String(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.Map, reflect.Struct:
		return Unsupported{Type: "object"}
	case reflect.Slice, reflect.Array:
		return Unsupported{Type: "array"}
	case reflect.Func:
		return Unsupported{Type: "function"}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Unsupported{Type: "null"}
		}
		return FromAny(rv.Elem().Interface())
	}
	return Unsupported{Type: rv.Type().String()}
}
