package literal

// Type is the Elm type annotation of a rendered field.
type Type int

const (
	Bool Type = iota + 1
	String
	Int
	Float
)

func (t Type) String() string {
	switch t {
	case Bool:
		return "Bool"
	case String:
		return "String"
	case Int:
		return "Int"
	case Float:
		return "Float"
	default:
		return "Unknown"
	}
}

// Field is a rendered configuration entry ready to be placed in a module.
type Field struct {
	Key     string
	Type    Type
	Literal string
}
