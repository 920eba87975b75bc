// Package literal renders configuration values as Elm literal expressions.
//
// Render infers the Elm type of a value and produces its source text:
//
//	Bool   -> True / False
//	String -> "..." or """...""" when the text spans lines
//	Int    -> 42
//	Float  -> 3.14159
//
// Anything else fails with an *UnsupportedTypeError carrying the key and the
// runtime type name.
package literal
