package literal

import "strings"

const (
	singleDelimiter = `"`
	tripleDelimiter = `"""`
)

// EscapeQuotes prefixes every double quote with a backslash.
func EscapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// ProtectUnicodeEscapes doubles the backslash of every `\u` sequence so the
// Elm compiler does not read it as a unicode escape. It must run after
// EscapeQuotes; the backslashes that step inserts are always followed by a
// quote and are left alone.
func ProtectUnicodeEscapes(s string) string {
	return strings.ReplaceAll(s, `\u`, `\\u`)
}

// Delimiter picks triple quotes for text containing a newline.
func Delimiter(s string) string {
	if strings.Contains(s, "\n") {
		return tripleDelimiter
	}
	return singleDelimiter
}

// Quote returns s as an Elm string literal.
func Quote(s string) string {
	d := Delimiter(s)
	return d + ProtectUnicodeEscapes(EscapeQuotes(s)) + d
}
