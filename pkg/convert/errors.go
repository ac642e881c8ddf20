package convert

import "fmt"

// Kind identifies the category of a conversion failure. The set is
// closed: errors are purely technical and never encode business or
// validation rules.
type Kind uint8

const (
	// KindNone is the zero value and never appears in a returned error.
	KindNone Kind = iota

	// Generic.
	KindEmptyInput
	KindInvalidCharacter
	KindTrailingCharacters

	// Numeric.
	KindOverflow
	KindUnderflow

	// Boolean.
	KindInvalidBoolean

	// Enum.
	KindUnknownEnumValue

	// Float.
	KindInvalidFloat
)

// String returns a stable short description of the kind. The text is
// for logs and developer diagnostics only; it is not localized and not
// user-facing UI copy.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "no error"
	case KindEmptyInput:
		return "empty input"
	case KindInvalidCharacter:
		return "invalid character"
	case KindTrailingCharacters:
		return "trailing characters"
	case KindOverflow:
		return "numeric overflow"
	case KindUnderflow:
		return "numeric underflow"
	case KindInvalidBoolean:
		return "invalid boolean value"
	case KindUnknownEnumValue:
		return "unknown enum value"
	case KindInvalidFloat:
		return "invalid floating-point value"
	default:
		return "unknown conversion error"
	}
}

// NoPos marks an error with no meaningful byte offset.
const NoPos = -1

// Error is a structured conversion failure. It is a small value type:
// constructing one does not allocate beyond the error itself and Input
// is a view of the caller's text, never a copy.
//
// Position convention: Input always holds the original, untrimmed text
// the caller passed in, while Pos (when not NoPos) is a byte offset
// into the trimmed text that the parser actually consumed. Leading
// whitespace therefore does not shift reported offsets.
type Error struct {
	Kind  Kind
	Input string
	Pos   int
}

// Error implements the error interface. The message is assembled from
// the kind's diagnostic string, the offending input, and the offset
// when one is known.
func (e *Error) Error() string {
	if e.Pos == NoPos {
		return fmt.Sprintf("%s: %q", e.Kind, e.Input)
	}
	return fmt.Sprintf("%s: %q at offset %d", e.Kind, e.Input, e.Pos)
}

// newError builds an *Error with no position.
func newError(kind Kind, input string) *Error {
	return &Error{Kind: kind, Input: input, Pos: NoPos}
}

// newErrorAt builds an *Error with a byte offset into the trimmed input.
func newErrorAt(kind Kind, input string, pos int) *Error {
	return &Error{Kind: kind, Input: input, Pos: pos}
}
