// Package ascii provides locale-free ASCII character predicates, case
// folding, and whitespace trimming. Every conversion in pkg/convert is
// built on these helpers so behavior is identical on every platform
// regardless of the process locale.
package ascii

// IsSpace reports whether c is an ASCII whitespace byte: space, tab,
// newline, carriage return, form feed, or vertical tab. Other Unicode
// whitespace is deliberately not recognized.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' ||
		c == '\n' || c == '\r' ||
		c == '\f' || c == '\v'
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

// IsAlnum reports whether c is an ASCII letter or decimal digit.
func IsAlnum(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsLower reports whether c is an ASCII lowercase letter.
func IsLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// IsUpper reports whether c is an ASCII uppercase letter.
func IsUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// ToLower returns the ASCII lowercase form of c. Bytes outside A-Z are
// returned unchanged.
func ToLower(c byte) byte {
	if IsUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}

// ToUpper returns the ASCII uppercase form of c. Bytes outside a-z are
// returned unchanged.
func ToUpper(c byte) byte {
	if IsLower(c) {
		return c - ('a' - 'A')
	}
	return c
}

// EqualFold reports whether a and b are equal under ASCII case folding.
// It compares byte by byte and never allocates.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if ToLower(a[i]) != ToLower(b[i]) {
			return false
		}
	}
	return true
}
