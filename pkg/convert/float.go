package convert

import (
	"errors"
	"math"
	"strconv"

	"github.com/mesh-intelligence/scalar/internal/ascii"
)

// Float is the constraint for floating-point targets. The types are
// exact (not ~) so the target bit width can be recovered without
// reflection.
type Float interface {
	float32 | float64
}

// ToFloat converts text to a floating-point value of type T (strict).
//
// Rules:
//   - ASCII trim is applied automatically.
//   - Decimal and scientific notation are accepted; '.' is the only
//     decimal separator. "inf", "infinity", and "nan" spellings are
//     recognized like the underlying strconv primitive, but infinities
//     fail the final finite-range check and report KindOverflow.
//   - The entire trimmed text must be consumed; a valid prefix followed
//     by junk reports KindTrailingCharacters with the consumed length
//     as the offset.
//   - Values too large for T report KindOverflow; values whose true
//     magnitude is too small to represent report KindUnderflow.
func ToFloat[T Float](input string) (T, error) {
	trimmed := ascii.Trim(input)

	if trimmed == "" {
		return 0, newError(KindEmptyInput, input)
	}

	v, err := parseFloat[T](trimmed)
	if err != nil {
		// Report the caller's original text, not the trimmed view.
		err.Input = input
		return 0, err
	}
	return v, nil
}

// Convenience wrappers for the two widths.

// ToFloat32 converts text to a float32.
func ToFloat32(input string) (float32, error) { return ToFloat[float32](input) }

// ToFloat64 converts text to a float64.
func ToFloat64(input string) (float64, error) { return ToFloat[float64](input) }

// parseFloat runs the lex / whole-input / range pipeline on s, which
// must be non-empty and already trimmed.
func parseFloat[T Float](s string) (T, *Error) {
	end := floatTokenEnd(s)

	// No conversion performed.
	if end == 0 {
		return 0, newError(KindInvalidFloat, s)
	}

	// Trailing characters not allowed.
	if end != len(s) {
		return 0, newErrorAt(KindTrailingCharacters, s, end)
	}

	bits := bitSize[T]()
	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			// A zero result means the true magnitude was too small to
			// represent; anything else exceeded the type's range.
			if f == 0 {
				return 0, newError(KindUnderflow, s)
			}
			return 0, newError(KindOverflow, s)
		}
		// The scanner guarantees a well-formed token, so this branch is
		// defensive only.
		return 0, newError(KindInvalidFloat, s)
	}

	// strconv flags overflow through ErrRange but rounds a too-small
	// magnitude to zero silently. A zero result from a mantissa with
	// nonzero digits means the true value was not representable.
	if f == 0 && !zeroMantissa(s) {
		return 0, newError(KindUnderflow, s)
	}

	// Final finite-range check for the target type. Explicit infinities
	// land here; NaN compares false on both sides and passes through.
	max := math.MaxFloat64
	if bits == 32 {
		max = math.MaxFloat32
	}
	if f < -max || f > max {
		return 0, newError(KindOverflow, s)
	}

	return T(f), nil
}

// bitSize returns 32 or 64 for the concrete float type T.
func bitSize[T Float]() int {
	switch any(T(0)).(type) {
	case float32:
		return 32
	default:
		return 64
	}
}

// floatTokenEnd returns the length of the longest prefix of s that
// forms a floating-point token: optional sign, digits with an optional
// '.' and fraction, an optional exponent, or an inf/infinity/nan
// spelling. It mirrors the maximal-munch behavior of a C strtod, so a
// dangling 'e' or sign is left unconsumed rather than failing the whole
// token. Returns 0 when no prefix converts.
func floatTokenEnd(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	mark := i

	sawDigits := false
	for i < len(s) && ascii.IsDigit(s[i]) {
		i++
		sawDigits = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && ascii.IsDigit(s[i]) {
			i++
			sawDigits = true
		}
	}

	if !sawDigits {
		rest := s[mark:]
		switch {
		case foldPrefix(rest, "infinity"):
			return mark + len("infinity")
		case foldPrefix(rest, "inf"):
			return mark + len("inf")
		case foldPrefix(rest, "nan"):
			return mark + len("nan")
		}
		return 0
	}

	// The exponent counts only when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && ascii.IsDigit(s[j]) {
			for j < len(s) && ascii.IsDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	return i
}

// foldPrefix reports whether s starts with prefix under ASCII case
// folding.
func foldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && ascii.EqualFold(s[:len(prefix)], prefix)
}

// zeroMantissa reports whether the mantissa of a numeric token spells
// an exact zero (only signs, zeros, and a decimal point before any
// exponent marker).
func zeroMantissa(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == 'e' || c == 'E' {
			break
		}
		if c >= '1' && c <= '9' {
			return false
		}
	}
	return true
}
