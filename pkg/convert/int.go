package convert

import "github.com/mesh-intelligence/scalar/internal/ascii"

// Signed is the constraint for signed integer targets.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the constraint for unsigned integer targets.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the constraint for any fixed-width integer target. Named
// integer types are accepted (the terms use ~), unlike Float, whose
// terms are exact so the bit width stays recoverable.
type Integer interface {
	Signed | Unsigned
}

// ToInt converts text to an integer of type T (base 10, strict).
//
// Rules:
//   - ASCII trim is applied automatically.
//   - Optional single leading '+' or '-'.
//   - At least one digit is required.
//   - The entire trimmed text must be digits.
//   - Overflow and underflow are detected per digit, before the value
//     would wrap.
//
// On failure the error's Input is the original untrimmed text and Pos,
// when set, is a byte offset into the trimmed text.
func ToInt[T Integer](input string) (T, error) {
	trimmed := ascii.Trim(input)

	if trimmed == "" {
		return 0, newError(KindEmptyInput, input)
	}

	v, err := parseInteger[T](trimmed)
	if err != nil {
		// Report the caller's original text, not the trimmed view.
		err.Input = input
		return 0, err
	}
	return v, nil
}

// Convenience wrappers for the common widths.

// ToInt32 converts text to an int32.
func ToInt32(input string) (int32, error) { return ToInt[int32](input) }

// ToInt64 converts text to an int64.
func ToInt64(input string) (int64, error) { return ToInt[int64](input) }

// ToUint32 converts text to a uint32.
func ToUint32(input string) (uint32, error) { return ToInt[uint32](input) }

// ToUint64 converts text to a uint64.
func ToUint64(input string) (uint64, error) { return ToInt[uint64](input) }

// parseInteger accumulates digits of s into T. s must be non-empty and
// already trimmed; error positions are offsets into s.
func parseInteger[T Integer](s string) (T, *Error) {
	lo, hi := limits[T]()

	i := 0
	negative := false

	// Sign.
	if s[i] == '+' || s[i] == '-' {
		negative = s[i] == '-'
		i++

		if i == len(s) {
			return 0, newErrorAt(KindInvalidCharacter, s, i-1)
		}
	}

	if negative && lo == 0 {
		// Unsigned targets have no negative range at all.
		return 0, newErrorAt(KindUnderflow, s, 0)
	}

	var value T
	for ; i < len(s); i++ {
		c := s[i]

		if !ascii.IsDigit(c) {
			return 0, newErrorAt(KindInvalidCharacter, s, i)
		}
		digit := T(c - '0')

		if negative {
			// value = value*10 - digit, guarded by division so the
			// product below the minimum is never computed.
			if value < (lo+digit)/10 {
				return 0, newErrorAt(KindUnderflow, s, i)
			}
			value = value*10 - digit
		} else {
			// value = value*10 + digit, same guard against the maximum.
			if value > (hi-digit)/10 {
				return 0, newErrorAt(KindOverflow, s, i)
			}
			value = value*10 + digit
		}
	}

	return value, nil
}

// limits returns the minimum and maximum representable values of T
// without reflection or unsafe. For unsigned types the all-ones pattern
// is the maximum. For signed types the maximum is grown bit by bit
// until the next shift would wrap negative.
func limits[T Integer]() (lo, hi T) {
	if ^T(0) > 0 {
		return 0, ^T(0)
	}
	hi = 1
	for {
		next := hi<<1 | 1
		if next < hi {
			break
		}
		hi = next
	}
	return -hi - 1, hi
}
