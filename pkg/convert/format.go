package convert

import "strconv"

// FormatBool renders a boolean as "true" or "false". The error result
// exists only for surface uniformity with the other formatters and is
// always nil.
func FormatBool(v bool) (string, error) {
	if v {
		return "true", nil
	}
	return "false", nil
}

// FormatInt renders an integer as decimal text. Digits are assembled in
// a fixed stack buffer; the returned string is the only allocation. The
// error result is reserved for primitive formatting failures and is nil
// in normal operation.
func FormatInt[T Integer](v T) (string, error) {
	// 20 digits covers uint64; one more byte for a sign.
	var buf [21]byte

	if ^T(0) > 0 {
		return string(strconv.AppendUint(buf[:0], uint64(v), 10)), nil
	}
	return string(strconv.AppendInt(buf[:0], int64(v), 10)), nil
}

// FormatFloat renders a floating-point value in its shortest form that
// re-parses to the same value at T's precision, using scientific
// notation when the exponent calls for it. The error result is reserved
// for primitive formatting failures and is nil in normal operation.
func FormatFloat[T Float](v T) (string, error) {
	var buf [32]byte
	return string(strconv.AppendFloat(buf[:0], float64(v), 'g', -1, bitSize[T]())), nil
}
