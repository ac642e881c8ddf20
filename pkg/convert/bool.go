package convert

import "github.com/mesh-intelligence/scalar/internal/ascii"

// ToBool converts text to a boolean (strict).
//
// Accepted values, after trimming and under ASCII case folding:
//
//	true:  "1", "true", "yes", "on"
//	false: "0", "false", "no", "off"
//
// Anything else returns KindInvalidBoolean; whitespace-only input
// returns KindEmptyInput. The error's Input is the original, untrimmed
// text.
func ToBool(input string) (bool, error) {
	s := ascii.Trim(input)

	if s == "" {
		return false, newError(KindEmptyInput, input)
	}

	if s == "1" || ascii.EqualFold(s, "true") || ascii.EqualFold(s, "yes") || ascii.EqualFold(s, "on") {
		return true, nil
	}
	if s == "0" || ascii.EqualFold(s, "false") || ascii.EqualFold(s, "no") || ascii.EqualFold(s, "off") {
		return false, nil
	}

	return false, newError(KindInvalidBoolean, input)
}
