package convert

import "github.com/mesh-intelligence/scalar/internal/ascii"

// EnumEntry maps one textual name to one enum value. Tables are plain
// ordered slices owned by the caller; the codec only scans them and
// never copies or mutates an entry. Within one table, names should be
// unique under the comparison mode in use; when they are not, the
// earliest entry wins.
//
//	var roleTable = []convert.EnumEntry[Role]{
//		{Name: "admin", Value: RoleAdmin},
//		{Name: "user", Value: RoleUser},
//	}
type EnumEntry[E comparable] struct {
	Name  string
	Value E
}

// ToEnum converts text to an enum value using the given table, matching
// names under ASCII case folding (the default mode). Whitespace-only
// input returns KindEmptyInput; no matching entry returns
// KindUnknownEnumValue.
func ToEnum[E comparable](input string, entries []EnumEntry[E]) (E, error) {
	return toEnum(input, entries, true)
}

// ToEnumExact is ToEnum with byte-exact name matching.
func ToEnumExact[E comparable](input string, entries []EnumEntry[E]) (E, error) {
	return toEnum(input, entries, false)
}

func toEnum[E comparable](input string, entries []EnumEntry[E], caseInsensitive bool) (E, error) {
	var zero E

	s := ascii.Trim(input)
	if s == "" {
		return zero, newError(KindEmptyInput, input)
	}

	for _, entry := range entries {
		if len(entry.Name) != len(s) {
			continue
		}
		if caseInsensitive {
			if ascii.EqualFold(s, entry.Name) {
				return entry.Value, nil
			}
			continue
		}
		if s == entry.Name {
			return entry.Value, nil
		}
	}

	return zero, newError(KindUnknownEnumValue, input)
}

// FormatEnum converts an enum value back to its name via the first
// table entry holding that value. A value absent from the table returns
// KindUnknownEnumValue.
func FormatEnum[E comparable](value E, entries []EnumEntry[E]) (string, error) {
	for _, entry := range entries {
		if entry.Value == value {
			return entry.Name, nil
		}
	}
	return "", newError(KindUnknownEnumValue, "")
}
