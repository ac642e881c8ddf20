package ascii

import "testing"

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		fn   func(byte) bool
		yes  []byte
		no   []byte
	}{
		{"IsSpace", IsSpace, []byte{' ', '\t', '\n', '\r', '\f', '\v'}, []byte{'a', '0', 0, 0xA0}},
		{"IsDigit", IsDigit, []byte{'0', '5', '9'}, []byte{'a', ' ', '/', ':'}},
		{"IsAlpha", IsAlpha, []byte{'a', 'z', 'A', 'Z'}, []byte{'0', ' ', '@', '[', '`', '{'}},
		{"IsAlnum", IsAlnum, []byte{'a', 'Z', '0', '9'}, []byte{' ', '-', '_'}},
		{"IsLower", IsLower, []byte{'a', 'm', 'z'}, []byte{'A', 'Z', '0', ' '}},
		{"IsUpper", IsUpper, []byte{'A', 'M', 'Z'}, []byte{'a', 'z', '0', ' '}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range tt.yes {
				if !tt.fn(c) {
					t.Errorf("%s(%q) = false, want true", tt.name, c)
				}
			}
			for _, c := range tt.no {
				if tt.fn(c) {
					t.Errorf("%s(%q) = true, want false", tt.name, c)
				}
			}
		})
	}
}

func TestCaseFolding(t *testing.T) {
	tests := []struct {
		in, lower, upper byte
	}{
		{'a', 'a', 'A'},
		{'Z', 'z', 'Z'},
		{'m', 'm', 'M'},
		{'0', '0', '0'},
		{' ', ' ', ' '},
		{'@', '@', '@'},
		{'{', '{', '{'},
	}
	for _, tt := range tests {
		if got := ToLower(tt.in); got != tt.lower {
			t.Errorf("ToLower(%q) = %q, want %q", tt.in, got, tt.lower)
		}
		if got := ToUpper(tt.in); got != tt.upper {
			t.Errorf("ToUpper(%q) = %q, want %q", tt.in, got, tt.upper)
		}
	}
}

func TestEqualFold(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"", "", true},
		{"true", "TRUE", true},
		{"TrUe", "tRuE", true},
		{"abc", "abd", false},
		{"abc", "abcd", false},
		{"abc", "ab", false},
		{"café", "CAFÉ", false}, // non-ASCII bytes are not folded
	}
	for _, tt := range tests {
		if got := EqualFold(tt.a, tt.b); got != tt.want {
			t.Errorf("EqualFold(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
