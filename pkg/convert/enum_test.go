package convert

import "testing"

type role uint8

const (
	roleAdmin role = iota
	roleUser
	roleGuest
)

var roleTable = []EnumEntry[role]{
	{Name: "admin", Value: roleAdmin},
	{Name: "user", Value: roleUser},
	{Name: "guest", Value: roleGuest},
}

func TestToEnum(t *testing.T) {
	tests := []struct {
		input string
		want  role
		kind  Kind
	}{
		{"admin", roleAdmin, KindNone},
		{"ADMIN", roleAdmin, KindNone},
		{" USER ", roleUser, KindNone},
		{"Guest", roleGuest, KindNone},
		{"", 0, KindEmptyInput},
		{"   ", 0, KindEmptyInput},
		{"root", 0, KindUnknownEnumValue},
		{"adminx", 0, KindUnknownEnumValue},
		{"admi", 0, KindUnknownEnumValue},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ToEnum(tt.input, roleTable)
			if tt.kind == KindNone {
				if err != nil {
					t.Fatalf("ToEnum(%q) error = %v, want nil", tt.input, err)
				}
				if got != tt.want {
					t.Errorf("ToEnum(%q) = %d, want %d", tt.input, got, tt.want)
				}
				return
			}
			ce := convError(t, err)
			if ce.Kind != tt.kind {
				t.Errorf("ToEnum(%q) kind = %v, want %v", tt.input, ce.Kind, tt.kind)
			}
			if ce.Input != tt.input {
				t.Errorf("ToEnum(%q) error input = %q, want the original input", tt.input, ce.Input)
			}
		})
	}
}

func TestToEnumExact(t *testing.T) {
	if v, err := ToEnumExact("admin", roleTable); err != nil || v != roleAdmin {
		t.Errorf("ToEnumExact(\"admin\") = %d, %v; want admin, nil", v, err)
	}

	_, err := ToEnumExact("ADMIN", roleTable)
	if convError(t, err).Kind != KindUnknownEnumValue {
		t.Errorf("ToEnumExact(\"ADMIN\") kind = %v, want unknown enum value", convError(t, err).Kind)
	}

	// Trimming still applies in exact mode.
	if v, err := ToEnumExact(" guest ", roleTable); err != nil || v != roleGuest {
		t.Errorf("ToEnumExact(\" guest \") = %d, %v; want guest, nil", v, err)
	}
}

func TestToEnumFirstMatchWins(t *testing.T) {
	dup := []EnumEntry[role]{
		{Name: "dup", Value: roleAdmin},
		{Name: "dup", Value: roleGuest},
		{Name: "DUP", Value: roleUser},
	}

	v, err := ToEnum("dup", dup)
	if err != nil || v != roleAdmin {
		t.Errorf("ToEnum(\"dup\") = %d, %v; want first entry, nil", v, err)
	}

	// Case folding makes "DUP" collide too; position order still decides.
	v, err = ToEnum("DUP", dup)
	if err != nil || v != roleAdmin {
		t.Errorf("ToEnum(\"DUP\") = %d, %v; want first entry, nil", v, err)
	}

	// Exact mode sees only the third entry.
	v, err = ToEnumExact("DUP", dup)
	if err != nil || v != roleUser {
		t.Errorf("ToEnumExact(\"DUP\") = %d, %v; want third entry, nil", v, err)
	}
}

func TestToEnumEmptyTable(t *testing.T) {
	_, err := ToEnum("anything", []EnumEntry[role]{})
	if convError(t, err).Kind != KindUnknownEnumValue {
		t.Errorf("ToEnum with empty table kind = %v, want unknown enum value", convError(t, err).Kind)
	}

	_, err = ToEnum("anything", []EnumEntry[role](nil))
	if convError(t, err).Kind != KindUnknownEnumValue {
		t.Errorf("ToEnum with nil table kind = %v, want unknown enum value", convError(t, err).Kind)
	}
}

func TestFormatEnum(t *testing.T) {
	if s, err := FormatEnum(roleUser, roleTable); err != nil || s != "user" {
		t.Errorf("FormatEnum(user) = %q, %v; want \"user\", nil", s, err)
	}

	_, err := FormatEnum(role(42), roleTable)
	if convError(t, err).Kind != KindUnknownEnumValue {
		t.Errorf("FormatEnum(unknown) kind = %v, want unknown enum value", convError(t, err).Kind)
	}
}

func TestEnumRoundTrip(t *testing.T) {
	for _, entry := range roleTable {
		s, err := FormatEnum(entry.Value, roleTable)
		if err != nil {
			t.Fatalf("FormatEnum(%d) error = %v", entry.Value, err)
		}
		v, err := ToEnum(s, roleTable)
		if err != nil {
			t.Fatalf("ToEnum(%q) error = %v", s, err)
		}
		if v != entry.Value {
			t.Errorf("round trip %d -> %q -> %d", entry.Value, s, v)
		}
	}
}
