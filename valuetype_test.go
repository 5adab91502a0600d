package fdb

import "testing"

func TestParseValueType(t *testing.T) {
	valid := []uint32{0, 1, 3, 4, 5, 6, 8}
	for _, code := range valid {
		if _, err := ParseValueType(code); err != nil {
			t.Errorf("ParseValueType(%d) unexpected error: %v", code, err)
		}
	}
	invalid := []uint32{2, 7, 9, 100}
	for _, code := range invalid {
		if _, err := ParseValueType(code); err == nil {
			t.Errorf("ParseValueType(%d) expected error, got nil", code)
		}
	}
}

func TestValueTypeToSQLiteType(t *testing.T) {
	tests := []struct {
		vt   ValueType
		want string
	}{
		{ValueNothing, "BLOB_NONE"},
		{ValueInteger, "INT32"},
		{ValueFloat, "REAL"},
		{ValueText, "TEXT4"},
		{ValueBoolean, "INT_BOOL"},
		{ValueBigInt, "INT64"},
		{ValueVarChar, "TEXT_XML"},
	}
	for _, tt := range tests {
		if got := tt.vt.ToSQLiteType(); got != tt.want {
			t.Errorf("%v.ToSQLiteType() = %q, want %q", tt.vt, got, tt.want)
		}
	}
}

func TestValueTypeFromSQLiteRoundTrip(t *testing.T) {
	for _, vt := range []ValueType{ValueNothing, ValueInteger, ValueFloat, ValueText, ValueBoolean, ValueBigInt, ValueVarChar} {
		decl := vt.ToSQLiteType()
		got, ok := ValueTypeFromSQLite(decl)
		if !ok {
			t.Fatalf("ValueTypeFromSQLite(%q) not found", decl)
		}
		if got != vt {
			t.Errorf("round trip for %v: got %v", vt, got)
		}
	}
}

func TestValueTypeFromSQLiteAliases(t *testing.T) {
	tests := []struct {
		decl string
		want ValueType
	}{
		{"TINYINT", ValueInteger},
		{"SMALLINT", ValueInteger},
		{"FLOAT", ValueFloat},
		{"TEXT", ValueText},
		{"BIT", ValueBoolean},
		{"INTEGER", ValueBigInt},
		{"VARCHAR", ValueVarChar},
		{"xml", ValueVarChar},
	}
	for _, tt := range tests {
		got, ok := ValueTypeFromSQLite(tt.decl)
		if !ok || got != tt.want {
			t.Errorf("ValueTypeFromSQLite(%q) = (%v, %v), want (%v, true)", tt.decl, got, ok, tt.want)
		}
	}
}

func TestValueTypeFromSQLiteUnknown(t *testing.T) {
	if _, ok := ValueTypeFromSQLite("NOT_A_TYPE"); ok {
		t.Errorf("expected unknown declaration to fail")
	}
}
