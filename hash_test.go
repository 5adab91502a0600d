package fdb

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSuperFastHashEmpty(t *testing.T) {
	if got := SuperFastHash(nil); got != 0 {
		t.Errorf("SuperFastHash(nil) = %d, want 0", got)
	}
}

func TestSuperFastHashDeterministic(t *testing.T) {
	a := SuperFastHash([]byte("zone_table"))
	b := SuperFastHash([]byte("zone_table"))
	if a != b {
		t.Errorf("hash not deterministic: %d != %d", a, b)
	}
	c := SuperFastHash([]byte("zone_table2"))
	if a == c {
		t.Errorf("distinct inputs hashed to the same value")
	}
}

func TestSuperFastHashVariousLengths(t *testing.T) {
	// Exercises every tail-length branch (0,1,2,3 remainder bytes).
	for _, s := range []string{"a", "ab", "abc", "abcd", "abcde", "abcdef", "abcdefg"} {
		if got := SuperFastHash([]byte(s)); got == 0 {
			t.Errorf("SuperFastHash(%q) = 0, suspicious for non-empty input", s)
		}
	}
}

func TestHashInt32(t *testing.T) {
	if HashInt32(-1) != 0xFFFFFFFF {
		t.Errorf("HashInt32(-1) = %x, want 0xFFFFFFFF", HashInt32(-1))
	}
}

func TestHashInt64LowWord(t *testing.T) {
	v := int64(0x1122334455667788)
	if got := HashInt64(v); got != 0x55667788 {
		t.Errorf("HashInt64() = %x, want 0x55667788", got)
	}
}

func TestHashBool(t *testing.T) {
	if HashBool(true) != 1 || HashBool(false) != 0 {
		t.Errorf("HashBool mismatched expected 1/0 mapping")
	}
}

func TestPKFilterMatches(t *testing.T) {
	f := IntegerPKFilter(42)
	if !f.Matches(IntegerValue[[]byte](42)) {
		t.Errorf("expected filter to match equal value")
	}
	if f.Matches(IntegerValue[[]byte](43)) {
		t.Errorf("expected filter not to match different value")
	}
}

func TestTextPKFilterRejectsNonTextType(t *testing.T) {
	if _, err := TextPKFilter(ValueInteger, []byte("x")); err == nil {
		t.Errorf("expected UnsupportedPKTypeError")
	}
}

func TestNewPKFilterRejectsFloatAndNull(t *testing.T) {
	if _, err := NewPKFilter(FloatValue[[]byte](1.5)); err == nil {
		t.Errorf("expected FLOAT to be rejected as a primary key type")
	}
	if _, err := NewPKFilter(NothingValue[[]byte]()); err == nil {
		t.Errorf("expected NULL to be rejected as a primary key type")
	}
}

func TestNewPKFilterTextRoundTrip(t *testing.T) {
	v := TextValue[[]byte]([]byte("objects"))
	f, err := NewPKFilter(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.HashValue != HashText([]byte("objects")) {
		t.Errorf("unexpected hash value")
	}
	if !f.Matches(v) {
		t.Errorf("expected filter to match its own source value")
	}
}

func TestNewPKFilterMatchesDirectConstructor(t *testing.T) {
	// NewPKFilter dispatches by Value.Type; it should build the exact
	// same filter the type-specific constructor would.
	got, err := NewPKFilter(BigIntValue[[]byte](99))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := BigIntPKFilter(99)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewPKFilter(BigInt) mismatch (-want +got):\n%s", diff)
	}
}
