package fdb

import "testing"

func TestReadUint32(t *testing.T) {
	buf := []byte{0x01, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}
	tests := []struct {
		name    string
		offset  uint32
		want    uint32
		wantErr bool
	}{
		{"first", 0, 1, false},
		{"second", 4, 0xFFFFFFFF, false},
		{"out of bounds", 5, 0, true},
		{"exactly at end", 8, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadUint32(buf, tt.offset)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadUint32() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ReadUint32() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadI64LE(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	got, err := ReadI64LE(buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -1 {
		t.Errorf("ReadI64LE() = %v, want -1", got)
	}
	if _, err := ReadI64LE(buf, 1); err == nil {
		t.Errorf("expected out-of-bounds error")
	}
}

func TestReadBytesAt(t *testing.T) {
	buf := []byte("hello world")
	got, err := ReadBytesAt(buf, 6, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "world" {
		t.Errorf("ReadBytesAt() = %q, want %q", got, "world")
	}
	if _, err := ReadBytesAt(buf, 6, 100); err == nil {
		t.Errorf("expected out-of-bounds error")
	}
}

func TestReadArrayHeader(t *testing.T) {
	buf := []byte{0x02, 0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00}
	got, err := ReadArrayHeader(buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ArrayHeader{Count: 2, BaseOffset: 8}
	if got != want {
		t.Errorf("ReadArrayHeader() = %+v, want %+v", got, want)
	}
}

func TestTryCastSliceOverflow(t *testing.T) {
	buf := make([]byte, 16)
	if _, err := TryCastSlice(buf, 0, 0xFFFFFFFF, 8); err == nil {
		t.Errorf("expected overflow to be rejected")
	}
}
