package fdb

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Latin1Str is a borrowed, null-terminated-on-disk byte slice known to
// contain no interior NUL; the terminator itself is not part of the
// slice. It is the borrowed-string representation used by the memory
// view.
type Latin1Str []byte

// ReadLatin1UntilNul returns the slice from offset up to (but not
// including) the first zero byte in buf, failing closed if none exists
// before the end of the image rather than truncating at the buffer
// boundary.
func ReadLatin1UntilNul(buf []byte, offset uint32) (Latin1Str, error) {
	if offset > uint32(len(buf)) {
		return nil, &OutOfBoundsError{Offset: offset, Size: uint32(len(buf))}
	}
	haystack := buf[offset:]
	end := bytes.IndexByte(haystack, 0)
	if end < 0 {
		return nil, &ExpectedTerminatorError{Offset: offset}
	}
	return Latin1Str(haystack[:end]), nil
}

// Bytes returns the raw bytes of the string, for hashing or byte-wise
// comparison.
func (s Latin1Str) Bytes() []byte {
	return []byte(s)
}

// Decode performs a lossy decode to the host string type under the
// Windows-1252 mapping; the five undefined code points (0x81, 0x8D,
// 0x8F, 0x90, 0x9D) render as the Unicode replacement character.
// charmap.Windows1252 passes those bytes through as the C1 controls
// U+0081, U+008D, U+008F, U+0090 and U+009D, so Decode replaces them.
func (s Latin1Str) Decode() string {
	out, err := charmap.Windows1252.NewDecoder().Bytes(s)
	if err != nil {
		// charmap.Windows1252 never actually returns an error on
		// decode; every byte maps to some rune. Fall back defensively.
		return string(s)
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
			return utf8.RuneError
		}
		return r
	}, string(out))
}

// Equal compares two Latin-1 strings by raw bytes.
func (s Latin1Str) Equal(other Latin1Str) bool {
	return bytes.Equal(s, other)
}

// Less orders two Latin-1 strings by ascending raw byte value, treating
// a shorter string that is a prefix of a longer one as less than it —
// the ordering the table directory relies on for binary search.
func (s Latin1Str) Less(other Latin1Str) bool {
	return bytes.Compare(s, other) < 0
}

// CompareBytes is the table-directory binary-search comparator. The
// caller must resolve haystack to its validated, terminator-excluded
// name bytes first (e.g. via ReadLatin1UntilNul); this function does
// not itself detect a missing terminator, it only orders two already-
// bounded byte slices. A byte mismatch decides the order; running out
// of probe bytes while haystack still has bytes left means the probe
// is a strict prefix and sorts first, unless the next haystack byte is
// a NUL, which counts as the end of haystack (so a haystack that still
// carries its terminator compares equal); equal length with no
// mismatch means equal.
func CompareBytes(probe, haystack []byte) int {
	for i, b := range probe {
		if i >= len(haystack) {
			return 1
		}
		hb := haystack[i]
		if b != hb {
			if b < hb {
				return -1
			}
			return 1
		}
	}
	if len(probe) < len(haystack) && haystack[len(probe)] == 0 {
		return 0
	}
	if len(probe) == len(haystack) {
		return 0
	}
	return -1
}

// EncodeLatin1 encodes a host string to Latin-1/Windows-1252 bytes, the
// single-byte representation this format uses on disk.
func EncodeLatin1(s string) ([]byte, error) {
	return charmap.Windows1252.NewEncoder().Bytes([]byte(s))
}

// PaddedLen returns the number of bytes a Latin-1 string occupies on
// disk once padded with at least one NUL terminator to a multiple of 4.
func PaddedLen(raw []byte) uint32 {
	return uint32(len(raw)/4+1) * 4
}
