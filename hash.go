package fdb

import "math"

// SuperFastHash is Paul Hsieh's SuperFastHash, the primary-key hash
// used for TEXT/VARCHAR keys.
func SuperFastHash(data []byte) uint32 {
	if len(data) == 0 {
		return 0
	}
	hash := uint32(len(data))
	rem := len(data) & 3
	main := data[:len(data)-rem]

	for len(main) >= 4 {
		hash += uint32(main[0]) | uint32(main[1])<<8
		tmp := (uint32(main[2])|uint32(main[3])<<8)<<11 ^ hash
		hash = hash<<16 ^ tmp
		hash += hash >> 11
		main = main[4:]
	}

	tail := data[len(data)-rem:]
	switch rem {
	case 3:
		hash += uint32(tail[0]) | uint32(tail[1])<<8
		hash ^= hash << 16
		hash ^= uint32(tail[2]) << 18
		hash += hash >> 11
	case 2:
		hash += uint32(tail[0]) | uint32(tail[1])<<8
		hash ^= hash << 11
		hash += hash >> 17
	case 1:
		hash += uint32(tail[0])
		hash ^= hash << 10
		hash += hash >> 1
	}

	hash ^= hash << 3
	hash += hash >> 5
	hash ^= hash << 4
	hash += hash >> 17
	hash ^= hash << 25
	hash += hash >> 6
	return hash
}

// HashInt32 hashes a 32-bit integer by its raw bit pattern.
func HashInt32(v int32) uint32 { return uint32(v) }

// HashFloat32 hashes a 32-bit float by its raw bit pattern.
func HashFloat32(v float32) uint32 { return math.Float32bits(v) }

// HashBool hashes a boolean the way the on-disk BOOLEAN payload does:
// 1 for true, 0 for false.
func HashBool(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}

// HashInt64 hashes a 64-bit integer by the low 32 bits of its raw bit
// pattern: BigInt keys hash only their low word.
func HashInt64(v int64) uint32 { return uint32(uint64(v)) }

// HashText hashes a Latin-1 string's raw bytes with SuperFastHash.
func HashText(s []byte) uint32 { return SuperFastHash(s) }

// PrimaryKeyFilter pairs a key's hash with the typed value itself, so a
// bucket lookup can first select by hash and then confirm by value
// equality. The Text arm carries raw Latin-1 bytes; callers comparing
// against a decoded row field compare post-decode.
type PrimaryKeyFilter struct {
	HashValue uint32
	Type      ValueType
	Int32     int32
	Text      []byte
	Bool      bool
	Int64     int64
}

// IntegerPKFilter builds a filter for an INT32 primary key.
func IntegerPKFilter(v int32) PrimaryKeyFilter {
	return PrimaryKeyFilter{HashValue: HashInt32(v), Type: ValueInteger, Int32: v}
}

// TextPKFilter builds a filter for a TEXT or VARCHAR primary key.
func TextPKFilter(typ ValueType, s []byte) (PrimaryKeyFilter, error) {
	if typ != ValueText && typ != ValueVarChar {
		return PrimaryKeyFilter{}, &UnsupportedPKTypeError{Type: typ}
	}
	return PrimaryKeyFilter{HashValue: HashText(s), Type: typ, Text: s}, nil
}

// BigIntPKFilter builds a filter for an INT64 primary key.
func BigIntPKFilter(v int64) PrimaryKeyFilter {
	return PrimaryKeyFilter{HashValue: HashInt64(v), Type: ValueBigInt, Int64: v}
}

// BooleanPKFilter builds a filter for a BOOLEAN primary key.
func BooleanPKFilter(v bool) PrimaryKeyFilter {
	return PrimaryKeyFilter{HashValue: HashBool(v), Type: ValueBoolean, Bool: v}
}

// NewPKFilter builds a filter for any column type, returning
// UnsupportedPKTypeError for NULL and FLOAT: NULL carries no value to
// hash, and FLOAT keys are not meaningful under exact-match bucket
// lookup.
func NewPKFilter(v Value[[]byte]) (PrimaryKeyFilter, error) {
	switch v.Type {
	case ValueInteger:
		return IntegerPKFilter(v.Int32), nil
	case ValueText, ValueVarChar:
		return TextPKFilter(v.Type, v.Text)
	case ValueBigInt:
		return BigIntPKFilter(v.Int64), nil
	case ValueBoolean:
		return BooleanPKFilter(v.Bool), nil
	default:
		return PrimaryKeyFilter{}, &UnsupportedPKTypeError{Type: v.Type}
	}
}

// Matches reports whether a row's decoded field equals this filter's
// key, assuming the caller has already selected the right bucket via
// HashValue.
func (f PrimaryKeyFilter) Matches(v Value[[]byte]) bool {
	if v.Type != f.Type {
		return false
	}
	switch f.Type {
	case ValueInteger:
		return v.Int32 == f.Int32
	case ValueText, ValueVarChar:
		return string(v.Text) == string(f.Text)
	case ValueBigInt:
		return v.Int64 == f.Int64
	case ValueBoolean:
		return v.Bool == f.Bool
	default:
		return false
	}
}
