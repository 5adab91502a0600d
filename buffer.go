package fdb

import (
	"encoding/binary"
)

// NoEntry is the on-disk sentinel for "no next entry" in bucket heads
// and row-list cons cells.
const NoEntry uint32 = 0xFFFFFFFF

// ArrayHeader is the (count, base_offset) shape that every variable
// length structure in the file references, laid out exactly as the
// on-disk 8 bytes (count first, little-endian u32; then base_offset).
type ArrayHeader struct {
	Count      uint32
	BaseOffset uint32
}

// ReadUint32 reads a bounds-checked little-endian uint32 at offset.
func ReadUint32(buf []byte, offset uint32) (uint32, error) {
	if len(buf) < 4 || offset > uint32(len(buf))-4 || offset+4 < offset {
		return 0, &OutOfBoundsError{Offset: offset, Length: 4, Size: uint32(len(buf))}
	}
	return binary.LittleEndian.Uint32(buf[offset:]), nil
}

// ReadInt32 reads a bounds-checked little-endian int32 at offset.
func ReadInt32(buf []byte, offset uint32) (int32, error) {
	v, err := ReadUint32(buf, offset)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadI64LE reads a bounds-checked little-endian int64 at offset.
func ReadI64LE(buf []byte, offset uint32) (int64, error) {
	if len(buf) < 8 || offset > uint32(len(buf))-8 || offset+8 < offset {
		return 0, &OutOfBoundsError{Offset: offset, Length: 8, Size: uint32(len(buf))}
	}
	return int64(binary.LittleEndian.Uint64(buf[offset:])), nil
}

// ReadBytesAt returns a sub-slice of buf of the given length starting at
// offset, bounds-checked against both integer overflow and the end of
// buf.
func ReadBytesAt(buf []byte, offset, length uint32) ([]byte, error) {
	end := offset + length
	// Integer overflow, or [offset:end) falling (partially) outside buf.
	if end < offset || offset > uint32(len(buf)) || end > uint32(len(buf)) {
		return nil, &OutOfBoundsError{Offset: offset, Length: length, Size: uint32(len(buf))}
	}
	return buf[offset:end], nil
}

// ReadArrayHeader reads the (count, base_offset) pair at offset.
func ReadArrayHeader(buf []byte, offset uint32) (ArrayHeader, error) {
	count, err := ReadUint32(buf, offset)
	if err != nil {
		return ArrayHeader{}, err
	}
	base, err := ReadUint32(buf, offset+4)
	if err != nil {
		return ArrayHeader{}, err
	}
	return ArrayHeader{Count: count, BaseOffset: base}, nil
}

// TryCastSlice returns the bounds for a run of `count` elements of
// `elemSize` bytes starting at `offset`, without copying. Callers decode
// each element individually with the bounds-checked readers above rather
// than reinterpreting the slice as a struct array, since an unaligned
// struct cast is undefined behavior in general even though a plain
// byte-slice index is always safe here.
func TryCastSlice(buf []byte, offset, count, elemSize uint32) ([]byte, error) {
	total := count * elemSize
	if count != 0 && total/count != elemSize {
		return nil, &OutOfBoundsError{Offset: offset, Length: total, Size: uint32(len(buf))}
	}
	return ReadBytesAt(buf, offset, total)
}
