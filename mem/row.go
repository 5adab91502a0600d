package mem

import (
	"math"

	"github.com/lcdr/fdb"
)

// Field is a field value borrowed from the database buffer: TEXT and
// VARCHAR carry a Latin1Str view into the mapped image rather than an
// owned, allocated string.
type Field = fdb.Value[fdb.Latin1Str]

// ToBytesValue converts a Field to the raw-bytes representation
// fdb.PrimaryKeyFilter.Matches compares against.
func ToBytesValue(f Field) fdb.Value[[]byte] {
	return fdb.Map(f, fdb.MapperFunc[fdb.Latin1Str, []byte](fdb.Latin1Str.Bytes))
}

// ToOwnedValue decodes a Field's borrowed Latin1Str (if any) into an
// owned Go string, safe to retain after the database is closed.
func ToOwnedValue(f Field) fdb.Value[string] {
	return fdb.Map(f, fdb.MapperFunc[fdb.Latin1Str, string](fdb.Latin1Str.Decode))
}

func decodeField(buf []byte, offset uint32) (Field, error) {
	typeCode, err := fdb.ReadUint32(buf, offset)
	if err != nil {
		return Field{}, err
	}
	vt, err := fdb.ParseValueType(typeCode)
	if err != nil {
		return Field{}, err
	}
	payload, err := fdb.ReadBytesAt(buf, offset+4, 4)
	if err != nil {
		return Field{}, err
	}
	return decodeFieldPayload(buf, vt, payload)
}

func decodeFieldPayload(buf []byte, vt fdb.ValueType, payload []byte) (Field, error) {
	switch vt {
	case fdb.ValueNothing:
		return fdb.NothingValue[fdb.Latin1Str](), nil
	case fdb.ValueInteger:
		v, err := fdb.ReadInt32(payload, 0)
		if err != nil {
			return Field{}, err
		}
		return fdb.IntegerValue[fdb.Latin1Str](v), nil
	case fdb.ValueFloat:
		bits, err := fdb.ReadUint32(payload, 0)
		if err != nil {
			return Field{}, err
		}
		return fdb.FloatValue[fdb.Latin1Str](math.Float32frombits(bits)), nil
	case fdb.ValueText, fdb.ValueVarChar:
		addr, err := fdb.ReadUint32(payload, 0)
		if err != nil {
			return Field{}, err
		}
		str, err := fdb.ReadLatin1UntilNul(buf, addr)
		if err != nil {
			return Field{}, err
		}
		if vt == fdb.ValueText {
			return fdb.TextValue(str), nil
		}
		return fdb.VarCharValue(str), nil
	case fdb.ValueBoolean:
		return fdb.BooleanValue[fdb.Latin1Str](payload[0] != 0 || payload[1] != 0 || payload[2] != 0 || payload[3] != 0), nil
	case fdb.ValueBigInt:
		addr, err := fdb.ReadUint32(payload, 0)
		if err != nil {
			return Field{}, err
		}
		v, err := fdb.ReadI64LE(buf, addr)
		if err != nil {
			return Field{}, err
		}
		return fdb.BigIntValue[fdb.Latin1Str](v), nil
	default:
		return Field{}, &fdb.UnknownValueTypeError{Code: uint32(vt)}
	}
}

// Row is a reference to one row's field array.
type Row struct {
	buf    []byte
	fields fdb.ArrayHeader
}

// FieldCount returns the number of fields in the row.
func (r Row) FieldCount() int { return int(r.fields.Count) }

// FieldAt returns the field at index.
func (r Row) FieldAt(index int) (Field, error) {
	if index < 0 || uint32(index) >= r.fields.Count {
		return Field{}, &fdb.OutOfBoundsError{Offset: uint32(index), Size: r.fields.Count}
	}
	off := r.fields.BaseOffset + uint32(index)*fdb.SizeFieldCell
	return decodeField(r.buf, off)
}

// FieldIter returns an iterator over all fields in the row.
func (r Row) FieldIter() *FieldIter {
	return &FieldIter{row: r, index: 0}
}
