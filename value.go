package fdb

// Value is a tagged union: exactly one of the
// following is meaningful, selected by Type. TS is the carrier type for
// TEXT/VARCHAR values (Latin1Str for the memory view, string for values
// pushed into the builder, []byte for primary-key filters); the BigInt
// arm is always a native
// int64 regardless of context, since every context resolves an INT64
// field to its value immediately (the memory view's only indirection
// is the payload-to-i64-array lookup, already performed by the time a
// Value exists).
type Value[TS any] struct {
	Type    ValueType
	Int32   int32
	Float32 float32
	Text    TS
	Bool    bool
	Int64   int64
}

// NothingValue constructs a NULL value.
func NothingValue[TS any]() Value[TS] {
	return Value[TS]{Type: ValueNothing}
}

// IntegerValue constructs an INT32 value.
func IntegerValue[TS any](v int32) Value[TS] {
	return Value[TS]{Type: ValueInteger, Int32: v}
}

// FloatValue constructs a FLOAT value.
func FloatValue[TS any](v float32) Value[TS] {
	return Value[TS]{Type: ValueFloat, Float32: v}
}

// TextValue constructs a TEXT value.
func TextValue[TS any](v TS) Value[TS] {
	return Value[TS]{Type: ValueText, Text: v}
}

// BooleanValue constructs a BOOLEAN value.
func BooleanValue[TS any](v bool) Value[TS] {
	return Value[TS]{Type: ValueBoolean, Bool: v}
}

// BigIntValue constructs a BIGINT value.
func BigIntValue[TS any](v int64) Value[TS] {
	return Value[TS]{Type: ValueBigInt, Int64: v}
}

// VarCharValue constructs a VARCHAR value.
func VarCharValue[TS any](v TS) Value[TS] {
	return Value[TS]{Type: ValueVarChar, Text: v}
}

// Mapper converts the text carrier of a Value from TIn to TOut, letting
// a single traversal turn borrowed Latin1Str into an owned host string
// (or vice versa) without re-deciding the Type tag at each call site.
type Mapper[TIn, TOut any] interface {
	MapText(TIn) TOut
}

// MapperFunc adapts a plain function to a Mapper.
type MapperFunc[TIn, TOut any] func(TIn) TOut

// MapText implements Mapper.
func (f MapperFunc[TIn, TOut]) MapText(in TIn) TOut { return f(in) }

// Map converts a Value's text carrier using m, leaving every other arm
// untouched. Used by fdb/mem to turn a Latin1Str-carrying Value into an
// owned-string Value (ToOwnedValue in row.go) or a raw-bytes Value
// (ToBytesValue in row.go).
func Map[TIn, TOut any](v Value[TIn], m Mapper[TIn, TOut]) Value[TOut] {
	out := Value[TOut]{
		Type:    v.Type,
		Int32:   v.Int32,
		Float32: v.Float32,
		Bool:    v.Bool,
		Int64:   v.Int64,
	}
	if v.Type == ValueText || v.Type == ValueVarChar {
		out.Text = m.MapText(v.Text)
	}
	return out
}
