package store

import (
	"sort"

	"github.com/lcdr/fdb"
)

// TextRef is an arena reference to an interned Latin-1 string: outer
// names the length bucket (req_buf_len), inner is the string's index
// within that bucket, in insertion order.
type TextRef struct {
	Outer int
	Inner int
}

// I64Ref is an arena reference to an interned 64-bit integer.
type I64Ref struct {
	Index int
}

// field is the arena-resolved representation of a pushed value: TEXT
// and VARCHAR carry a TextRef, BigInt carries an I64Ref, everything
// else carries its value directly. A plain struct rather than
// fdb.Value[TS] because the builder needs both an interned text arm
// and an interned I64 arm, and Value[TS] only parameterizes one of
// the two.
type field struct {
	Type    fdb.ValueType
	Int32   int32
	Float32 float32
	Text    TextRef
	Bool    bool
	I64     I64Ref
}

// Column is a single column definition: a name and a declared type.
type Column struct {
	Name     fdb.Latin1Str
	DataType fdb.ValueType
}

// ValueType returns the column's declared type.
func (c Column) ValueType() fdb.ValueType { return c.DataType }

// bucket tracks the head and tail row index of one hash bucket's
// linked list during construction; hasRow distinguishes an empty
// bucket from one whose first row is index 0.
type bucket struct {
	first, last int
	hasRow      bool
}

// row holds a pushed row's field-array bounds and its successor in
// the bucket's linked list.
type row struct {
	firstFieldIndex int
	count           uint32
	next            int
	hasNext         bool
}

// Table is a single table under construction.
type Table struct {
	columns []Column
	strings map[int][]fdb.Latin1Str
	i64s    []int64
	buckets []bucket
	rows    []row
	fields  []field
}

// NewTable creates a table with the given fixed bucket count: chosen
// once by the caller and never resized.
func NewTable(bucketCount int) *Table {
	return &Table{
		buckets: make([]bucket, bucketCount),
		strings: make(map[int][]fdb.Latin1Str),
	}
}

// PushColumn appends a column definition.
func (t *Table) PushColumn(name string, dataType fdb.ValueType) error {
	raw, err := fdb.EncodeLatin1(name)
	if err != nil {
		return err
	}
	t.columns = append(t.columns, Column{Name: fdb.Latin1Str(raw), DataType: dataType})
	return nil
}

// Columns returns the table's column definitions in declared order.
func (t *Table) Columns() []Column { return t.columns }

func reqBufLen(s []byte) int { return len(s)/4 + 1 }

func (t *Table) internString(s string) (TextRef, error) {
	raw, err := fdb.EncodeLatin1(s)
	if err != nil {
		return TextRef{}, err
	}
	key := reqBufLen(raw)
	existing := t.strings[key]
	inner := len(existing)
	t.strings[key] = append(existing, fdb.Latin1Str(raw))
	return TextRef{Outer: key, Inner: inner}, nil
}

func (t *Table) internI64(v int64) I64Ref {
	index := len(t.i64s)
	t.i64s = append(t.i64s, v)
	return I64Ref{Index: index}
}

func (t *Table) mapField(v fdb.Value[string]) (field, error) {
	switch v.Type {
	case fdb.ValueNothing:
		return field{Type: fdb.ValueNothing}, nil
	case fdb.ValueInteger:
		return field{Type: fdb.ValueInteger, Int32: v.Int32}, nil
	case fdb.ValueFloat:
		return field{Type: fdb.ValueFloat, Float32: v.Float32}, nil
	case fdb.ValueText, fdb.ValueVarChar:
		ref, err := t.internString(v.Text)
		if err != nil {
			return field{}, err
		}
		return field{Type: v.Type, Text: ref}, nil
	case fdb.ValueBoolean:
		return field{Type: fdb.ValueBoolean, Bool: v.Bool}, nil
	case fdb.ValueBigInt:
		return field{Type: fdb.ValueBigInt, I64: t.internI64(v.Int64)}, nil
	default:
		return field{}, &fdb.UnknownValueTypeError{Code: uint32(v.Type)}
	}
}

// PushRow adds a row keyed by pk to the table, hashing it into
// pk % bucketCount and appending it to that bucket's row list. Every
// TEXT/VARCHAR/BigInt value is interned into the table's arena as it
// is pushed.
func (t *Table) PushRow(pk uint32, fields []fdb.Value[string]) error {
	if len(t.buckets) == 0 {
		return &fdb.OutOfBoundsError{Size: 0}
	}
	firstFieldIndex := len(t.fields)
	rowIndex := len(t.rows)

	bucketIndex := int(pk) % len(t.buckets)
	b := &t.buckets[bucketIndex]
	if b.hasRow {
		t.rows[b.last].next = rowIndex
		t.rows[b.last].hasNext = true
		b.last = rowIndex
	} else {
		b.first, b.last, b.hasRow = rowIndex, rowIndex, true
	}

	t.rows = append(t.rows, row{
		firstFieldIndex: firstFieldIndex,
		count:           uint32(len(fields)),
	})

	for _, v := range fields {
		f, err := t.mapField(v)
		if err != nil {
			return err
		}
		t.fields = append(t.fields, f)
	}
	return nil
}

// sortedStringKeys returns the table's string-arena length keys in
// ascending order, the iteration order a Rust BTreeMap would give.
func (t *Table) sortedStringKeys() []int {
	keys := make([]int, 0, len(t.strings))
	for k := range t.strings {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
