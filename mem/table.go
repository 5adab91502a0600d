package mem

import (
	"github.com/lcdr/fdb"
)

// Table is a reference to a single table's definition and data within
// the database buffer: its name, column list, and bucket array.
type Table struct {
	buf         []byte
	name        fdb.Latin1Str
	columnsAddr uint32
	columnCount uint32
	buckets     fdb.ArrayHeader
}

func newTable(buf []byte, defAddr, dataAddr uint32) (Table, error) {
	var def fdb.TableDefHeader
	columnCount, err := fdb.ReadUint32(buf, defAddr)
	if err != nil {
		return Table{}, err
	}
	def.ColumnCount = columnCount
	def.NameAddr, err = fdb.ReadUint32(buf, defAddr+4)
	if err != nil {
		return Table{}, err
	}
	def.ColumnsAddr, err = fdb.ReadUint32(buf, defAddr+8)
	if err != nil {
		return Table{}, err
	}

	name, err := fdb.ReadLatin1UntilNul(buf, def.NameAddr)
	if err != nil {
		return Table{}, err
	}

	bucketsHeader, err := fdb.ReadArrayHeader(buf, dataAddr)
	if err != nil {
		return Table{}, err
	}

	return Table{
		buf:         buf,
		name:        name,
		columnsAddr: def.ColumnsAddr,
		columnCount: def.ColumnCount,
		buckets:     bucketsHeader,
	}, nil
}

// NameRaw returns the table's undecoded Latin-1 name.
func (t Table) NameRaw() fdb.Latin1Str { return t.name }

// Name returns the table's decoded name.
func (t Table) Name() string { return t.name.Decode() }

// ColumnCount returns the number of columns.
func (t Table) ColumnCount() int { return int(t.columnCount) }

// ColumnAt returns the column at index.
func (t Table) ColumnAt(index int) (Column, error) {
	if index < 0 || uint32(index) >= t.columnCount {
		return Column{}, &fdb.OutOfBoundsError{Offset: uint32(index), Size: t.columnCount}
	}
	off := t.columnsAddr + uint32(index)*fdb.SizeColumnHeader
	code, err := fdb.ReadUint32(t.buf, off)
	if err != nil {
		return Column{}, err
	}
	domain, err := fdb.ParseValueType(code)
	if err != nil {
		return Column{}, err
	}
	nameAddr, err := fdb.ReadUint32(t.buf, off+4)
	if err != nil {
		return Column{}, err
	}
	name, err := fdb.ReadLatin1UntilNul(t.buf, nameAddr)
	if err != nil {
		return Column{}, err
	}
	return Column{name: name, domain: domain}, nil
}

// ColumnIter returns an iterator over all columns, in declared order.
func (t Table) ColumnIter() *ColumnIter {
	return &ColumnIter{table: t, index: 0}
}

// BucketCount returns the number of hash buckets.
func (t Table) BucketCount() int { return int(t.buckets.Count) }

// BucketAt returns the bucket at index.
func (t Table) BucketAt(index int) (Bucket, error) {
	if index < 0 || uint32(index) >= t.buckets.Count {
		return Bucket{}, &fdb.OutOfBoundsError{Offset: uint32(index), Size: t.buckets.Count}
	}
	off := t.buckets.BaseOffset + uint32(index)*fdb.SizeBucketHeader
	head, err := fdb.ReadUint32(t.buf, off)
	if err != nil {
		return Bucket{}, err
	}
	return Bucket{buf: t.buf, head: head}, nil
}

// BucketForHash selects the bucket a key with this hash lives in.
func (t Table) BucketForHash(hash uint32) (Bucket, error) {
	if t.buckets.Count == 0 {
		return Bucket{}, &fdb.OutOfBoundsError{Size: 0}
	}
	return t.BucketAt(int(hash % t.buckets.Count))
}

// BucketIter returns an iterator over every bucket in the table.
func (t Table) BucketIter() *BucketIter {
	return &BucketIter{table: t, index: 0}
}

// RowIter returns an iterator over every row in the table, bucket by
// bucket.
func (t Table) RowIter() *TableRowIter {
	return &TableRowIter{buckets: t.BucketIter()}
}

// RowsForHash returns every row in the bucket for hash whose first
// field matches filter: the indexed primary-key lookup path.
func (t Table) RowsForHash(filter fdb.PrimaryKeyFilter) ([]Row, error) {
	bucket, err := t.BucketForHash(filter.HashValue)
	if err != nil {
		return nil, err
	}
	var out []Row
	it := bucket.RowIter()
	for it.Next() {
		row := it.Row()
		field, err := row.FieldAt(0)
		if err != nil {
			return nil, err
		}
		if filter.Matches(ToBytesValue(field)) {
			out = append(out, row)
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Column describes one column's name and declared value type.
type Column struct {
	name   fdb.Latin1Str
	domain fdb.ValueType
}

// NameRaw returns the column's undecoded Latin-1 name.
func (c Column) NameRaw() fdb.Latin1Str { return c.name }

// Name returns the column's decoded name.
func (c Column) Name() string { return c.name.Decode() }

// ValueType returns the column's declared value type.
func (c Column) ValueType() fdb.ValueType { return c.domain }

// Bucket is a reference to one hash bucket: the head of its row list,
// or the empty sentinel.
type Bucket struct {
	buf  []byte
	head uint32
}

// IsEmpty reports whether the bucket has no rows.
func (b Bucket) IsEmpty() bool { return b.head == fdb.NoEntry }

// RowIter returns an iterator over the rows chained from this bucket.
func (b Bucket) RowIter() *RowHeaderIter {
	return &RowHeaderIter{buf: b.buf, next: b.head}
}
