package mem

import "github.com/lcdr/fdb"

// TableIter iterates over a table directory in order, the way
// bufio.Scanner-style iterators are used elsewhere in this codebase:
// call Next until it returns false, then check Err.
type TableIter struct {
	tables  Tables
	index   int
	current Table
	err     error
}

// Next advances the iterator. It returns false at the end of the
// directory or on the first decode error (retrievable via Err).
func (it *TableIter) Next() bool {
	if it.err != nil || it.index >= it.tables.Len() {
		return false
	}
	t, err := it.tables.Get(it.index)
	if err != nil {
		it.err = err
		return false
	}
	it.current = t
	it.index++
	return true
}

// Table returns the table produced by the most recent call to Next.
func (it *TableIter) Table() Table { return it.current }

// Err returns the error, if any, that stopped iteration early.
func (it *TableIter) Err() error { return it.err }

// ColumnIter iterates over a table's columns in declared order.
type ColumnIter struct {
	table   Table
	index   int
	current Column
	err     error
}

// Next advances the iterator.
func (it *ColumnIter) Next() bool {
	if it.err != nil || it.index >= it.table.ColumnCount() {
		return false
	}
	c, err := it.table.ColumnAt(it.index)
	if err != nil {
		it.err = err
		return false
	}
	it.current = c
	it.index++
	return true
}

// Column returns the column produced by the most recent call to Next.
func (it *ColumnIter) Column() Column { return it.current }

// Err returns the error, if any, that stopped iteration early.
func (it *ColumnIter) Err() error { return it.err }

// BucketIter iterates over a table's bucket array.
type BucketIter struct {
	table   Table
	index   int
	current Bucket
	err     error
}

// Next advances the iterator.
func (it *BucketIter) Next() bool {
	if it.err != nil || it.index >= it.table.BucketCount() {
		return false
	}
	b, err := it.table.BucketAt(it.index)
	if err != nil {
		it.err = err
		return false
	}
	it.current = b
	it.index++
	return true
}

// Bucket returns the bucket produced by the most recent call to Next.
func (it *BucketIter) Bucket() Bucket { return it.current }

// Err returns the error, if any, that stopped iteration early.
func (it *BucketIter) Err() error { return it.err }

// RowHeaderIter walks the singly-linked row list starting at a
// bucket's head entry, decoding one Row per cons cell.
type RowHeaderIter struct {
	buf     []byte
	next    uint32
	current Row
	err     error
}

// Next advances the iterator, following the row list's next-pointer.
func (it *RowHeaderIter) Next() bool {
	if it.err != nil || it.next == fdb.NoEntry {
		return false
	}
	rowAddr, err := fdb.ReadUint32(it.buf, it.next)
	if err != nil {
		it.err = err
		return false
	}
	nextAddr, err := fdb.ReadUint32(it.buf, it.next+4)
	if err != nil {
		it.err = err
		return false
	}
	fields, err := fdb.ReadArrayHeader(it.buf, rowAddr)
	if err != nil {
		it.err = err
		return false
	}
	it.current = Row{buf: it.buf, fields: fields}
	it.next = nextAddr
	return true
}

// Row returns the row produced by the most recent call to Next.
func (it *RowHeaderIter) Row() Row { return it.current }

// Err returns the error, if any, that stopped iteration early.
func (it *RowHeaderIter) Err() error { return it.err }

// TableRowIter iterates over every row in a table, flattening each
// bucket's row list in bucket order.
type TableRowIter struct {
	buckets *BucketIter
	rows    *RowHeaderIter
	err     error
}

// Next advances to the next row across all buckets.
func (it *TableRowIter) Next() bool {
	for {
		if it.rows != nil && it.rows.Next() {
			return true
		}
		if it.rows != nil {
			if err := it.rows.Err(); err != nil {
				it.err = err
				return false
			}
		}
		if !it.buckets.Next() {
			if err := it.buckets.Err(); err != nil {
				it.err = err
			}
			return false
		}
		it.rows = it.buckets.Bucket().RowIter()
	}
}

// Row returns the row produced by the most recent call to Next.
func (it *TableRowIter) Row() Row { return it.rows.Row() }

// Err returns the error, if any, that stopped iteration early.
func (it *TableRowIter) Err() error { return it.err }

// FieldIter iterates over a row's fields in declared order.
type FieldIter struct {
	row     Row
	index   int
	current Field
	err     error
}

// Next advances the iterator.
func (it *FieldIter) Next() bool {
	if it.err != nil || it.index >= it.row.FieldCount() {
		return false
	}
	f, err := it.row.FieldAt(it.index)
	if err != nil {
		it.err = err
		return false
	}
	it.current = f
	it.index++
	return true
}

// Field returns the field produced by the most recent call to Next.
func (it *FieldIter) Field() Field { return it.current }

// Err returns the error, if any, that stopped iteration early.
func (it *FieldIter) Err() error { return it.err }
