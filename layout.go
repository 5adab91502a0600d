package fdb

// This file names the fixed-size POD records of the on-disk format and
// gives each its encoded byte size as a constant. None of these structs
// are read directly with encoding/binary.Read plus a reflective struct
// tag walk: fdb/mem and fdb/stream decode every field through the
// bounds-checked readers in buffer.go instead, keeping a single
// unaligned-load chokepoint rather than relying on host struct layout.

const (
	// SizeHeader is the encoded size of the file header: one ArrayHeader.
	SizeHeader = 8

	// SizeTableHeader is the encoded size of one table directory entry.
	SizeTableHeader = 8

	// SizeTableDefHeader is the encoded size of a table-definition header.
	SizeTableDefHeader = 12

	// SizeColumnHeader is the encoded size of one column header.
	SizeColumnHeader = 8

	// SizeTableDataHeader is the encoded size of a table-data header:
	// one ArrayHeader (the bucket array).
	SizeTableDataHeader = 8

	// SizeBucketHeader is the encoded size of one bucket header.
	SizeBucketHeader = 4

	// SizeRowListEntry is the encoded size of one row-list cons cell.
	SizeRowListEntry = 8

	// SizeRowHeader is the encoded size of one row header: one
	// ArrayHeader (the field array).
	SizeRowHeader = 8

	// SizeFieldCell is the encoded size of one field cell: a 4-byte
	// type tag plus a 4-byte payload.
	SizeFieldCell = 8

	// SizeI64Value is the encoded size of one indirect INT64 value.
	SizeI64Value = 8
)

// Header is the decoded file header: an array of table headers.
type Header struct {
	Tables ArrayHeader
}

// TableHeader points at a table's definition and data blocks.
type TableHeader struct {
	DefAddr  uint32
	DataAddr uint32
}

// TableDefHeader names a table and its columns.
type TableDefHeader struct {
	ColumnCount uint32
	NameAddr    uint32
	ColumnsAddr uint32
}

// ColumnHeader describes one column.
type ColumnHeader struct {
	DataType ValueType
	NameAddr uint32
}

// TableDataHeader points at a table's bucket array.
type TableDataHeader struct {
	Buckets ArrayHeader
}

// BucketHeader holds the offset of the head row-list entry, or NoEntry
// if the bucket is empty.
type BucketHeader struct {
	HeadAddr uint32
}

// RowListEntry is the (row_header_offset, next_entry_offset) cons cell
// that chains the rows in one bucket together.
type RowListEntry struct {
	RowAddr  uint32
	NextAddr uint32
}

// RowHeader is an array of field cells.
type RowHeader struct {
	Fields ArrayHeader
}

// FieldCell is a (type tag, 4-byte payload) pair.
type FieldCell struct {
	Type    ValueType
	Payload [4]byte
}
