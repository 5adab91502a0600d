package store

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/lcdr/fdb"
)

// tableSize is the byte length of a table's definition block and data
// block, computed independently of where the table ends up in the
// final image (only their sum matters for laying out the table
// directory before any table's content is known).
type tableSize struct {
	def  uint32
	data uint32
}

func (t *Table) defSize(name fdb.Latin1Str) uint32 {
	size := uint32(fdb.SizeTableDefHeader)
	size += reqBufLen32(name) * 4
	size += uint32(len(t.columns)) * fdb.SizeColumnHeader
	for _, c := range t.columns {
		size += reqBufLen32(c.Name) * 4
	}
	return size
}

func (t *Table) dataSize() uint32 {
	var stringSize uint32
	for key, values := range t.strings {
		stringSize += uint32(key) * uint32(len(values))
	}
	size := uint32(fdb.SizeTableDataHeader)
	size += uint32(len(t.buckets)) * fdb.SizeBucketHeader
	size += uint32(len(t.rows)) * fdb.SizeRowListEntry
	size += uint32(len(t.rows)) * fdb.SizeRowHeader
	size += uint32(len(t.fields)) * fdb.SizeFieldCell
	size += 4 * stringSize
	size += uint32(len(t.i64s)) * 8
	return size
}

func (t *Table) computeSize(name fdb.Latin1Str) tableSize {
	return tableSize{def: t.defSize(name), data: t.dataSize()}
}

func reqBufLen32(s []byte) uint32 { return uint32(len(s)/4 + 1) }

// ComputeSize returns the total byte length of the serialized
// database, without writing it.
func (d *Database) ComputeSize() uint32 {
	total := uint32(fdb.SizeHeader)
	for i, table := range d.tables {
		size := table.computeSize(d.names[i])
		total += size.def + size.data
	}
	return total
}

func putU32(buf []byte, v uint32) {
	binary.LittleEndian.PutUint32(buf, v)
}

func writeU32(w io.Writer, v uint32) error {
	var buf [4]byte
	putU32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeI64(w io.Writer, v int64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	_, err := w.Write(buf[:])
	return err
}

// writeLatin1Padded writes raw, then pads with zero bytes until
// exactly totalLen bytes have been written (totalLen is always a
// multiple of 4 and always leaves room for at least one terminator).
func writeLatin1Padded(w io.Writer, raw []byte, totalLen uint32) error {
	if _, err := w.Write(raw); err != nil {
		return err
	}
	pad := make([]byte, int(totalLen)-len(raw))
	_, err := w.Write(pad)
	return err
}

// Write serializes the database to out: the table directory is
// written first (every entry's def/data addresses are known up front
// from ComputeSize's per-table sizes), then each table's definition
// and data blocks follow back to back.
func (d *Database) Write(out io.Writer) error {
	baseOffset := uint32(fdb.SizeHeader)
	count := uint32(len(d.tables))

	if err := writeU32(out, count); err != nil {
		return err
	}
	if err := writeU32(out, baseOffset); err != nil {
		return err
	}

	sizes := make([]tableSize, len(d.tables))
	for i, table := range d.tables {
		sizes[i] = table.computeSize(d.names[i])
	}

	tableListBase := baseOffset + count*fdb.SizeTableHeader
	start := tableListBase
	startVec := make([]uint32, len(d.tables))
	for i, size := range sizes {
		startVec[i] = start
		defAddr := start
		dataAddr := start + size.def
		if err := writeU32(out, defAddr); err != nil {
			return err
		}
		if err := writeU32(out, dataAddr); err != nil {
			return err
		}
		start = dataAddr + size.data
	}

	start = tableListBase
	for i, table := range d.tables {
		next, err := table.write(out, d.names[i], start)
		if err != nil {
			return err
		}
		start = next
	}
	return nil
}

func (t *Table) write(out io.Writer, name fdb.Latin1Str, start uint32) (uint32, error) {
	columnCount := uint32(len(t.columns))
	columnHeaderListAddr := start + fdb.SizeTableDefHeader
	tableNameAddr := columnHeaderListAddr + fdb.SizeColumnHeader*columnCount

	if err := writeU32(out, columnCount); err != nil {
		return 0, err
	}
	if err := writeU32(out, tableNameAddr); err != nil {
		return 0, err
	}
	if err := writeU32(out, columnHeaderListAddr); err != nil {
		return 0, err
	}

	columnNameAddr := tableNameAddr + reqBufLen32(name)*4
	for _, c := range t.columns {
		if err := writeU32(out, uint32(c.DataType)); err != nil {
			return 0, err
		}
		if err := writeU32(out, columnNameAddr); err != nil {
			return 0, err
		}
		columnNameAddr += reqBufLen32(c.Name) * 4
	}

	if err := writeLatin1Padded(out, name, reqBufLen32(name)*4); err != nil {
		return 0, err
	}
	for _, c := range t.columns {
		if err := writeLatin1Padded(out, c.Name, reqBufLen32(c.Name)*4); err != nil {
			return 0, err
		}
	}

	bucketBaseOffset := columnNameAddr + fdb.SizeTableDataHeader
	bucketCount := uint32(len(t.buckets))

	if err := writeU32(out, bucketCount); err != nil {
		return 0, err
	}
	if err := writeU32(out, bucketBaseOffset); err != nil {
		return 0, err
	}

	rowHeaderListBase := bucketBaseOffset + bucketCount*fdb.SizeBucketHeader
	mapRowEntry := func(index int) uint32 {
		return rowHeaderListBase + uint32(index)*fdb.SizeRowListEntry
	}

	for _, b := range t.buckets {
		head := fdb.NoEntry
		if b.hasRow {
			head = mapRowEntry(b.first)
		}
		if err := writeU32(out, head); err != nil {
			return 0, err
		}
	}

	rowCount := uint32(len(t.rows))
	rowHeaderBase := rowHeaderListBase + rowCount*fdb.SizeRowListEntry

	for index, r := range t.rows {
		rowHeaderAddr := rowHeaderBase + uint32(index)*fdb.SizeRowHeader
		next := fdb.NoEntry
		if r.hasNext {
			next = mapRowEntry(r.next)
		}
		if err := writeU32(out, rowHeaderAddr); err != nil {
			return 0, err
		}
		if err := writeU32(out, next); err != nil {
			return 0, err
		}
	}

	fieldBaseOffset := rowHeaderBase + rowCount*fdb.SizeRowHeader

	for _, r := range t.rows {
		fieldsBase := fieldBaseOffset + uint32(r.firstFieldIndex)*fdb.SizeFieldCell
		if err := writeU32(out, r.count); err != nil {
			return 0, err
		}
		if err := writeU32(out, fieldsBase); err != nil {
			return 0, err
		}
	}

	i64sBaseOffset := fieldBaseOffset + uint32(len(t.fields))*fdb.SizeFieldCell
	stringsBaseOffset := i64sBaseOffset + uint32(len(t.i64s))*8

	keys := t.sortedStringKeys()
	stringLenOffsets := make(map[int]uint32, len(keys))
	stringLenBase := stringsBaseOffset
	for _, key := range keys {
		stringLen := uint32(key) * 4
		stringLenOffsets[key] = stringLenBase
		stringLenBase += stringLen * uint32(len(t.strings[key]))
	}

	for _, f := range t.fields {
		var payload [4]byte
		switch f.Type {
		case fdb.ValueNothing:
		case fdb.ValueInteger:
			binary.LittleEndian.PutUint32(payload[:], uint32(f.Int32))
		case fdb.ValueFloat:
			binary.LittleEndian.PutUint32(payload[:], math.Float32bits(f.Float32))
		case fdb.ValueText, fdb.ValueVarChar:
			addr := stringLenOffsets[f.Text.Outer] + uint32(f.Text.Inner*f.Text.Outer*4)
			binary.LittleEndian.PutUint32(payload[:], addr)
		case fdb.ValueBoolean:
			if f.Bool {
				payload = [4]byte{1, 0, 0, 0}
			} else {
				payload = [4]byte{0, 0, 0, 0}
			}
		case fdb.ValueBigInt:
			addr := i64sBaseOffset + uint32(f.I64.Index)*8
			binary.LittleEndian.PutUint32(payload[:], addr)
		}
		if err := writeU32(out, uint32(f.Type)); err != nil {
			return 0, err
		}
		if _, err := out.Write(payload[:]); err != nil {
			return 0, err
		}
	}

	for _, v := range t.i64s {
		if err := writeI64(out, v); err != nil {
			return 0, err
		}
	}

	for _, key := range keys {
		for _, s := range t.strings[key] {
			if err := writeLatin1Padded(out, s, uint32(key)*4); err != nil {
				return 0, err
			}
		}
	}

	return stringLenBase, nil
}
