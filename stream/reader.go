package stream

import (
	"io"

	"github.com/lcdr/fdb"
)

// Reader decodes one FDB record at a time from a ReadSeeker, making a
// fresh Seek+Read+parse round trip for every call — no state is kept
// between calls beyond the underlying stream's position. A concrete
// wrapper type around io.ReadSeeker rather than a set of free
// functions, so every decode method shares the same error-wrapping
// helper.
type Reader struct {
	r io.ReadSeeker
}

// NewReader wraps r.
func NewReader(r io.ReadSeeker) *Reader {
	return &Reader{r: r}
}

func (s *Reader) readAt(addr uint32, buf []byte) error {
	if _, err := s.r.Seek(int64(addr), io.SeekStart); err != nil {
		return err
	}
	_, err := io.ReadFull(s.r, buf)
	return err
}

// GetHeader reads the file header at offset 0.
func (s *Reader) GetHeader() (fdb.Header, error) {
	var buf [fdb.SizeHeader]byte
	if err := s.readAt(0, buf[:]); err != nil {
		return fdb.Header{}, err
	}
	ah, err := fdb.ReadArrayHeader(buf[:], 0)
	if err != nil {
		return fdb.Header{}, &fdb.ParseError{Struct: "Header", Addr: 0, Offset: 0}
	}
	return fdb.Header{Tables: ah}, nil
}

// GetTableHeaderList reads every entry of the table directory named by
// header.Tables.
func (s *Reader) GetTableHeaderList(header fdb.Header) ([]fdb.TableHeader, error) {
	out := make([]fdb.TableHeader, header.Tables.Count)
	var buf [fdb.SizeTableHeader]byte
	addr := header.Tables.BaseOffset
	for i := range out {
		if err := s.readAt(addr, buf[:]); err != nil {
			return nil, err
		}
		defAddr, err1 := fdb.ReadUint32(buf[:], 0)
		dataAddr, err2 := fdb.ReadUint32(buf[:], 4)
		if err1 != nil || err2 != nil {
			return nil, &fdb.ParseError{Struct: "TableHeader", Addr: uint64(addr), Offset: 0}
		}
		out[i] = fdb.TableHeader{DefAddr: defAddr, DataAddr: dataAddr}
		addr += fdb.SizeTableHeader
	}
	return out, nil
}

// GetTableDefHeader reads a table's definition header at addr.
func (s *Reader) GetTableDefHeader(addr uint32) (fdb.TableDefHeader, error) {
	var buf [fdb.SizeTableDefHeader]byte
	if err := s.readAt(addr, buf[:]); err != nil {
		return fdb.TableDefHeader{}, err
	}
	columnCount, err1 := fdb.ReadUint32(buf[:], 0)
	nameAddr, err2 := fdb.ReadUint32(buf[:], 4)
	columnsAddr, err3 := fdb.ReadUint32(buf[:], 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return fdb.TableDefHeader{}, &fdb.ParseError{Struct: "TableDefHeader", Addr: uint64(addr), Offset: 0}
	}
	return fdb.TableDefHeader{ColumnCount: columnCount, NameAddr: nameAddr, ColumnsAddr: columnsAddr}, nil
}

// GetColumnHeaderList reads a table's column headers.
func (s *Reader) GetColumnHeaderList(def fdb.TableDefHeader) ([]fdb.ColumnHeader, error) {
	out := make([]fdb.ColumnHeader, def.ColumnCount)
	var buf [fdb.SizeColumnHeader]byte
	addr := def.ColumnsAddr
	for i := range out {
		if err := s.readAt(addr, buf[:]); err != nil {
			return nil, err
		}
		code, err1 := fdb.ReadUint32(buf[:], 0)
		nameAddr, err2 := fdb.ReadUint32(buf[:], 4)
		if err1 != nil || err2 != nil {
			return nil, &fdb.ParseError{Struct: "ColumnHeader", Addr: uint64(addr), Offset: 0}
		}
		vt, err := fdb.ParseValueType(code)
		if err != nil {
			return nil, err
		}
		out[i] = fdb.ColumnHeader{DataType: vt, NameAddr: nameAddr}
		addr += fdb.SizeColumnHeader
	}
	return out, nil
}

// GetTableDataHeader reads a table's data header at addr.
func (s *Reader) GetTableDataHeader(addr uint32) (fdb.TableDataHeader, error) {
	var buf [fdb.SizeTableDataHeader]byte
	if err := s.readAt(addr, buf[:]); err != nil {
		return fdb.TableDataHeader{}, err
	}
	ah, err := fdb.ReadArrayHeader(buf[:], 0)
	if err != nil {
		return fdb.TableDataHeader{}, &fdb.ParseError{Struct: "TableDataHeader", Addr: uint64(addr), Offset: 0}
	}
	return fdb.TableDataHeader{Buckets: ah}, nil
}

// GetBucketHeaderList reads a table's bucket array.
func (s *Reader) GetBucketHeaderList(header fdb.TableDataHeader) ([]fdb.BucketHeader, error) {
	out := make([]fdb.BucketHeader, header.Buckets.Count)
	var buf [fdb.SizeBucketHeader]byte
	addr := header.Buckets.BaseOffset
	for i := range out {
		if err := s.readAt(addr, buf[:]); err != nil {
			return nil, err
		}
		head, err := fdb.ReadUint32(buf[:], 0)
		if err != nil {
			return nil, &fdb.ParseError{Struct: "BucketHeader", Addr: uint64(addr), Offset: 0}
		}
		out[i] = fdb.BucketHeader{HeadAddr: head}
		addr += fdb.SizeBucketHeader
	}
	return out, nil
}

// GetRowHeaderListEntry reads one row-list cons cell at addr.
func (s *Reader) GetRowHeaderListEntry(addr uint32) (fdb.RowListEntry, error) {
	var buf [fdb.SizeRowListEntry]byte
	if err := s.readAt(addr, buf[:]); err != nil {
		return fdb.RowListEntry{}, err
	}
	rowAddr, err1 := fdb.ReadUint32(buf[:], 0)
	nextAddr, err2 := fdb.ReadUint32(buf[:], 4)
	if err1 != nil || err2 != nil {
		return fdb.RowListEntry{}, &fdb.ParseError{Struct: "RowListEntry", Addr: uint64(addr), Offset: 0}
	}
	return fdb.RowListEntry{RowAddr: rowAddr, NextAddr: nextAddr}, nil
}

// GetRowHeader reads a row header at addr.
func (s *Reader) GetRowHeader(addr uint32) (fdb.RowHeader, error) {
	var buf [fdb.SizeRowHeader]byte
	if err := s.readAt(addr, buf[:]); err != nil {
		return fdb.RowHeader{}, err
	}
	ah, err := fdb.ReadArrayHeader(buf[:], 0)
	if err != nil {
		return fdb.RowHeader{}, &fdb.ParseError{Struct: "RowHeader", Addr: uint64(addr), Offset: 0}
	}
	return fdb.RowHeader{Fields: ah}, nil
}

// GetFieldDataList reads every field cell of a row.
func (s *Reader) GetFieldDataList(header fdb.RowHeader) ([]fdb.FieldCell, error) {
	out := make([]fdb.FieldCell, header.Fields.Count)
	var buf [fdb.SizeFieldCell]byte
	addr := header.Fields.BaseOffset
	for i := range out {
		if err := s.readAt(addr, buf[:]); err != nil {
			return nil, err
		}
		code, err1 := fdb.ReadUint32(buf[:], 0)
		if err1 != nil {
			return nil, &fdb.ParseError{Struct: "FieldCell", Addr: uint64(addr), Offset: 0}
		}
		vt, err := fdb.ParseValueType(code)
		if err != nil {
			return nil, err
		}
		var payload [4]byte
		copy(payload[:], buf[4:8])
		out[i] = fdb.FieldCell{Type: vt, Payload: payload}
		addr += fdb.SizeFieldCell
	}
	return out, nil
}

// GetString reads a Latin-1 string at addr and decodes it.
func (s *Reader) GetString(addr uint32) (string, error) {
	if _, err := s.r.Seek(int64(addr), io.SeekStart); err != nil {
		return "", err
	}
	var raw []byte
	var b [1]byte
	for {
		if _, err := io.ReadFull(s.r, b[:]); err != nil {
			return "", err
		}
		if b[0] == 0 {
			break
		}
		raw = append(raw, b[0])
	}
	return fdb.Latin1Str(raw).Decode(), nil
}

// GetI64 reads a little-endian int64 at addr.
func (s *Reader) GetI64(addr uint32) (int64, error) {
	var buf [8]byte
	if err := s.readAt(addr, buf[:]); err != nil {
		return 0, err
	}
	v, err := fdb.ReadI64LE(buf[:], 0)
	if err != nil {
		return 0, &fdb.ParseError{Struct: "i64", Addr: uint64(addr), Offset: 0}
	}
	return v, nil
}

// RowAddrIter iterates row-header addresses by following a bucket's
// row list, one GetRowHeaderListEntry call per step, yielding
// addresses rather than decoded rows for callers that only need to
// locate entries.
type RowAddrIter struct {
	s       *Reader
	next    uint32
	current uint32
	err     error
}

// RowAddrIter returns an iterator over row-header addresses starting
// at addr (typically a bucket's head address).
func (s *Reader) RowAddrIter(addr uint32) *RowAddrIter {
	return &RowAddrIter{s: s, next: addr}
}

// Next advances the iterator, returning false at the list's end (the
// NoEntry sentinel) or on the first read error.
func (it *RowAddrIter) Next() bool {
	if it.err != nil || it.next == fdb.NoEntry {
		return false
	}
	entry, err := it.s.GetRowHeaderListEntry(it.next)
	if err != nil {
		it.err = err
		it.next = fdb.NoEntry
		return false
	}
	it.current = entry.RowAddr
	it.next = entry.NextAddr
	return true
}

// Addr returns the row-header address produced by the most recent
// call to Next.
func (it *RowAddrIter) Addr() uint32 { return it.current }

// Err returns the error, if any, that stopped iteration early.
func (it *RowAddrIter) Err() error { return it.err }
