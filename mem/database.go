package mem

import (
	"github.com/lcdr/fdb"
)

// Header returns the decoded file header.
func (d *Database) Header() (fdb.Header, error) {
	ah, err := fdb.ReadArrayHeader(d.buf, 0)
	if err != nil {
		return fdb.Header{}, err
	}
	return fdb.Header{Tables: ah}, nil
}

// Tables returns the table directory.
func (d *Database) Tables() (Tables, error) {
	h, err := d.Header()
	if err != nil {
		return Tables{}, err
	}
	return Tables{buf: d.buf, header: h.Tables}, nil
}

// Tables is the sorted array of table directory entries spanning the
// whole database: entries are always ordered by name, which is what
// makes ByName's binary search valid.
type Tables struct {
	buf    []byte
	header fdb.ArrayHeader
}

// Len returns the number of tables.
func (t Tables) Len() int { return int(t.header.Count) }

func (t Tables) entryOffset(index int) uint32 {
	return t.header.BaseOffset + uint32(index)*fdb.SizeTableHeader
}

// Get returns the table at index.
func (t Tables) Get(index int) (Table, error) {
	if index < 0 || index >= t.Len() {
		return Table{}, &fdb.OutOfBoundsError{Offset: uint32(index), Size: t.header.Count}
	}
	off := t.entryOffset(index)
	defAddr, err := fdb.ReadUint32(t.buf, off)
	if err != nil {
		return Table{}, err
	}
	dataAddr, err := fdb.ReadUint32(t.buf, off+4)
	if err != nil {
		return Table{}, err
	}
	return newTable(t.buf, defAddr, dataAddr)
}

// Iter returns an iterator over all tables, in directory order (i.e.
// sorted by name).
func (t Tables) Iter() *TableIter {
	return &TableIter{tables: t, index: 0}
}

// ByName looks up a table by its name via binary search over the
// sorted directory.
func (t Tables) ByName(name string) (Table, bool, error) {
	probe := []byte(name)
	lo, hi := 0, t.Len()
	for lo < hi {
		mid := (lo + hi) / 2
		off := t.entryOffset(mid)
		defAddr, err := fdb.ReadUint32(t.buf, off)
		if err != nil {
			return Table{}, false, err
		}
		nameAddr, err := fdb.ReadUint32(t.buf, defAddr+4)
		if err != nil {
			return Table{}, false, err
		}
		stored, err := fdb.ReadLatin1UntilNul(t.buf, nameAddr)
		if err != nil {
			return Table{}, false, err
		}
		cmp := fdb.CompareBytes(probe, stored)
		switch {
		case cmp == 0:
			tbl, err := t.Get(mid)
			return tbl, err == nil, err
		case cmp < 0:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	return Table{}, false, nil
}
