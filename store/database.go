package store

import (
	"sort"

	"github.com/lcdr/fdb"
)

// Database is a complete database under construction. Tables are kept
// sorted by name at all times: the image this package writes never
// needs a separate sort pass over the directory, because it was never
// allowed to become unsorted.
type Database struct {
	names  []fdb.Latin1Str
	tables []*Table
}

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{}
}

// PushTable adds or replaces the table named name, the way a
// BTreeMap's insert would: an existing entry with the same name is
// overwritten in place, otherwise the table is inserted at its sorted
// position.
func (d *Database) PushTable(name string, table *Table) error {
	raw, err := fdb.EncodeLatin1(name)
	if err != nil {
		return err
	}
	key := fdb.Latin1Str(raw)
	i := sort.Search(len(d.names), func(i int) bool { return !d.names[i].Less(key) })
	if i < len(d.names) && d.names[i].Equal(key) {
		d.tables[i] = table
		return nil
	}
	d.names = append(d.names, fdb.Latin1Str(nil))
	copy(d.names[i+1:], d.names[i:])
	d.names[i] = key

	d.tables = append(d.tables, nil)
	copy(d.tables[i+1:], d.tables[i:])
	d.tables[i] = table
	return nil
}

// Len returns the number of tables.
func (d *Database) Len() int { return len(d.tables) }
