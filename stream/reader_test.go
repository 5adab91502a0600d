package stream

import (
	"bytes"
	"testing"

	"github.com/lcdr/fdb"
)

func TestReaderEmptyDatabase(t *testing.T) {
	buf := []byte{0, 0, 0, 0, 8, 0, 0, 0}
	r := NewReader(bytes.NewReader(buf))
	header, err := r.GetHeader()
	if err != nil {
		t.Fatalf("GetHeader: %v", err)
	}
	if header.Tables.Count != 0 || header.Tables.BaseOffset != 8 {
		t.Errorf("header = %+v", header)
	}
	list, err := r.GetTableHeaderList(header)
	if err != nil {
		t.Fatalf("GetTableHeaderList: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("len(list) = %d, want 0", len(list))
	}
}

func TestReaderTableWithColumns(t *testing.T) {
	buf := []byte{
		1, 0, 0, 0, 8, 0, 0, 0,
		16, 0, 0, 0, 60, 0, 0, 0,
		2, 0, 0, 0, 44, 0, 0, 0, 28, 0, 0, 0,
		1, 0, 0, 0, 52, 0, 0, 0,
		5, 0, 0, 0, 56, 0, 0, 0,
		'F', 'o', 'o', 'b', 'a', 'r', 0, 0,
		'f', 'o', 'o', 0,
		'b', 'a', 'r', 0,
		0, 0, 0, 0, 68, 0, 0, 0,
	}
	r := NewReader(bytes.NewReader(buf))
	header, err := r.GetHeader()
	if err != nil {
		t.Fatalf("GetHeader: %v", err)
	}
	tables, err := r.GetTableHeaderList(header)
	if err != nil {
		t.Fatalf("GetTableHeaderList: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("len(tables) = %d, want 1", len(tables))
	}
	def, err := r.GetTableDefHeader(tables[0].DefAddr)
	if err != nil {
		t.Fatalf("GetTableDefHeader: %v", err)
	}
	name, err := r.GetString(def.NameAddr)
	if err != nil || name != "Foobar" {
		t.Errorf("name = %q, err %v", name, err)
	}
	columns, err := r.GetColumnHeaderList(def)
	if err != nil {
		t.Fatalf("GetColumnHeaderList: %v", err)
	}
	if len(columns) != 2 {
		t.Fatalf("len(columns) = %d, want 2", len(columns))
	}
	fooName, err := r.GetString(columns[0].NameAddr)
	if err != nil || fooName != "foo" || columns[0].DataType != fdb.ValueInteger {
		t.Errorf("column 0 = %q type %v, err %v", fooName, columns[0].DataType, err)
	}
	barName, err := r.GetString(columns[1].NameAddr)
	if err != nil || barName != "bar" || columns[1].DataType != fdb.ValueBoolean {
		t.Errorf("column 1 = %q type %v, err %v", barName, columns[1].DataType, err)
	}

	dataHeader, err := r.GetTableDataHeader(tables[0].DataAddr)
	if err != nil {
		t.Fatalf("GetTableDataHeader: %v", err)
	}
	if dataHeader.Buckets.Count != 0 {
		t.Errorf("bucket count = %d, want 0", dataHeader.Buckets.Count)
	}
}

func TestRowAddrIterEmptyList(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	it := r.RowAddrIter(fdb.NoEntry)
	if it.Next() {
		t.Errorf("expected no iterations over an empty list")
	}
	if it.Err() != nil {
		t.Errorf("unexpected error: %v", it.Err())
	}
}
