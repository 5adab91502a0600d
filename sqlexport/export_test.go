package sqlexport

import (
	"context"
	"testing"

	"github.com/lcdr/fdb"
	"github.com/lcdr/fdb/mem"
	"github.com/lcdr/fdb/store"
)

func buildTestDatabase(t *testing.T) *mem.Database {
	t.Helper()
	table := store.NewTable(2)
	if err := table.PushColumn("ID", fdb.ValueInteger); err != nil {
		t.Fatalf("PushColumn: %v", err)
	}
	if err := table.PushColumn("displayName", fdb.ValueText); err != nil {
		t.Fatalf("PushColumn: %v", err)
	}
	if err := table.PushRow(1, []fdb.Value[string]{
		fdb.IntegerValue[string](1),
		fdb.TextValue[string]("Avant Gardens"),
	}); err != nil {
		t.Fatalf("PushRow: %v", err)
	}

	db := store.NewDatabase()
	if err := db.PushTable("Zones", table); err != nil {
		t.Fatalf("PushTable: %v", err)
	}

	buf := &byteBuffer{}
	if err := db.Write(buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out, err := mem.OpenBytes(buf.data, nil)
	if err != nil {
		t.Fatalf("OpenBytes: %v", err)
	}
	return out
}

type byteBuffer struct{ data []byte }

func (b *byteBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func TestExportCreatesTableAndRows(t *testing.T) {
	database := buildTestDatabase(t)

	conn, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer conn.Close()

	if err := Export(context.Background(), conn, database, nil); err != nil {
		t.Fatalf("Export: %v", err)
	}

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM "Zones"`).Scan(&count); err != nil {
		t.Fatalf("count query: %v", err)
	}
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}

	var id int64
	var name string
	if err := conn.QueryRow(`SELECT [ID], [displayName] FROM "Zones"`).Scan(&id, &name); err != nil {
		t.Fatalf("select query: %v", err)
	}
	if id != 1 || name != "Avant Gardens" {
		t.Errorf("row = (%d, %q), want (1, \"Avant Gardens\")", id, name)
	}
}

func TestExportRollsBackOnTableFailure(t *testing.T) {
	database := buildTestDatabase(t)

	conn, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer conn.Close()

	// Sabotage the connection so the export transaction cannot proceed.
	conn.SetMaxOpenConns(1)
	if _, err := conn.Exec(`PRAGMA query_only = ON;`); err != nil {
		t.Fatalf("PRAGMA: %v", err)
	}

	if err := Export(context.Background(), conn, database, nil); err == nil {
		t.Errorf("expected Export to fail against a read-only connection")
	}

	var exists int
	err = conn.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='Zones'`).Scan(&exists)
	if err != nil {
		t.Fatalf("sqlite_master query: %v", err)
	}
	if exists != 0 {
		t.Errorf("expected failed export to leave no table behind, found %d", exists)
	}
}
