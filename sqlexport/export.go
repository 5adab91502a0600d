package sqlexport

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lcdr/fdb"
	"github.com/lcdr/fdb/internal/log"
	"github.com/lcdr/fdb/mem"
)

// OpenSQLite opens (creating if necessary) a SQLite database file at
// path through the mattn/go-sqlite3 driver.
func OpenSQLite(path string) (*sql.DB, error) {
	return sql.Open("sqlite3", path)
}

// Options configures Export.
type Options struct {
	// A custom logger. Defaults to an error-only stdout logger.
	Logger log.Logger

	// Strict emits plain CREATE TABLE statements, which fail if the
	// table already exists, instead of CREATE TABLE IF NOT EXISTS.
	// Defaults to false (lenient, matching a fresh or reused output
	// file).
	Strict bool

	// UnquotedIdentifiers emits table and column names as bare SQL
	// identifiers instead of bracket-quoted ([name]) ones. Defaults to
	// false (quoted), since FDB table/column names may contain
	// characters (spaces, punctuation) that are not valid in a bare
	// identifier.
	UnquotedIdentifiers bool
}

func (o *Options) quote(name string) string {
	if o != nil && o.UnquotedIdentifiers {
		return name
	}
	return fmt.Sprintf("[%s]", name)
}

func (o *Options) createTableClause() string {
	if o != nil && o.Strict {
		return "CREATE TABLE"
	}
	return "CREATE TABLE IF NOT EXISTS"
}

// Export copies every table and row of database into conn: BEGIN, then
// for each table CREATE TABLE IF NOT EXISTS and a prepared INSERT run
// once per row, then COMMIT. The whole export rolls back on the first
// error, mirroring try_export_db's all-or-nothing transaction.
func Export(ctx context.Context, conn *sql.DB, database *mem.Database, opts *Options) error {
	helper := newHelper(opts)

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	tables, err := database.Tables()
	if err != nil {
		return err
	}

	tableIter := tables.Iter()
	for tableIter.Next() {
		table := tableIter.Table()
		if err := exportTable(ctx, tx, table, opts, helper); err != nil {
			return fmt.Errorf("fdb: exporting table %q: %w", table.Name(), err)
		}
	}
	if err := tableIter.Err(); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func exportTable(ctx context.Context, tx *sql.Tx, table mem.Table, opts *Options, helper *log.Helper) error {
	columnCount := table.ColumnCount()
	columnNames := make([]string, columnCount)
	columnDecls := make([]string, columnCount)

	colIter := table.ColumnIter()
	i := 0
	for colIter.Next() {
		col := colIter.Column()
		columnNames[i] = col.Name()
		columnDecls[i] = fmt.Sprintf("%s %s", opts.quote(col.Name()), col.ValueType().ToSQLiteType())
		i++
	}
	if err := colIter.Err(); err != nil {
		return err
	}

	createQuery := fmt.Sprintf("%s %s\n(\n    %s\n);",
		opts.createTableClause(), opts.quote(table.Name()), strings.Join(columnDecls, ",\n    "))
	helper.Debugf("creating table %q", table.Name())
	if _, err := tx.ExecContext(ctx, createQuery); err != nil {
		return err
	}

	placeholders := make([]string, columnCount)
	quotedNames := make([]string, columnCount)
	for i, name := range columnNames {
		placeholders[i] = fmt.Sprintf("?%d", i+1)
		quotedNames[i] = opts.quote(name)
	}
	insertQuery := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		opts.quote(table.Name()), strings.Join(quotedNames, ", "), strings.Join(placeholders, ", "))

	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		return err
	}
	defer stmt.Close()

	rowIter := table.RowIter()
	rowCount := 0
	for rowIter.Next() {
		row := rowIter.Row()
		args := make([]any, row.FieldCount())
		fieldIter := row.FieldIter()
		j := 0
		for fieldIter.Next() {
			v, err := toSQLValue(fieldIter.Field())
			if err != nil {
				return err
			}
			args[j] = v
			j++
		}
		if err := fieldIter.Err(); err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return err
		}
		rowCount++
	}
	if err := rowIter.Err(); err != nil {
		return err
	}
	helper.Debugf("exported %d rows into table %q", rowCount, table.Name())
	return nil
}

// toSQLValue converts a field to the value database/sql expects as a
// query argument.
func toSQLValue(f mem.Field) (any, error) {
	switch f.Type {
	case fdb.ValueNothing:
		return nil, nil
	case fdb.ValueInteger:
		return int64(f.Int32), nil
	case fdb.ValueFloat:
		return float64(f.Float32), nil
	case fdb.ValueText, fdb.ValueVarChar:
		return mem.ToOwnedValue(f).Text, nil
	case fdb.ValueBoolean:
		if f.Bool {
			return int64(1), nil
		}
		return int64(0), nil
	case fdb.ValueBigInt:
		return f.Int64, nil
	default:
		return nil, &fdb.UnknownValueTypeError{Code: uint32(f.Type)}
	}
}

func newHelper(opts *Options) *log.Helper {
	if opts != nil && opts.Logger != nil {
		return log.NewHelper(opts.Logger)
	}
	return log.NewNopHelper()
}
