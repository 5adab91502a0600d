// Command fdbctl inspects and converts FDB database files.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lcdr/fdb"
	"github.com/lcdr/fdb/internal/log"
	"github.com/lcdr/fdb/mem"
	"github.com/lcdr/fdb/sqlexport"
)

var (
	verbose     bool
	withColumns bool
	withRows    bool
)

type tableSummary struct {
	Name        string         `json:"name"`
	ColumnCount int            `json:"column_count,omitempty"`
	Columns     []columnInfo   `json:"columns,omitempty"`
	BucketCount int            `json:"bucket_count,omitempty"`
	Rows        []map[string]any `json:"rows,omitempty"`
}

type columnInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func dumpDatabase(path string) error {
	db, err := mem.Open(path, &mem.Options{Logger: cliLogger()})
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer db.Close()

	tables, err := db.Tables()
	if err != nil {
		return fmt.Errorf("reading table directory: %w", err)
	}

	var summaries []tableSummary
	it := tables.Iter()
	for it.Next() {
		table := it.Table()
		s := tableSummary{Name: table.Name(), ColumnCount: table.ColumnCount(), BucketCount: table.BucketCount()}

		if withColumns {
			colIter := table.ColumnIter()
			for colIter.Next() {
				c := colIter.Column()
				s.Columns = append(s.Columns, columnInfo{Name: c.Name(), Type: c.ValueType().String()})
			}
			if err := colIter.Err(); err != nil {
				return err
			}
		}

		if withRows {
			var names []string
			colIter := table.ColumnIter()
			for colIter.Next() {
				names = append(names, colIter.Column().Name())
			}
			rowIter := table.RowIter()
			for rowIter.Next() {
				row := make(map[string]any)
				fieldIter := rowIter.Row().FieldIter()
				i := 0
				for fieldIter.Next() {
					f := fieldIter.Field()
					var name string
					if i < len(names) {
						name = names[i]
					} else {
						name = fmt.Sprintf("field%d", i)
					}
					row[name] = fieldToJSON(f)
					i++
				}
				if err := fieldIter.Err(); err != nil {
					return err
				}
				s.Rows = append(s.Rows, row)
			}
			if err := rowIter.Err(); err != nil {
				return err
			}
		}

		summaries = append(summaries, s)
	}
	if err := it.Err(); err != nil {
		return err
	}

	out, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func fieldToJSON(f mem.Field) any {
	switch f.Type {
	case fdb.ValueNothing:
		return nil
	case fdb.ValueInteger:
		return f.Int32
	case fdb.ValueFloat:
		return f.Float32
	case fdb.ValueText, fdb.ValueVarChar:
		return mem.ToOwnedValue(f).Text
	case fdb.ValueBoolean:
		return f.Bool
	case fdb.ValueBigInt:
		return f.Int64
	default:
		return nil
	}
}

func cliLogger() log.Logger {
	minLevel := log.LevelError
	if verbose {
		minLevel = log.LevelDebug
	}
	return log.NewFilter(log.NewStdLogger(os.Stderr), log.FilterLevel(minLevel))
}

func exportDatabase(src, dst string) error {
	db, err := mem.Open(src, &mem.Options{Logger: cliLogger()})
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer db.Close()

	conn, err := sqlexport.OpenSQLite(dst)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dst, err)
	}
	defer conn.Close()

	return sqlexport.Export(context.Background(), conn, db, &sqlexport.Options{Logger: cliLogger()})
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "fdbctl",
		Short: "A FDB database file inspector and converter",
		Long:  "fdbctl reads and converts the hash-bucketed binary table format used by LEGO Universe's client database.",
	}

	var dumpCmd = &cobra.Command{
		Use:   "dump [file]",
		Short: "Dumps a database's table directory as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpDatabase(args[0])
		},
	}

	var exportCmd = &cobra.Command{
		Use:   "export [src.fdb] [dst.sqlite]",
		Short: "Exports a database to a SQLite file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportDatabase(args[0], args[1])
		},
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("fdbctl 0.1.0")
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	dumpCmd.Flags().BoolVarP(&withColumns, "columns", "c", false, "include column definitions")
	dumpCmd.Flags().BoolVarP(&withRows, "rows", "r", false, "include row data")

	rootCmd.AddCommand(dumpCmd, exportCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
