// Package sqlexport copies a mem.Database into a SQL connection, one
// CREATE TABLE IF NOT EXISTS plus one prepared INSERT per table, inside
// a single transaction.
package sqlexport
