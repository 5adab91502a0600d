// Package fdb implements the FDB storage engine: a read-mostly,
// hash-bucketed, offset-linked binary table store.
//
// A complete FDB image is a single little-endian byte buffer laid out as
// a file header, a directory of tables sorted by name, and per-table
// column metadata, hash buckets, singly-linked row lists and field cells.
// This package holds the pieces shared by all three ways of working with
// that layout:
//
//   - github.com/lcdr/fdb/mem gives O(1) zero-copy navigation over a
//     borrowed byte buffer or memory map.
//   - github.com/lcdr/fdb/stream gives seekable, allocate-per-call
//     navigation for byte sources that cannot be borrowed as a slice.
//   - github.com/lcdr/fdb/store builds a new database in memory and
//     serializes it in a single pass.
package fdb
