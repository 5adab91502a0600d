// Package mem is a zero-copy memory view of an FDB image: a Database
// is a thin handle over a byte slice (normally a memory-mapped file),
// and every Table, Column, Bucket, Row and Field is decoded lazily and
// on demand, without allocation or a parse pass over the whole image.
// Every value borrowed from a Database is only valid as long as that
// Database stays open; nothing in this package copies the underlying
// buffer.
package mem
