// Package stream is a seekable-reader view: every record is fetched
// with a Seek+Read pair and parsed fresh on each call, trading the
// memory view's zero-copy speed for the ability to work against any
// io.ReadSeeker (a plain *os.File, a network-backed reader, anything
// that isn't mapped into memory).
package stream
