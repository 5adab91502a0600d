// Package store is an arena-building write path: a Database is
// assembled in memory table by table, row by row, with every
// TEXT/VARCHAR string and every BigInt value interned into an arena as
// it is pushed, and the whole tree is serialized to its final on-disk
// byte layout only once, in a single Write call.
package store
