//go:build unix

package mem

import "golang.org/x/sys/unix"

// pageSize reports the OS page size, used by Open to decide whether a
// file is worth memory-mapping at all.
func pageSize() int { return unix.Getpagesize() }
