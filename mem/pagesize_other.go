//go:build !unix

package mem

// pageSize falls back to the common 4 KiB page size on platforms
// without golang.org/x/sys/unix's Getpagesize.
func pageSize() int { return 4096 }
