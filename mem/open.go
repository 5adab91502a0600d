package mem

import (
	"io"
	"os"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/lcdr/fdb"
	"github.com/lcdr/fdb/internal/log"
)

// Options configures how a Database is opened.
type Options struct {
	// A custom logger. Defaults to an error-only stdout logger.
	Logger log.Logger
}

// Database is a complete in-memory read-only view over an FDB image.
// Open holds the image open (mmap'd or slurped); Close releases it.
type Database struct {
	buf    []byte
	data   mmap.MMap
	f      *os.File
	logger *log.Helper
}

func newHelper(opts *Options) *log.Helper {
	if opts != nil && opts.Logger != nil {
		return log.NewHelper(opts.Logger)
	}
	return log.NewNopHelper()
}

// Open wraps the file at name as a Database read-only. Files at least
// one OS page long are memory-mapped; smaller files are slurped into
// an ordinary []byte instead, since mapping a sub-page file buys
// nothing and mmap.Map rejects a zero-length file outright.
func Open(name string, opts *Options) (*Database, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	helper := newHelper(opts)

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	if info.Size() < int64(pageSize()) {
		helper.Debugf("slurping %s (%d bytes, below page size)", name, info.Size())
		buf, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		if len(buf) < fdb.SizeHeader {
			return nil, fdb.ErrShortImage
		}
		return &Database{buf: buf, logger: helper}, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	if len(data) < fdb.SizeHeader {
		data.Unmap()
		f.Close()
		return nil, fdb.ErrShortImage
	}
	return &Database{buf: data, data: data, f: f, logger: helper}, nil
}

// OpenBytes wraps an already-loaded buffer as a Database, for
// in-memory testing or embedding.
func OpenBytes(buf []byte, opts *Options) (*Database, error) {
	if len(buf) < fdb.SizeHeader {
		return nil, fdb.ErrShortImage
	}
	return &Database{buf: buf, logger: newHelper(opts)}, nil
}

// Close unmaps and closes the underlying file, if any.
func (d *Database) Close() error {
	if d.data != nil {
		if err := d.data.Unmap(); err != nil {
			return err
		}
	}
	if d.f != nil {
		return d.f.Close()
	}
	return nil
}

// Bytes returns the Database's underlying buffer.
func (d *Database) Bytes() []byte { return d.buf }
