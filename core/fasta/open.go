// core/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// gzip magic number, RFC 1952.
var gzipMagic = [2]byte{0x1f, 0x8b}

// multiReadCloser pairs a decorated reader with the closers behind it.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader opens path for reading, with "-" meaning stdin. Gzip input is
// recognized by a .gz suffix or by peeking at the magic number, so renamed
// compressed files still decode.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(fh)
	if !strings.HasSuffix(path, ".gz") {
		sig, _ := br.Peek(len(gzipMagic))
		if len(sig) < len(gzipMagic) || sig[0] != gzipMagic[0] || sig[1] != gzipMagic[1] {
			return &multiReadCloser{Reader: br, closers: []io.Closer{fh}}, nil
		}
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
}
