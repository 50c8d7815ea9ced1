// core/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"

	"github.com/pkg/errors"
)

// source is an opened FASTA input. For gzip files both the decompressor
// and the file are closed.
type source struct {
	io.Reader
	gz *gzip.Reader
	fh *os.File
}

func (s *source) Close() error {
	var err error
	if s.gz != nil {
		err = s.gz.Close()
	}
	if s.fh != nil {
		if cerr := s.fh.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader opens path for reading; "-" is stdin. Gzip input is detected
// from its first two bytes (1F 8B), so stdin may be compressed too.
func openReader(path string) (io.ReadCloser, error) {
	s := &source{}
	var raw io.Reader = os.Stdin
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "fasta")
		}
		s.fh, raw = fh, fh
	}
	br := bufio.NewReaderSize(raw, 64<<10)
	magic, _ := br.Peek(2)
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			_ = s.Close()
			return nil, errors.Wrapf(err, "fasta: gzip %s", path)
		}
		s.gz, s.Reader = gz, gz
		return s, nil
	}
	s.Reader = br
	return s, nil
}
