// core/fasta/reader.go
package fasta

import (
	"context"

	"github.com/pkg/errors"

	"blastn-core/seq"
)

// Record is one parsed FASTA entry with its raw sequence letters.
type Record struct {
	ID  string
	Seq []byte
}

// Symbols validates the record letters and converts them to a Sequence.
func (r Record) Symbols() (seq.Sequence, error) {
	s, err := seq.Parse(r.Seq)
	if err != nil {
		return nil, errors.Wrapf(err, "record %q", r.ID)
	}
	return s, nil
}

// StreamPath opens path (gzip and "-" for stdin supported) and streams its
// records to emit.
func StreamPath(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	if err := StreamCtx(ctx, rc, emit); err != nil {
		return errors.Wrapf(err, "%s", path)
	}
	return nil
}

// ReadAll loads every record of path.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	var out []Record
	err := StreamPath(ctx, path, func(r Record) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StreamCtxPath is the channel wrapper around StreamPath.
// Open errors are reported immediately (except for stdin); errors during the
// scan are delivered on the returned error channel after the records channel
// closes.
func StreamCtxPath(ctx context.Context, path string) (<-chan Record, <-chan error, error) {
	if path != "-" {
		rc, err := openReader(path)
		if err != nil {
			return nil, nil, err
		}
		_ = rc.Close()
	}

	out := make(chan Record, 8)
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		defer close(out)
		errCh <- StreamPath(ctx, path, func(r Record) error {
			select {
			case out <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	return out, errCh, nil
}
