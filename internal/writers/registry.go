// internal/writers/registry.go
package writers

import (
	"io"
	"sort"

	"github.com/pkg/errors"

	"blastn/internal/common"
)

// Options are the presentation switches shared by all hit writers.
type Options struct {
	Sort   bool // buffer and order hits with common.SortHits
	Header bool // TSV header row (text only)
	Pretty bool // alignment block under each row (text only)
}

// StartFunc spins up a writer goroutine. The returned error channel yields
// exactly one value after the input channel is closed.
type StartFunc func(out io.Writer, o Options, bufSize int) (chan<- common.Hit, <-chan error)

// hitWriters maps an output format to its writer. Formats register
// themselves in init() blocks of their files.
var hitWriters = map[string]StartFunc{}

// Register adds (or replaces) the writer for format.
func Register(format string, fn StartFunc) { hitWriters[format] = fn }

// Known reports whether format has a registered writer.
func Known(format string) bool {
	_, ok := hitWriters[format]
	return ok
}

// Formats lists the registered formats in lexical order.
func Formats() []string {
	out := make([]string, 0, len(hitWriters))
	for f := range hitWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// StartHitWriter dispatches to the writer registered for format.
func StartHitWriter(out io.Writer, format string, o Options, bufSize int) (chan<- common.Hit, <-chan error) {
	if fn, ok := hitWriters[format]; ok {
		return fn(out, o, bufSize)
	}
	return start(bufSize, func(in <-chan common.Hit) error {
		drain(in)
		return errors.Errorf("unknown hit format %q (no writer registered)", format)
	})
}

// start runs body on a goroutine and guarantees in is drained afterwards,
// so senders never block on a writer that failed early.
func start(bufSize int, body func(in <-chan common.Hit) error) (chan<- common.Hit, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan common.Hit, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := body(in)
		drain(in)
		errCh <- err
	}()
	return in, errCh
}

func drain(in <-chan common.Hit) {
	for range in {
	}
}

func collect(in <-chan common.Hit, sort bool) []common.Hit {
	var buf []common.Hit
	for h := range in {
		buf = append(buf, h)
	}
	if sort {
		common.SortHits(buf)
	}
	return buf
}
