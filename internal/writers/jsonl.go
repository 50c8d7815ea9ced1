// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"blastn/internal/common"
	"blastn/internal/output"
)

func init() { Register(output.FormatJSONL, StartJSONLWriter) }

// 64 KiB buffered writers reused across JSONL runs.
var lineBufs = sync.Pool{
	New: func() any { return bufio.NewWriterSize(io.Discard, 64<<10) },
}

// StartJSONLWriter streams each hit as one JSON line (v1). With o.Sort the
// hits are buffered and ordered first. A broken pipe ends the output
// quietly.
func StartJSONLWriter(out io.Writer, o Options, bufSize int) (chan<- common.Hit, <-chan error) {
	return start(bufSize, func(in <-chan common.Hit) error {
		bw := lineBufs.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			lineBufs.Put(bw)
		}()

		err := encodeLines(json.NewEncoder(bw), in, o.Sort)
		if err == nil {
			err = bw.Flush()
		}
		if IsBrokenPipe(err) {
			return nil
		}
		return err
	})
}

func encodeLines(enc *json.Encoder, in <-chan common.Hit, sorted bool) error {
	if sorted {
		for _, h := range collect(in, true) {
			if err := output.EncodeHitLine(enc, h); err != nil {
				return err
			}
		}
		return nil
	}
	for h := range in {
		if err := output.EncodeHitLine(enc, h); err != nil {
			return err
		}
	}
	return nil
}
