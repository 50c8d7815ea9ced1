// internal/writers/text.go
package writers

import (
	"io"

	"blastn/internal/common"
	"blastn/internal/output"
	"blastn/internal/pretty"
)

func init() {
	Register(output.FormatText, StartTextWriter)
	Register(output.FormatJSON, StartJSONWriter)
}

// StartTextWriter writes TSV rows, streaming unless o.Sort is set. With
// o.Pretty each row is followed by its alignment block.
func StartTextWriter(out io.Writer, o Options, bufSize int) (chan<- common.Hit, <-chan error) {
	var render output.Renderer
	if o.Pretty {
		render = pretty.RenderHit
	}
	return start(bufSize, func(in <-chan common.Hit) error {
		if o.Sort {
			return output.WriteText(out, collect(in, true), o.Header, render)
		}
		return output.StreamText(out, in, o.Header, render)
	})
}

// StartJSONWriter buffers every hit and writes one indented JSON array.
func StartJSONWriter(out io.Writer, o Options, bufSize int) (chan<- common.Hit, <-chan error) {
	return start(bufSize, func(in <-chan common.Hit) error {
		list := collect(in, o.Sort)
		if list == nil {
			list = []common.Hit{}
		}
		return output.WriteJSON(out, list)
	})
}
