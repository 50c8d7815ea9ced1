package appcore

import (
	"io"

	"blastn/internal/common"
	"blastn/internal/output"
	"blastn/internal/writers"
)

// HitWriterFactory starts the writer selected by --output/--sort/
// --no-header/--pretty.
type HitWriterFactory struct {
	Format string
	Sort   bool
	Header bool
	Pretty bool
}

func NewHitWriterFactory(format string, sort, header, pretty bool) HitWriterFactory {
	return HitWriterFactory{Format: format, Sort: sort, Header: header, Pretty: pretty}
}

// NeedSeq reports whether hits must carry their aligned segments.
func (w HitWriterFactory) NeedSeq() bool {
	return w.Pretty && w.Format == output.FormatText
}

// Streaming reports whether hits reach the output as they are produced
// rather than after the run.
func (w HitWriterFactory) Streaming() bool {
	return !w.Sort && w.Format != output.FormatJSON
}

func (w HitWriterFactory) Start(out io.Writer, bufSize int) (chan<- common.Hit, <-chan error) {
	return writers.StartHitWriter(out, w.Format, writers.Options{Sort: w.Sort, Header: w.Header, Pretty: w.Pretty}, bufSize)
}
