package appcore

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"blastn/internal/common"
	"blastn/internal/output"
	"blastn/internal/visitors"
)

var _ WriterFactory = HitWriterFactory{}

func TestHitWriterFactory_Streaming(t *testing.T) {
	cases := []struct {
		format string
		sort   bool
		want   bool
	}{
		{output.FormatText, false, true},
		{output.FormatJSONL, false, true},
		{output.FormatText, true, false},
		{output.FormatJSON, false, false},
	}
	for _, c := range cases {
		if got := NewHitWriterFactory(c.format, c.sort, true, false).Streaming(); got != c.want {
			t.Errorf("%s sort=%v: streaming=%v want %v", c.format, c.sort, got, c.want)
		}
	}
}

func TestHitWriterFactory_HeaderOnEmptyRun(t *testing.T) {
	var b bytes.Buffer
	in, done := NewHitWriterFactory(output.FormatText, false, true, false).Start(&b, 4)
	close(in)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if b.String() != output.TSVHeader+"\n" {
		t.Fatalf("got %q", b.String())
	}
}

// sizedFactory records the queue size Run asks for.
type sizedFactory struct {
	HitWriterFactory
	bufSize *int
}

func (f sizedFactory) Start(out io.Writer, bufSize int) (chan<- common.Hit, <-chan error) {
	*f.bufSize = bufSize
	return f.HitWriterFactory.Start(out, bufSize)
}

func TestRunSizesWriterQueueByStreaming(t *testing.T) {
	db := fixture(t, "db.fa", ">d\nGACTGACATAC\n")
	q := fixture(t, "q.fa", ">r\nAGCTGAC\n")
	cases := []struct {
		wf       HitWriterFactory
		want     int
		heldNote bool
	}{
		{NewHitWriterFactory(output.FormatText, false, true, false), 2 * 4, false},
		{NewHitWriterFactory(output.FormatText, true, true, false), bufferedWriterQueue, true},
		{NewHitWriterFactory(output.FormatJSON, false, true, false), bufferedWriterQueue, true},
	}
	for _, c := range cases {
		var got int
		var out, errb bytes.Buffer
		o := Options{DBFiles: []string{db}, QueryFiles: []string{q}, Threads: 2, Verbose: true}
		if code := Run(context.Background(), &out, &errb, o, newEngine(t), visitors.PassThrough{}, sizedFactory{c.wf, &got}); code != ExitOK {
			t.Fatalf("%+v: exit %d: %s", c.wf, code, errb.String())
		}
		if got != c.want {
			t.Errorf("%+v: queue=%d want %d", c.wf, got, c.want)
		}
		if held := strings.Contains(errb.String(), "output is held"); held != c.heldNote {
			t.Errorf("%+v: held note=%v, stderr=%q", c.wf, held, errb.String())
		}
	}
}
