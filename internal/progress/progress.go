// Package progress renders a stderr progress bar over aligned
// database/query pairs.
package progress

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Tracker receives pipeline progress. The total grows as database records
// are read, so it is announced incrementally with Add.
type Tracker interface {
	Add(n int)
	Done()
	Finish(ok bool)
}

// Nop discards progress.
type Nop struct{}

func (Nop) Add(int)     {}
func (Nop) Done()       {}
func (Nop) Finish(bool) {}

// Bar is a Tracker backed by an mpb progress bar.
type Bar struct {
	p     *mpb.Progress
	bar   *mpb.Bar
	total int64
}

// NewBar starts a bar rendering to w.
func NewBar(w io.Writer, name string) *Bar {
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))
	bar := p.AddBar(0,
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
			decor.AverageETA(decor.ET_STYLE_GO),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return &Bar{p: p, bar: bar}
}

// Add grows the total by n pairs.
func (b *Bar) Add(n int) {
	b.total += int64(n)
	b.bar.SetTotal(b.total, false)
}

// Done marks one pair finished.
func (b *Bar) Done() { b.bar.Increment() }

// Finish completes the bar (or aborts it when ok is false) and waits for the
// final render.
func (b *Bar) Finish(ok bool) {
	if ok {
		b.bar.SetTotal(-1, true)
	} else {
		b.bar.Abort(false)
	}
	b.p.Wait()
}
