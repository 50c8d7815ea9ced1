// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"blastn-core/index"
	"blastn-core/seq"
	"blastn/internal/cmdutil"
	"blastn/internal/common"
	"blastn/internal/pipeline"
	"blastn/internal/progress"
	"blastn/internal/runutil"
	"blastn/internal/visitors"
	"blastn/internal/writers"
)

// Exit codes shared by all commands.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

// Options are the run-level settings of an align run.
type Options struct {
	DBFiles    []string
	QueryFiles []string
	Threads    int

	Quiet           bool
	Verbose         bool
	Progress        bool
	NoMatchExitCode int
}

// WriterFactory starts the output goroutine.
type WriterFactory interface {
	NeedSeq() bool
	Streaming() bool
	Start(out io.Writer, bufSize int) (chan<- common.Hit, <-chan error)
}

// bufferedWriterQueue is the input queue of a writer that holds every hit
// until the run ends; it only collects, so a deep queue keeps the workers
// from waiting on it.
const bufferedWriterQueue = 4096

// writerQueue sizes the writer's input channel. Streaming writers do I/O per
// hit, so their queue follows the worker count.
func writerQueue(wf WriterFactory, threads int) int {
	if wf.Streaming() {
		return threads * 4
	}
	return bufferedWriterQueue
}

// Run aligns every query against every database record, filters each pair
// with visit and writes the kept hits. It returns the process exit code.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	al pipeline.Aligner,
	visit visitors.Visitor,
	wf WriterFactory,
) int {
	outw := bufio.NewWriter(stdout)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	queries, err := pipeline.LoadQueries(ctx, o.QueryFiles)
	if err != nil {
		return Fail(stderr, err)
	}
	if len(queries) == 0 {
		cmdutil.Warnf(stderr, o.Quiet, "no query records in %v", o.QueryFiles)
	}
	bases := 0
	for _, q := range queries {
		bases += len(q.Seq)
	}
	cmdutil.Infof(stderr, o.Verbose, "loaded %s queries (%s bases)", cmdutil.Count(len(queries)), cmdutil.Count(bases))

	thr := runutil.EffectiveThreads(o.Threads)

	var tracker progress.Tracker = progress.Nop{}
	if o.Progress && !o.Quiet {
		tracker = progress.NewBar(stderr, "pairs:")
	}

	if !wf.Streaming() {
		cmdutil.Infof(stderr, o.Verbose, "output is held until every pair is aligned")
	}
	inCh, writeErr := wf.Start(outw, writerQueue(wf, thr))

	total, perr := cmdutil.RunPairs(
		ctx,
		pipeline.Config{
			Threads:  thr,
			NeedSeq:  wf.NeedSeq(),
			Progress: tracker,
			OnIndex:  indexLogger(stderr, o),
		},
		o.DBFiles,
		queries,
		al,
		visit,
		func(h common.Hit) error {
			select {
			case inCh <- h:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)
	tracker.Finish(perr == nil)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, "error:", werr)
		return ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, "error:", e)
		return ExitRuntime
	}

	if perr != nil {
		return Fail(stderr, perr)
	}
	cmdutil.Infof(stderr, o.Verbose, "wrote %s alignments", cmdutil.Count(total))
	if total == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}

func indexLogger(stderr io.Writer, o Options) func(pipeline.IndexInfo) {
	return func(ii pipeline.IndexInfo) {
		if ii.Stats.Truncated > 0 {
			cmdutil.Warnf(stderr, o.Quiet, "%s: record %q: %s k-mer occurrences dropped by the bucket capacity",
				ii.SourceFile, ii.DatabaseID, cmdutil.Count(ii.Stats.Truncated))
		}
		cmdutil.Infof(stderr, o.Verbose, "indexed %q: %s bases, %s nodes, longest chain %d",
			ii.DatabaseID, cmdutil.Count(ii.Length), cmdutil.Count(ii.Stats.Nodes), ii.Stats.LongestChain)
	}
}

// Fail reports err on stderr (unless it is a cancellation) and returns its
// exit code.
func Fail(stderr io.Writer, err error) int {
	code := ExitCode(err)
	if code != ExitCanceled {
		fmt.Fprintln(stderr, "error:", err)
	}
	return code
}

// ExitCode maps a run error to the process exit code: bad input or
// parameters are usage errors, cancellation is 130, the rest are runtime.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case errors.Is(err, seq.ErrInvalidSymbol),
		errors.Is(err, index.ErrInvalidParams),
		errors.Is(err, os.ErrNotExist):
		return ExitUsage
	default:
		return ExitRuntime
	}
}
