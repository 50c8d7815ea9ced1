// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"blastn-core/engine"
	"blastn-core/fasta"
	"blastn-core/index"
	"blastn-core/seq"
	"blastn/internal/common"
	"blastn/internal/progress"
)

// Config controls the alignment pipeline.
type Config struct {
	Threads  int              // number of worker goroutines (>=1)
	NeedSeq  bool             // fill Hit.QuerySeq/DataSeq with the aligned segments
	Progress progress.Tracker // nil = no progress
	OnIndex  func(IndexInfo)  // called after each database record is indexed
}

// IndexInfo describes one indexed database record.
type IndexInfo struct {
	SourceFile string
	DatabaseID string
	Length     int
	Stats      index.Stats
}

// Query is a validated query record.
type Query struct {
	SourceFile string
	ID         string
	Seq        seq.Sequence
}

// LoadQueries reads and validates every record of the query files.
func LoadQueries(ctx context.Context, files []string) ([]Query, error) {
	var out []Query
	for _, fn := range files {
		recs, err := fasta.ReadAll(ctx, fn)
		if err != nil {
			return nil, err
		}
		for _, r := range recs {
			s, err := r.Symbols()
			if err != nil {
				return nil, errors.Wrapf(err, "%s: query %q", fn, r.ID)
			}
			out = append(out, Query{SourceFile: fn, ID: r.ID, Seq: s})
		}
	}
	return out, nil
}

type database struct {
	file, id string
	seq      seq.Sequence
	ix       *index.Index
}

type job struct {
	n  int
	db *database
	q  *Query
}

type result struct {
	n    int
	hits []common.Hit
	err  error
}

// ForEachPair streams the database files, indexes each record, aligns every
// query against it and calls visit once per (database record, query) pair
// that produced records, in database-then-query order.
// It returns the first error encountered (including context cancellation).
func ForEachPair(
	parent context.Context,
	cfg Config,
	dbFiles []string,
	queries []Query,
	al Aligner,
	visit func([]common.Hit) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	tracker := cfg.Progress
	if tracker == nil {
		tracker = progress.Nop{}
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					r := result{n: j.n}
					recs, err := al.Align(ctx, j.db.ix, j.db.seq, j.q.Seq)
					if err != nil {
						r.err = errors.Wrapf(err, "align %q against %q", j.q.ID, j.db.id)
					} else {
						r.hits = toHits(j.db, j.q, recs, cfg.NeedSeq)
					}
					select {
					case results <- r:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: re-orders by job sequence before visiting.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int][]common.Hit)
		next := 0
		for r := range results {
			tracker.Done()
			if cerr != nil {
				continue
			}
			if r.err != nil {
				cerr = r.err
				cancel()
				continue
			}
			pending[r.n] = r.hits
			for {
				hs, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if len(hs) == 0 {
					continue
				}
				if err := visit(hs); err != nil {
					cerr = err
					cancel()
					break
				}
			}
		}
	}()

	// Feed work
	ferr := feed(ctx, cfg, tracker, dbFiles, queries, al, jobs)
	if ferr != nil {
		cancel()
	}
	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if err := parent.Err(); err != nil {
		return err
	}
	return firstReal(ferr, cerr)
}

func feed(ctx context.Context, cfg Config, tracker progress.Tracker, dbFiles []string, queries []Query, al Aligner, jobs chan<- job) error {
	n := 0
	for _, fn := range dbFiles {
		if err := feedFile(ctx, cfg, tracker, fn, queries, al, jobs, &n); err != nil {
			return err
		}
	}
	return nil
}

// feedFile indexes each record of one database file as the reader
// goroutine delivers it and queues one job per query.
func feedFile(ctx context.Context, cfg Config, tracker progress.Tracker, fn string, queries []Query, al Aligner, jobs chan<- job, n *int) error {
	fctx, stop := context.WithCancel(ctx)
	defer stop()
	recs, scanErr, err := fasta.StreamCtxPath(fctx, fn)
	if err != nil {
		return err
	}
	for rec := range recs {
		if err := dispatch(ctx, cfg, tracker, fn, rec, queries, al, jobs, n); err != nil {
			stop()
			for range recs {
			}
			<-scanErr
			return err
		}
	}
	return <-scanErr
}

func dispatch(ctx context.Context, cfg Config, tracker progress.Tracker, fn string, rec fasta.Record, queries []Query, al Aligner, jobs chan<- job, n *int) error {
	s, err := rec.Symbols()
	if err != nil {
		return errors.Wrapf(err, "%s: database record %q", fn, rec.ID)
	}
	ix, err := al.BuildIndex(s)
	if err != nil {
		return errors.Wrapf(err, "%s: database record %q", fn, rec.ID)
	}
	db := &database{file: fn, id: rec.ID, seq: s, ix: ix}
	if cfg.OnIndex != nil {
		cfg.OnIndex(IndexInfo{SourceFile: fn, DatabaseID: rec.ID, Length: len(s), Stats: ix.Stats()})
	}
	tracker.Add(len(queries))
	for i := range queries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case jobs <- job{n: *n, db: db, q: &queries[i]}:
			*n++
		}
	}
	return nil
}

// firstReal prefers an error that is not the cancellation it caused.
func firstReal(errs ...error) error {
	var canceled error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) {
			if canceled == nil {
				canceled = err
			}
			continue
		}
		return err
	}
	return canceled
}

func toHits(db *database, q *Query, recs []engine.Record, needSeq bool) []common.Hit {
	out := make([]common.Hit, len(recs))
	for i, r := range recs {
		out[i] = common.Hit{
			SourceFile: db.file,
			DatabaseID: db.id,
			QueryID:    q.ID,
			Record:     r,
			Identity:   engine.Identity(r, db.seq, q.Seq),
		}
		if needSeq {
			out[i].QuerySeq = q.Seq[r.QueryStart : r.QueryEnd+1].String()
			out[i].DataSeq = db.seq[r.DataStart : r.DataEnd+1].String()
		}
	}
	return out
}
