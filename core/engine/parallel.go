// core/engine/parallel.go
package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"blastn-core/seq"
)

// blockSize is the number of seeds one worker extends between context checks.
const blockSize = 256

// ExtendSeeds extends every seed with the default scoring, one record per
// seed in seed order.
func ExtendSeeds(seeds []Seed, db, query seq.Sequence) []Record {
	out, _ := ExtendSeedsCtx(context.Background(), NewXDrop(DefaultScoring()), seeds, db, query, 1)
	return out
}

// ExtendSeedsCtx extends seeds with ext on up to workers goroutines.
//
// Each seed writes only its own slot, so records keep seed order whatever the
// scheduling. If ctx is cancelled the partial output is dropped and ctx.Err()
// is returned.
func ExtendSeedsCtx(ctx context.Context, ext Extender, seeds []Seed, db, query seq.Sequence, workers int) ([]Record, error) {
	if len(seeds) == 0 {
		return nil, ctx.Err()
	}
	out := make([]Record, len(seeds))
	if workers <= 1 || len(seeds) <= blockSize {
		for lo := 0; lo < len(seeds); lo += blockSize {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			extendBlock(ext, seeds, out, lo, min(lo+blockSize, len(seeds)), db, query)
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < len(seeds); lo += blockSize {
		lo, hi := lo, min(lo+blockSize, len(seeds))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			extendBlock(ext, seeds, out, lo, hi, db, query)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func extendBlock(ext Extender, seeds []Seed, out []Record, lo, hi int, db, query seq.Sequence) {
	for i := lo; i < hi; i++ {
		out[i] = ext.Extend(seeds[i], db, query)
	}
}
