// internal/cmdutil/run.go
package cmdutil

import (
	"context"

	"blastn/internal/common"
	"blastn/internal/pipeline"
	"blastn/internal/visitors"
)

// RunPairs runs the shared pipeline, applies a visitor to each pair, and
// streams the kept hits via send. It returns the number of hits sent and
// the first error encountered.
func RunPairs(
	ctx context.Context,
	cfg pipeline.Config,
	dbFiles []string,
	queries []pipeline.Query,
	al pipeline.Aligner,
	visit visitors.Visitor,
	send func(common.Hit) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachPair(ctx, cfg, dbFiles, queries, al, func(hs []common.Hit) error {
		kept, vErr := visit.Visit(hs)
		if vErr != nil {
			return vErr
		}
		for _, h := range kept {
			if err := send(h); err != nil {
				return err
			}
			total++
		}
		return nil
	})
	return total, err
}
