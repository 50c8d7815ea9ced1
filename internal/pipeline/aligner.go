// internal/pipeline/aligner.go
package pipeline

import (
	"context"

	"blastn-core/engine"
	"blastn-core/index"
	"blastn-core/seq"
)

// Aligner is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Aligner interface {
	BuildIndex(db seq.Sequence) (*index.Index, error)
	Align(ctx context.Context, ix *index.Index, db, query seq.Sequence) ([]engine.Record, error)
}
