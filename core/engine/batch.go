// core/engine/batch.go
package engine

import (
	"context"

	"github.com/pkg/errors"

	"blastn-core/packed"
	"blastn-core/seq"
)

// Batch is the array form of a seed run used by offload-style extenders:
// four parallel slices indexed by seed. On input Length holds the seed
// length and Score the seed score; on output they describe the alignment.
type Batch struct {
	QueryPos []int
	DataPos  []int
	Length   []int
	Score    []int
}

// NewBatch lays seeds out as a Batch.
func NewBatch(seeds []Seed, sc Scoring) Batch {
	b := Batch{
		QueryPos: make([]int, len(seeds)),
		DataPos:  make([]int, len(seeds)),
		Length:   make([]int, len(seeds)),
		Score:    make([]int, len(seeds)),
	}
	for i, s := range seeds {
		b.QueryPos[i] = s.QueryPos
		b.DataPos[i] = s.DataPos
		b.Length[i] = s.K()
		b.Score[i] = s.K() * sc.Match
	}
	return b
}

// Len returns the number of entries.
func (b Batch) Len() int { return len(b.QueryPos) }

func (b Batch) check() error {
	n := len(b.QueryPos)
	if len(b.DataPos) != n || len(b.Length) != n || len(b.Score) != n {
		return errors.Errorf("batch: ragged arrays (%d/%d/%d/%d)", n, len(b.DataPos), len(b.Length), len(b.Score))
	}
	return nil
}

// Records converts an extended Batch back to alignment records.
func (b Batch) Records() []Record {
	out := make([]Record, b.Len())
	for i := range out {
		out[i] = Record{
			QueryStart: b.QueryPos[i],
			QueryEnd:   b.QueryPos[i] + b.Length[i] - 1,
			DataStart:  b.DataPos[i],
			DataEnd:    b.DataPos[i] + b.Length[i] - 1,
			Score:      b.Score[i],
		}
	}
	return out
}

// BatchExtender extends a whole Batch against 2-bit packed sequences and
// returns the extended arrays in the same seed order.
type BatchExtender interface {
	ExtendBatch(ctx context.Context, in Batch, db, query packed.Words) (Batch, error)
}

// PackedExtender is the portable BatchExtender. It reads symbols straight
// from the packed words and yields the same records as XDrop.
type PackedExtender struct {
	Scoring Scoring
}

func (p PackedExtender) ExtendBatch(ctx context.Context, in Batch, db, query packed.Words) (Batch, error) {
	if err := in.check(); err != nil {
		return Batch{}, err
	}
	if err := db.Validate(); err != nil {
		return Batch{}, errors.Wrap(err, "database")
	}
	if err := query.Validate(); err != nil {
		return Batch{}, errors.Wrap(err, "query")
	}
	out := Batch{
		QueryPos: make([]int, in.Len()),
		DataPos:  make([]int, in.Len()),
		Length:   make([]int, in.Len()),
		Score:    make([]int, in.Len()),
	}
	same := func(q, d int) bool { return query.At(q) == db.At(d) }
	for i := 0; i < in.Len(); i++ {
		if i%blockSize == 0 {
			if err := ctx.Err(); err != nil {
				return Batch{}, err
			}
		}
		qp, dp, k := in.QueryPos[i], in.DataPos[i], in.Length[i]
		if k < 1 || qp < 0 || dp < 0 || qp+k > query.Len() || dp+k > db.Len() {
			return Batch{}, errors.Errorf("batch: entry %d (q=%d d=%d len=%d) out of range", i, qp, dp, k)
		}
		r := ExtendAt(p.Scoring, qp, dp, k, query.Len(), db.Len(), same)
		out.QueryPos[i] = r.QueryStart
		out.DataPos[i] = r.DataStart
		out.Length[i] = r.Length()
		out.Score[i] = r.Score
	}
	return out, nil
}

// ExtendSeedsBatch runs seeds through a BatchExtender, packing db and query
// first, and converts the result to records.
func ExtendSeedsBatch(ctx context.Context, be BatchExtender, sc Scoring, seeds []Seed, db, query seq.Sequence) ([]Record, error) {
	if len(seeds) == 0 {
		return nil, ctx.Err()
	}
	res, err := be.ExtendBatch(ctx, NewBatch(seeds, sc), packed.Pack(db), packed.Pack(query))
	if err != nil {
		return nil, err
	}
	if res.Len() != len(seeds) {
		return nil, errors.Errorf("batch extender returned %d entries for %d seeds", res.Len(), len(seeds))
	}
	return res.Records(), nil
}
