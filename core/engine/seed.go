// core/engine/seed.go
package engine

import (
	"github.com/pkg/errors"

	"blastn-core/index"
	"blastn-core/seq"
)

// ErrResourceExhausted is returned when a search would exceed its seed budget.
var ErrResourceExhausted = errors.New("seed budget exhausted")

// Seed is one exact k-mer hit: the query window at QueryPos equals the
// database window at DataPos. Kmer shares memory with the index.
type Seed struct {
	QueryPos int
	Kmer     seq.Sequence
	DataPos  int
}

// K returns the seed length.
func (s Seed) K() int { return len(s.Kmer) }

// FindSeeds probes every k-window of query against ix.
//
// Seeds come out by increasing query position, then chain order (most
// recently inserted k-mer first), then stored occurrence order.
// A query shorter than k yields no seeds.
func FindSeeds(query seq.Sequence, ix *index.Index) []Seed {
	seeds, _ := FindSeedsLimit(query, ix, 0)
	return seeds
}

// FindSeedsLimit is FindSeeds with a cap on the number of seeds (0 = none).
// Exceeding the cap aborts the search with ErrResourceExhausted.
func FindSeedsLimit(query seq.Sequence, ix *index.Index, maxSeeds int) ([]Seed, error) {
	k := ix.K()
	if len(query) < k {
		return nil, nil
	}
	var (
		out []Seed
		err error
	)
	for i := 0; i+k <= len(query); i++ {
		ix.Each(query.Window(i, k), func(kmer seq.Sequence, positions []int) bool {
			for _, p := range positions {
				if maxSeeds > 0 && len(out) >= maxSeeds {
					err = errors.Wrapf(ErrResourceExhausted, "query window %d exceeds %d seeds", i, maxSeeds)
					return false
				}
				out = append(out, Seed{QueryPos: i, Kmer: kmer, DataPos: p})
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
