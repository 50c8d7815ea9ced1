// core/index/index.go
package index

import (
	"github.com/pkg/errors"

	"blastn-core/seq"
)

// Default index parameters.
const (
	DefaultK         = 3
	DefaultTableSize = 13
	DefaultCapacity  = 10

	// MaxK keeps the base-4 key inside a uint64.
	MaxK = 32
)

var (
	ErrInvalidParams     = errors.New("invalid index parameters")
	ErrResourceExhausted = errors.New("index node budget exhausted")
)

// Params configures Build.
type Params struct {
	K         int // seed length
	TableSize int // bucket count, fixed for the index lifetime
	Capacity  int // occurrences kept per chain node
	MaxNodes  int // arena budget (0 = unlimited)
}

// DefaultParams returns k=3, tableSize=13, capacity=10.
func DefaultParams() Params {
	return Params{K: DefaultK, TableSize: DefaultTableSize, Capacity: DefaultCapacity}
}

// Validate checks the Build preconditions.
func (p Params) Validate() error {
	switch {
	case p.K < 1 || p.K > MaxK:
		return errors.Wrapf(ErrInvalidParams, "k=%d must be in [1,%d]", p.K, MaxK)
	case p.TableSize < 1:
		return errors.Wrapf(ErrInvalidParams, "table size=%d must be >= 1", p.TableSize)
	case p.Capacity < 1:
		return errors.Wrapf(ErrInvalidParams, "capacity=%d must be >= 1", p.Capacity)
	case p.MaxNodes < 0:
		return errors.Wrapf(ErrInvalidParams, "max nodes=%d must be >= 0", p.MaxNodes)
	}
	return nil
}

const none = -1

// node is one chain entry. kmer is a view into the database.
type node struct {
	kmer seq.Sequence
	pos  []int
	next int
}

// Index is a fixed-size hash table of k-mer windows with chained buckets.
// It is immutable after Build and safe for concurrent readers.
type Index struct {
	p     Params
	dbLen int
	heads []int // bucket -> arena index of chain head, or none
	nodes []node

	truncated int
}

// Key is the base-4 positional value of w, left-most symbol most significant.
func Key(w seq.Sequence) uint64 {
	var key uint64
	for _, s := range w {
		key = key<<2 | uint64(s)
	}
	return key
}

// Bucket maps a window to its bucket in a table of tableSize buckets.
func Bucket(w seq.Sequence, tableSize int) int {
	return int(Key(w) % uint64(tableSize))
}

// Build indexes every k-length window of db.
//
// A window whose bucket is empty becomes the bucket head. A repeat of the
// head's k-mer appends to the head's occurrence list until Capacity is
// reached; later repeats are dropped and counted in Stats().Truncated.
// Any other k-mer landing in an occupied bucket is prepended as a new head.
// A database shorter than K yields an empty index.
func Build(db seq.Sequence, p Params) (*Index, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	ix := &Index{
		p:     p,
		dbLen: len(db),
		heads: make([]int, p.TableSize),
	}
	for i := range ix.heads {
		ix.heads[i] = none
	}
	for pos := 0; pos+p.K <= len(db); pos++ {
		w := db.Window(pos, p.K)
		b := Bucket(w, p.TableSize)
		h := ix.heads[b]
		if h != none && seq.Equal(ix.nodes[h].kmer, w) {
			if len(ix.nodes[h].pos) < p.Capacity {
				ix.nodes[h].pos = append(ix.nodes[h].pos, pos)
			} else {
				ix.truncated++
			}
			continue
		}
		if p.MaxNodes > 0 && len(ix.nodes) >= p.MaxNodes {
			return nil, errors.Wrapf(ErrResourceExhausted, "window at %d needs node %d", pos, len(ix.nodes)+1)
		}
		ix.nodes = append(ix.nodes, node{
			kmer: w,
			pos:  append(make([]int, 0, min(p.Capacity, 4)), pos),
			next: h,
		})
		ix.heads[b] = len(ix.nodes) - 1
	}
	return ix, nil
}

// K returns the indexed window length.
func (ix *Index) K() int { return ix.p.K }

// Params returns the parameters the index was built with.
func (ix *Index) Params() Params { return ix.p }

// DatabaseLen returns the length of the indexed database.
func (ix *Index) DatabaseLen() int { return ix.dbLen }

// Each walks the bucket chain for w from head to tail and calls fn for every
// node whose stored k-mer equals w. Iteration stops early if fn returns false.
// positions must not be modified.
func (ix *Index) Each(w seq.Sequence, fn func(kmer seq.Sequence, positions []int) bool) {
	if len(w) != ix.p.K {
		return
	}
	for n := ix.heads[Bucket(w, ix.p.TableSize)]; n != none; n = ix.nodes[n].next {
		nd := &ix.nodes[n]
		if !seq.Equal(nd.kmer, w) {
			continue
		}
		if !fn(nd.kmer, nd.pos) {
			return
		}
	}
}

// Occurrences returns every stored position of w in chain order.
func (ix *Index) Occurrences(w seq.Sequence) []int {
	var out []int
	ix.Each(w, func(_ seq.Sequence, positions []int) bool {
		out = append(out, positions...)
		return true
	})
	return out
}

// Chain returns the k-mers of bucket b from head to tail.
func (ix *Index) Chain(b int) []seq.Sequence {
	if b < 0 || b >= len(ix.heads) {
		return nil
	}
	var out []seq.Sequence
	for n := ix.heads[b]; n != none; n = ix.nodes[n].next {
		out = append(out, ix.nodes[n].kmer)
	}
	return out
}

// Stats summarises the index shape.
type Stats struct {
	Buckets      int // table size
	Used         int // non-empty buckets
	Nodes        int // chain nodes
	LongestChain int
	Stored       int // occurrences kept
	Truncated    int // occurrences dropped by the capacity bound
}

func (ix *Index) Stats() Stats {
	st := Stats{Buckets: len(ix.heads), Nodes: len(ix.nodes), Truncated: ix.truncated}
	for _, h := range ix.heads {
		if h == none {
			continue
		}
		st.Used++
		l := 0
		for n := h; n != none; n = ix.nodes[n].next {
			l++
			st.Stored += len(ix.nodes[n].pos)
		}
		if l > st.LongestChain {
			st.LongestChain = l
		}
	}
	return st
}
