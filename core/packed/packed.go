// core/packed/packed.go
package packed

import (
	"github.com/pkg/errors"

	"blastn-core/seq"
)

// BlockSize is the number of 2-bit symbols held by one word.
const BlockSize = 16

// Words is a 2-bit packed sequence. Within a block the first symbol occupies
// the most significant bits; the final, possibly partial, block is
// right-aligned (its last symbol sits in the two lowest bits).
type Words struct {
	N     int // symbol count
	Words []uint32
}

// Pack encodes s.
func Pack(s seq.Sequence) Words {
	n := (len(s) + BlockSize - 1) / BlockSize
	w := Words{N: len(s), Words: make([]uint32, n)}
	for b := 0; b < n; b++ {
		lo := b * BlockSize
		hi := min(lo+BlockSize, len(s))
		var v uint32
		for _, sym := range s[lo:hi] {
			v = v<<2 | uint32(sym&3)
		}
		w.Words[b] = v
	}
	return w
}

// Len returns the number of encoded symbols.
func (w Words) Len() int { return w.N }

// At decodes symbol i. The caller must keep 0 <= i < Len().
func (w Words) At(i int) seq.Symbol {
	b := i / BlockSize
	count := min(BlockSize, w.N-b*BlockSize)
	shift := 2 * (count - 1 - i%BlockSize)
	return seq.Symbol(w.Words[b] >> uint(shift) & 3)
}

// Unpack decodes every symbol.
func (w Words) Unpack() seq.Sequence {
	out := make(seq.Sequence, w.N)
	for i := range out {
		out[i] = w.At(i)
	}
	return out
}

// Validate checks that the word count matches N.
func (w Words) Validate() error {
	if w.N < 0 {
		return errors.Errorf("packed: negative length %d", w.N)
	}
	if want := (w.N + BlockSize - 1) / BlockSize; len(w.Words) != want {
		return errors.Errorf("packed: %d symbols need %d words, have %d", w.N, want, len(w.Words))
	}
	return nil
}
