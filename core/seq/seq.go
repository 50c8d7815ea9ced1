// core/seq/seq.go
package seq

import (
	"strings"

	"github.com/pkg/errors"
)

// Symbol is one nucleotide encoded as A=0, C=1, G=2, T=3.
type Symbol uint8

const (
	A Symbol = iota
	C
	G
	T
)

// AlphabetSize is the number of distinct symbols.
const AlphabetSize = 4

// ErrInvalidSymbol is returned when input holds anything outside {A,C,G,T} / {0,1,2,3}.
var ErrInvalidSymbol = errors.New("invalid symbol")

const letters = "ACGT"

// Valid reports whether s is one of the four symbols.
func (s Symbol) Valid() bool { return s < AlphabetSize }

// Byte returns the upper-case letter for s, or 'N' if s is invalid.
func (s Symbol) Byte() byte {
	if !s.Valid() {
		return 'N'
	}
	return letters[s]
}

// Sequence is an immutable run of validated symbols.
// Callers must not modify the slice after construction.
type Sequence []Symbol

// FromInts validates small integers and returns the matching Sequence.
func FromInts(vals []int) (Sequence, error) {
	out := make(Sequence, len(vals))
	for i, v := range vals {
		if v < 0 || v >= AlphabetSize {
			return nil, errors.Wrapf(ErrInvalidSymbol, "value %d at %d", v, i)
		}
		out[i] = Symbol(v)
	}
	return out, nil
}

// FromSymbols copies syms after checking every element.
func FromSymbols(syms []Symbol) (Sequence, error) {
	out := make(Sequence, len(syms))
	for i, s := range syms {
		if !s.Valid() {
			return nil, errors.Wrapf(ErrInvalidSymbol, "value %d at %d", s, i)
		}
		out[i] = s
	}
	return out, nil
}

// Parse converts nucleotide letters (case-insensitive) to a Sequence.
// Anything other than A/C/G/T, including IUPAC ambiguity codes, is rejected.
func Parse(raw []byte) (Sequence, error) {
	out := make(Sequence, len(raw))
	for i, b := range raw {
		s, ok := fromByte(b)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidSymbol, "base %q at %d", b, i+1)
		}
		out[i] = s
	}
	return out, nil
}

// MustParse is like Parse but panics on bad input. It is public API for
// literal sequences in examples and fixtures, as with regexp.MustCompile;
// input read at run time goes through Parse.
func MustParse(s string) Sequence {
	out, err := Parse([]byte(s))
	if err != nil {
		panic(err)
	}
	return out
}

func fromByte(b byte) (Symbol, bool) {
	switch b {
	case 'A', 'a':
		return A, true
	case 'C', 'c':
		return C, true
	case 'G', 'g':
		return G, true
	case 'T', 't':
		return T, true
	default:
		return 0, false
	}
}

// Len returns the number of symbols.
func (s Sequence) Len() int { return len(s) }

// Window returns the k symbols starting at i. It shares memory with s.
func (s Sequence) Window(i, k int) Sequence { return s[i : i+k : i+k] }

// Equal reports whether a and b hold the same symbols.
func Equal(a, b Sequence) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Ints returns the numeric form (0–3) of s.
func (s Sequence) Ints() []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = int(v)
	}
	return out
}

func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, v := range s {
		b.WriteByte(v.Byte())
	}
	return b.String()
}
