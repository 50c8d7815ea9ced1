// core/engine/extend.go
package engine

import (
	"github.com/pkg/errors"

	"blastn-core/index"
	"blastn-core/seq"
)

// Default scoring parameters.
const (
	DefaultMatch    = 1
	DefaultMismatch = -3
	DefaultDropOff  = 20
)

// Scoring holds the per-column deltas and the X-drop threshold.
type Scoring struct {
	Match    int // delta for an identical pair (> 0)
	Mismatch int // delta for a differing pair (<= 0)
	DropOff  int // max drop below the best score before extension stops
}

// DefaultScoring returns +1 / -3 / 20.
func DefaultScoring() Scoring {
	return Scoring{Match: DefaultMatch, Mismatch: DefaultMismatch, DropOff: DefaultDropOff}
}

// Validate rejects scorings under which extension would not terminate sensibly.
func (s Scoring) Validate() error {
	switch {
	case s.Match <= 0:
		return errors.Wrapf(index.ErrInvalidParams, "match bonus %d must be > 0", s.Match)
	case s.Mismatch > 0:
		return errors.Wrapf(index.ErrInvalidParams, "mismatch penalty %d must be <= 0", s.Mismatch)
	case s.DropOff < 0:
		return errors.Wrapf(index.ErrInvalidParams, "drop-off %d must be >= 0", s.DropOff)
	}
	return nil
}

// Record is one ungapped alignment. Coordinates are 0-based and inclusive;
// QueryEnd-QueryStart always equals DataEnd-DataStart.
type Record struct {
	QueryStart int
	QueryEnd   int
	DataStart  int
	DataEnd    int
	Score      int
}

// Length returns the number of aligned columns.
func (r Record) Length() int { return r.QueryEnd - r.QueryStart + 1 }

// Identity returns the percentage of identical columns of r.
func Identity(r Record, db, query seq.Sequence) float64 {
	n := r.Length()
	if n <= 0 {
		return 0
	}
	same := 0
	for i := 0; i < n; i++ {
		if query[r.QueryStart+i] == db[r.DataStart+i] {
			same++
		}
	}
	return float64(same) * 100 / float64(n)
}

// Extender turns one seed into one alignment record.
type Extender interface {
	Extend(s Seed, db, query seq.Sequence) Record
}

// XDrop is the default Extender: symmetric greedy extension that probes
// both flanks every step and stops once the running score falls more than
// DropOff below the best score seen.
type XDrop struct {
	Scoring Scoring
}

// NewXDrop returns an XDrop extender using sc.
func NewXDrop(sc Scoring) XDrop { return XDrop{Scoring: sc} }

func (x XDrop) Extend(s Seed, db, query seq.Sequence) Record {
	return ExtendAt(x.Scoring, s.QueryPos, s.DataPos, s.K(), len(query), len(db),
		func(q, d int) bool { return query[q] == db[d] })
}

// Extend extends s with the default scoring.
func Extend(s Seed, db, query seq.Sequence) Record {
	return NewXDrop(DefaultScoring()).Extend(s, db, query)
}

// ExtendAt runs the X-drop extension of a k-long seed at (qPos, dPos) over a
// query of qLen and a database of dLen symbols. same reports whether query[q]
// equals database[d]; it lets callers supply any symbol storage.
//
// The seed counts as k matches. Each step scores the left pair and the right
// pair that are still in bounds and commits the sum unless no side can move
// or the result would drop more than DropOff below the best score. A side
// that runs out of bounds stays frozen at its last extended index. The best
// score is updated on ties, so the last step reaching it sets the bounds.
func ExtendAt(sc Scoring, qPos, dPos, k, qLen, dLen int, same func(q, d int) bool) Record {
	score := k * sc.Match
	maxScore := score
	maxQLeft, maxDLeft, maxLen := qPos, dPos, k

	leftQ, leftD := qPos-1, dPos-1
	rightQ, rightD := qPos+k, dPos+k
	finalLeftQ, finalLeftD := qPos, dPos
	finalRightQ := qPos + k - 1

	col := func(q, d int) int {
		if same(q, d) {
			return sc.Match
		}
		return sc.Mismatch
	}

	for {
		canLeft := leftQ >= 0 && leftD >= 0
		canRight := rightQ < qLen && rightD < dLen
		if !canLeft && !canRight {
			break
		}
		delta := 0
		if canLeft {
			delta += col(leftQ, leftD)
		}
		if canRight {
			delta += col(rightQ, rightD)
		}
		if maxScore-(score+delta) > sc.DropOff {
			break
		}
		score += delta
		if canLeft {
			finalLeftQ, finalLeftD = leftQ, leftD
			leftQ--
			leftD--
		}
		if canRight {
			finalRightQ = rightQ
			rightQ++
			rightD++
		}
		if score >= maxScore {
			maxScore = score
			maxQLeft, maxDLeft = finalLeftQ, finalLeftD
			maxLen = finalRightQ - finalLeftQ + 1
		}
	}

	return Record{
		QueryStart: maxQLeft,
		QueryEnd:   maxQLeft + maxLen - 1,
		DataStart:  maxDLeft,
		DataEnd:    maxDLeft + maxLen - 1,
		Score:      maxScore,
	}
}
