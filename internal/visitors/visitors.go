// Package visitors filters the hits of one (database record, query) pair
// before they reach a writer.
package visitors

import (
	"blastn-core/engine"
	"blastn/internal/common"
	"blastn/internal/runutil"
)

// Visitor receives the hits of one pair and returns the hits to keep.
type Visitor interface {
	Visit(hs []common.Hit) ([]common.Hit, error)
}

// PassThrough returns the hits unchanged.
type PassThrough struct{}

func (PassThrough) Visit(hs []common.Hit) ([]common.Hit, error) { return hs, nil }

// MinScore keeps hits scoring at least Min.
type MinScore struct{ Min int }

func (m MinScore) Visit(hs []common.Hit) ([]common.Hit, error) {
	out := hs[:0:0]
	for _, h := range hs {
		if h.Score >= m.Min {
			out = append(out, h)
		}
	}
	return out, nil
}

// Best keeps only the top-scoring hits of the pair.
type Best struct{}

func (Best) Visit(hs []common.Hit) ([]common.Hit, error) {
	if len(hs) == 0 {
		return hs, nil
	}
	top := hs[0].Score
	for _, h := range hs[1:] {
		top = max(top, h.Score)
	}
	return MinScore{Min: top}.Visit(hs)
}

type uniqueKey struct {
	file, db, query string
	rec             engine.Record
}

// Unique drops hits whose coordinates were already emitted for the same
// pair. Seeds on one diagonal often extend to the same record.
type Unique struct {
	seen *runutil.SeenSet[uniqueKey]
}

// NewUnique remembers up to capacity records (<= 0 = default bound).
func NewUnique(capacity int) *Unique {
	return &Unique{seen: runutil.NewSeenSet[uniqueKey](capacity)}
}

func (u *Unique) Visit(hs []common.Hit) ([]common.Hit, error) {
	out := hs[:0:0]
	for _, h := range hs {
		if u.seen.Add(uniqueKey{file: h.SourceFile, db: h.DatabaseID, query: h.QueryID, rec: h.Record}) {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

// Chain applies visitors in order, stopping early once nothing is left.
type Chain []Visitor

func (c Chain) Visit(hs []common.Hit) ([]common.Hit, error) {
	var err error
	for _, v := range c {
		if len(hs) == 0 {
			break
		}
		if hs, err = v.Visit(hs); err != nil {
			return nil, err
		}
	}
	return hs, nil
}
