// core/engine/engine.go
package engine

import (
	"context"

	"github.com/pkg/errors"

	"blastn-core/index"
	"blastn-core/seq"
)

// Extension strategies selectable through Config.Strategy.
const (
	StrategyXDrop  = "xdrop"
	StrategyPacked = "packed"
)

// Config holds the alignment parameters.
type Config struct {
	Index    index.Params
	Scoring  Scoring
	Strategy string // "" or "xdrop" = XDrop; "packed" = PackedExtender
	Workers  int    // extension goroutines per query (<=1 = sequential)
	MaxSeeds int    // seed budget per query (0 = unlimited)
}

// DefaultConfig returns the reference parameters with sequential extension.
func DefaultConfig() Config {
	return Config{Index: index.DefaultParams(), Scoring: DefaultScoring(), Strategy: StrategyXDrop}
}

// Engine runs seed search and extension with a fixed Config.
type Engine struct {
	cfg Config
}

// New validates c and returns an Engine.
func New(c Config) (*Engine, error) {
	if err := c.Index.Validate(); err != nil {
		return nil, err
	}
	if err := c.Scoring.Validate(); err != nil {
		return nil, err
	}
	switch c.Strategy {
	case "":
		c.Strategy = StrategyXDrop
	case StrategyXDrop, StrategyPacked:
	default:
		return nil, errors.Wrapf(index.ErrInvalidParams, "unknown extension strategy %q", c.Strategy)
	}
	if c.MaxSeeds < 0 {
		return nil, errors.Wrapf(index.ErrInvalidParams, "max seeds=%d must be >= 0", c.MaxSeeds)
	}
	return &Engine{cfg: c}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// BuildIndex indexes db with the engine's index parameters.
func (e *Engine) BuildIndex(db seq.Sequence) (*index.Index, error) {
	ix, err := index.Build(db, e.cfg.Index)
	if err != nil {
		return nil, errors.Wrap(err, "build index")
	}
	return ix, nil
}

// Seeds finds the seeds of query in ix under the engine's seed budget.
func (e *Engine) Seeds(query seq.Sequence, ix *index.Index) ([]Seed, error) {
	return FindSeedsLimit(query, ix, e.cfg.MaxSeeds)
}

// Extend extends seeds with the configured strategy.
func (e *Engine) Extend(ctx context.Context, seeds []Seed, db, query seq.Sequence) ([]Record, error) {
	if e.cfg.Strategy == StrategyPacked {
		return ExtendSeedsBatch(ctx, PackedExtender{Scoring: e.cfg.Scoring}, e.cfg.Scoring, seeds, db, query)
	}
	return ExtendSeedsCtx(ctx, NewXDrop(e.cfg.Scoring), seeds, db, query, e.cfg.Workers)
}

// Align finds and extends the seeds of query against the database that ix
// was built from. It returns one record per seed, in seed order.
func (e *Engine) Align(ctx context.Context, ix *index.Index, db, query seq.Sequence) ([]Record, error) {
	if ix.DatabaseLen() != len(db) {
		return nil, errors.Errorf("index covers %d symbols, database has %d", ix.DatabaseLen(), len(db))
	}
	seeds, err := e.Seeds(query, ix)
	if err != nil {
		return nil, err
	}
	return e.Extend(ctx, seeds, db, query)
}
