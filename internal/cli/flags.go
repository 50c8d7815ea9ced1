// internal/cli/flags.go
package cli

import (
	"github.com/spf13/pflag"

	"blastn/internal/config"
)

// registerIndexFlags wires the flags shared by align and index.
func registerIndexFlags(fs *pflag.FlagSet, d config.Config) {
	fs.StringSliceP("db", "d", nil, "database FASTA file(s) (repeatable, comma-separated, or '-')")
	fs.IntP("word-size", "k", d.WordSize, "k-mer length (1..32)")
	fs.Int("table-size", d.TableSize, "number of hash buckets")
	fs.Int("capacity", d.Capacity, "max stored occurrences per k-mer; extras are dropped and counted")
	fs.Int("max-nodes", d.MaxNodes, "chain node budget per database record (0 = unlimited)")
	fs.StringP("output", "o", d.Output, "output format: text | json | jsonl")
	fs.Bool("no-header", d.NoHeader, "suppress header line in text output")
	fs.BoolP("quiet", "Q", d.Quiet, "suppress warnings")
	fs.String("config", "", "YAML config file (flags and BLASTN_* env override it)")
}

// registerAlignFlags wires the flags of align.
func registerAlignFlags(fs *pflag.FlagSet, d config.Config) {
	registerIndexFlags(fs, d)
	fs.StringSliceP("query", "q", nil, "query FASTA file(s) (repeatable, comma-separated, or '-')")

	// Search and extension
	fs.Int("max-seeds", d.MaxSeeds, "seed budget per query and database record (0 = unlimited)")
	fs.Int("match", d.Match, "score for an identical pair (> 0)")
	fs.Int("mismatch", d.Mismatch, "score for a differing pair (<= 0)")
	fs.Int("drop-off", d.DropOff, "stop extending once the score falls this far below the best")
	fs.String("strategy", d.Strategy, "extension strategy: xdrop | packed")
	fs.IntP("threads", "t", d.Threads, "pipeline workers (0 = all CPUs)")
	fs.Int("extend-workers", d.ExtendWorkers, "extension goroutines per query (<= 1 = sequential)")

	// Filters
	fs.Int("min-score", d.MinScore, "keep alignments scoring at least N")
	fs.Bool("best", d.Best, "keep only the top-scoring alignments of each query/database pair")
	fs.Bool("unique", d.Unique, "drop repeated alignments of a pair (seeds on one diagonal)")

	// Output
	fs.Bool("sort", d.Sort, "sort output by database, query, query start, database start")
	fs.Bool("pretty", d.Pretty, "draw each alignment under its row (text output)")
	fs.Int("no-match-exit-code", d.NoMatchExitCode, "exit code when no alignment is written")
	fs.BoolP("verbose", "v", d.Verbose, "log index and run statistics")
	fs.Bool("progress", d.Progress, "show a progress bar on stderr")
}
