// Package config holds the settings of the blastn commands. Values come from
// command-line flags, an optional YAML file and BLASTN_* environment
// variables, merged by Viper (see internal/cli) and decoded into Config.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"blastn-core/engine"
	"blastn-core/index"
	"blastn/internal/output"
	"blastn/internal/writers"
)

// EnvPrefix is the prefix of environment overrides (BLASTN_WORD_SIZE, ...).
const EnvPrefix = "BLASTN"

// ErrInvalid marks a configuration that failed validation.
var ErrInvalid = errors.New("invalid configuration")

// invalidError reports a rejected setting as ErrInvalid while keeping the
// cause reachable through errors.Is / errors.Cause.
type invalidError struct{ cause error }

func invalid(cause error) error { return invalidError{cause: cause} }

func (e invalidError) Error() string        { return e.cause.Error() + ": " + ErrInvalid.Error() }
func (e invalidError) Is(target error) bool { return target == ErrInvalid }
func (e invalidError) Unwrap() error        { return e.cause }
func (e invalidError) Cause() error         { return e.cause }

// Config is the decoded settings for align and index.
type Config struct {
	// Inputs
	Databases []string `mapstructure:"db"`
	Queries   []string `mapstructure:"query"`

	// Index
	WordSize  int `mapstructure:"word-size"`
	TableSize int `mapstructure:"table-size"`
	Capacity  int `mapstructure:"capacity"`
	MaxNodes  int `mapstructure:"max-nodes"`

	// Search and extension
	MaxSeeds      int    `mapstructure:"max-seeds"`
	Match         int    `mapstructure:"match"`
	Mismatch      int    `mapstructure:"mismatch"`
	DropOff       int    `mapstructure:"drop-off"`
	Strategy      string `mapstructure:"strategy"`
	Threads       int    `mapstructure:"threads"`
	ExtendWorkers int    `mapstructure:"extend-workers"`

	// Filters
	MinScore int  `mapstructure:"min-score"`
	Best     bool `mapstructure:"best"`
	Unique   bool `mapstructure:"unique"`

	// Output
	Output          string `mapstructure:"output"`
	Sort            bool   `mapstructure:"sort"`
	NoHeader        bool   `mapstructure:"no-header"`
	Pretty          bool   `mapstructure:"pretty"`
	NoMatchExitCode int    `mapstructure:"no-match-exit-code"`

	// Misc
	Quiet    bool `mapstructure:"quiet"`
	Verbose  bool `mapstructure:"verbose"`
	Progress bool `mapstructure:"progress"`
}

// Default returns the reference parameters.
func Default() Config {
	ip := index.DefaultParams()
	sc := engine.DefaultScoring()
	return Config{
		WordSize:        ip.K,
		TableSize:       ip.TableSize,
		Capacity:        ip.Capacity,
		Match:           sc.Match,
		Mismatch:        sc.Mismatch,
		DropOff:         sc.DropOff,
		Strategy:        engine.StrategyXDrop,
		ExtendWorkers:   1,
		Output:          output.FormatText,
		NoMatchExitCode: 1,
	}
}

// SetDefaults registers Default() on v so that keys absent from flags, file
// and environment still decode to the reference values.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("word-size", d.WordSize)
	v.SetDefault("table-size", d.TableSize)
	v.SetDefault("capacity", d.Capacity)
	v.SetDefault("match", d.Match)
	v.SetDefault("mismatch", d.Mismatch)
	v.SetDefault("drop-off", d.DropOff)
	v.SetDefault("strategy", d.Strategy)
	v.SetDefault("extend-workers", d.ExtendWorkers)
	v.SetDefault("output", d.Output)
	v.SetDefault("no-match-exit-code", d.NoMatchExitCode)
}

// Load reads the optional config file, wires the environment and decodes v.
func Load(v *viper.Viper, file string) (Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(ErrInvalid, "read config %s: %v", file, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrapf(ErrInvalid, "decode config: %v", err)
	}
	return c, nil
}

// IndexParams returns the index parameters of c.
func (c Config) IndexParams() index.Params {
	return index.Params{K: c.WordSize, TableSize: c.TableSize, Capacity: c.Capacity, MaxNodes: c.MaxNodes}
}

// Engine returns the engine configuration of c.
func (c Config) Engine() engine.Config {
	return engine.Config{
		Index:    c.IndexParams(),
		Scoring:  engine.Scoring{Match: c.Match, Mismatch: c.Mismatch, DropOff: c.DropOff},
		Strategy: c.Strategy,
		Workers:  c.ExtendWorkers,
		MaxSeeds: c.MaxSeeds,
	}
}

// ValidateIndex checks the settings used by the index command.
func (c Config) ValidateIndex() error {
	if len(c.Databases) == 0 {
		return errors.Wrap(ErrInvalid, "at least one --db file is required")
	}
	if err := c.IndexParams().Validate(); err != nil {
		return invalid(err)
	}
	if !writers.Known(c.Output) {
		return errors.Wrapf(ErrInvalid, "invalid --output %q (known: %s)", c.Output, strings.Join(writers.Formats(), ", "))
	}
	return nil
}

// Validate checks the settings used by the align command.
func (c Config) Validate() error {
	if err := c.ValidateIndex(); err != nil {
		return err
	}
	if len(c.Queries) == 0 {
		return errors.Wrap(ErrInvalid, "at least one --query file is required")
	}
	if stdin(c.Databases)+stdin(c.Queries) > 1 {
		return errors.Wrap(ErrInvalid, "stdin ('-') can be used for only one input")
	}
	if _, err := engine.New(c.Engine()); err != nil {
		return invalid(err)
	}
	if c.Threads < 0 {
		return errors.Wrap(ErrInvalid, "--threads must be >= 0")
	}
	if c.MinScore < 0 {
		return errors.Wrap(ErrInvalid, "--min-score must be >= 0")
	}
	if c.ExtendWorkers < 0 {
		return errors.Wrap(ErrInvalid, "--extend-workers must be >= 0")
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return errors.Wrap(ErrInvalid, "--no-match-exit-code must be between 0 and 255")
	}
	if c.Quiet && c.Verbose {
		return errors.Wrap(ErrInvalid, "--quiet conflicts with --verbose")
	}
	return nil
}

func stdin(paths []string) int {
	n := 0
	for _, p := range paths {
		if p == "-" {
			n++
		}
	}
	return n
}
