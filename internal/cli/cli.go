// Package cli defines the blastn command tree. Flags are bound into a
// per-command Viper instance so that a YAML config file and BLASTN_*
// environment variables can supply the same keys.
package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"blastn/internal/cliutil"
	"blastn/internal/config"
	"blastn/internal/version"
)

// Handlers run a command once its configuration is resolved and valid.
// They return the process exit code.
type Handlers struct {
	Align func(ctx context.Context, c config.Config) int
	Index func(ctx context.Context, c config.Config) int
}

// NewRootCommand builds the command tree. The exit code of the handler that
// ran is stored in *code.
func NewRootCommand(h Handlers, code *int) *cobra.Command {
	root := &cobra.Command{
		Use:   "blastn",
		Short: "Ungapped seed-and-extend nucleotide alignment",
		Long: `blastn finds local ungapped alignments between query and database
nucleotide sequences.

Every k-mer of a query is looked up in a hashed k-mer index of each
database record; each hit (seed) is extended in both directions with an
X-drop rule and reported as one alignment record.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("blastn version {{.Version}}\n")
	root.AddCommand(newAlignCommand(h.Align, code), newIndexCommand(h.Index, code), newVersionCommand())
	return root
}

func newAlignCommand(run func(context.Context, config.Config) int, code *int) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "align --query QUERY.fa [--db] DB.fa ...",
		Short: "Align query records against database records",
		Example: `  blastn align -q reads.fa genome.fa
  blastn align -q q.fa -d 'refs/*.fa.gz' --best --output jsonl
  BLASTN_DROP_OFF=10 blastn align --config blastn.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolve(cmd, v, args)
			if err != nil {
				return err
			}
			if err := c.Validate(); err != nil {
				return err
			}
			*code = run(cmd.Context(), c)
			return nil
		},
	}
	registerAlignFlags(cmd.Flags(), config.Default())
	return cmd
}

func newIndexCommand(run func(context.Context, config.Config) int, code *int) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "index [--db] DB.fa ...",
		Short: "Build the k-mer index of each database record and report its shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolve(cmd, v, args)
			if err != nil {
				return err
			}
			if err := c.ValidateIndex(); err != nil {
				return err
			}
			*code = run(cmd.Context(), c)
			return nil
		},
	}
	registerIndexFlags(cmd.Flags(), config.Default())
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("blastn version %s\n", version.Version)
		},
	}
}

// resolve merges flags, config file and environment into a Config and
// appends positional database paths (globs expanded).
func resolve(cmd *cobra.Command, v *viper.Viper, args []string) (config.Config, error) {
	config.SetDefaults(v)
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config.Config{}, err
	}
	file, _ := cmd.Flags().GetString("config")
	c, err := config.Load(v, file)
	if err != nil {
		return config.Config{}, err
	}
	dbs, err := cliutil.ExpandPositionals(c.Databases)
	if err != nil {
		return config.Config{}, err
	}
	pos, err := cliutil.ExpandPositionals(args)
	if err != nil {
		return config.Config{}, err
	}
	c.Databases = append(dbs, pos...)
	if c.Queries, err = cliutil.ExpandPositionals(c.Queries); err != nil {
		return config.Config{}, err
	}
	return c, nil
}
