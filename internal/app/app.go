// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"blastn-core/engine"
	"blastn/internal/appcore"
	"blastn/internal/cli"
	"blastn/internal/config"
	"blastn/internal/visitors"
	"blastn/internal/writers"
)

// RunContext executes the blastn command line and returns the exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	code := appcore.ExitOK
	root := cli.NewRootCommand(cli.Handlers{
		Align: func(ctx context.Context, c config.Config) int { return align(ctx, c, stdout, stderr) },
		Index: func(ctx context.Context, c config.Config) int { return indexStats(ctx, c, stdout, stderr) },
	}, &code)
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(parent)
	if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitRuntime
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		return appcore.ExitUsage
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func align(ctx context.Context, c config.Config, stdout, stderr io.Writer) int {
	eng, err := engine.New(c.Engine())
	if err != nil {
		return appcore.Fail(stderr, err)
	}
	o := appcore.Options{
		DBFiles:         c.Databases,
		QueryFiles:      c.Queries,
		Threads:         c.Threads,
		Quiet:           c.Quiet,
		Verbose:         c.Verbose,
		Progress:        c.Progress,
		NoMatchExitCode: c.NoMatchExitCode,
	}
	writer := appcore.NewHitWriterFactory(c.Output, c.Sort, !c.NoHeader, c.Pretty)
	return appcore.Run(ctx, stdout, stderr, o, eng, filters(c), writer)
}

func filters(c config.Config) visitors.Visitor {
	var chain visitors.Chain
	if c.MinScore > 0 {
		chain = append(chain, visitors.MinScore{Min: c.MinScore})
	}
	if c.Best {
		chain = append(chain, visitors.Best{})
	}
	if c.Unique {
		chain = append(chain, visitors.NewUnique(0))
	}
	if len(chain) == 0 {
		return visitors.PassThrough{}
	}
	return chain
}

func indexStats(ctx context.Context, c config.Config, stdout, stderr io.Writer) int {
	return appcore.RunIndex(ctx, stdout, stderr, appcore.IndexOptions{
		DBFiles: c.Databases,
		Params:  c.IndexParams(),
		Format:  c.Output,
		Header:  !c.NoHeader,
		Quiet:   c.Quiet,
	})
}
