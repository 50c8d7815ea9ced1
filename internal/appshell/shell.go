// Package appshell turns a RunContext-style entry point into a process.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"blastn/internal/appcore"
)

// RunFunc is the signature of app.RunContext.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main executes run with the process arguments and exits with its code.
func Main(run RunFunc) {
	os.Exit(Exec(run, os.Args[1:], os.Stdout, os.Stderr))
}

// Exec runs run under a context cancelled by SIGINT or SIGTERM. Only the
// first signal is caught; a second one reaches the default handler and
// kills the process. A run that reports success after a signal exits 130.
func Exec(run RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	context.AfterFunc(ctx, stop)

	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == appcore.ExitOK {
		return appcore.ExitCanceled
	}
	return code
}
