// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// Warnf writes a WARN line to dst unless quiet.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Infof writes an INFO line to dst when verbose.
func Infof(dst io.Writer, verbose bool, format string, a ...any) {
	if !verbose {
		return
	}
	_, _ = fmt.Fprintf(dst, "INFO: "+format+"\n", a...)
}

// Count renders n with thousands separators for log lines.
func Count(n int) string { return humanize.Comma(int64(n)) }
