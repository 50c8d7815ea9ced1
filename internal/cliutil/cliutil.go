// internal/cliutil/cliutil.go
package cliutil

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like arguments. Plain paths
// and '-' (stdin) pass through unchanged; a glob that matches nothing is an
// error.
func ExpandPositionals(args []string) ([]string, error) {
	var out []string
	for _, a := range args {
		if a == "-" || !hasGlobMeta(a) {
			out = append(out, a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, errors.Wrapf(err, "bad glob %q", a)
		}
		if len(m) == 0 {
			return nil, errors.Errorf("no input matched %q", a)
		}
		out = append(out, m...)
	}
	return out, nil
}
