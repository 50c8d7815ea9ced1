// internal/output/index.go
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"blastn/pkg/api"
)

// WriteIndexStats renders index reports as text (TSV), json or jsonl.
func WriteIndexStats(w io.Writer, format string, list []api.IndexStatsV1, header bool) error {
	switch format {
	case FormatJSON:
		if list == nil {
			list = []api.IndexStatsV1{}
		}
		return writeIndented(w, list)
	case FormatJSONL:
		enc := json.NewEncoder(w)
		for _, s := range list {
			if err := enc.Encode(s); err != nil {
				return err
			}
		}
		return nil
	case FormatText:
		if header {
			if _, err := fmt.Fprintln(w, IndexTSVHeader); err != nil {
				return err
			}
		}
		for _, s := range list {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
				s.SourceFile, s.DatabaseID, s.Length, s.WordSize,
				s.Buckets, s.Used, s.Nodes, s.LongestChain, s.Stored, s.Truncated,
			); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.Errorf("unsupported output %q", format)
	}
}
