// internal/appcore/index.go
package appcore

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"blastn-core/fasta"
	"blastn-core/index"
	"blastn/internal/cmdutil"
	"blastn/internal/output"
	"blastn/internal/writers"
	"blastn/pkg/api"
)

// IndexOptions are the settings of an index report.
type IndexOptions struct {
	DBFiles []string
	Params  index.Params
	Format  string
	Header  bool
	Quiet   bool
}

// RunIndex builds the index of every database record and writes its shape.
func RunIndex(ctx context.Context, stdout, stderr io.Writer, o IndexOptions) int {
	var list []api.IndexStatsV1
	for _, fn := range o.DBFiles {
		err := fasta.StreamPath(ctx, fn, func(rec fasta.Record) error {
			s, err := rec.Symbols()
			if err != nil {
				return errors.Wrapf(err, "%s: database record %q", fn, rec.ID)
			}
			ix, err := index.Build(s, o.Params)
			if err != nil {
				return errors.Wrapf(err, "%s: database record %q", fn, rec.ID)
			}
			st := ix.Stats()
			if st.Truncated > 0 {
				cmdutil.Warnf(stderr, o.Quiet, "%s: record %q: %s k-mer occurrences dropped by the bucket capacity",
					fn, rec.ID, cmdutil.Count(st.Truncated))
			}
			list = append(list, api.IndexStatsV1{
				SourceFile:   fn,
				DatabaseID:   rec.ID,
				Length:       len(s),
				WordSize:     ix.K(),
				Buckets:      st.Buckets,
				Used:         st.Used,
				Nodes:        st.Nodes,
				LongestChain: st.LongestChain,
				Stored:       st.Stored,
				Truncated:    st.Truncated,
			})
			return nil
		})
		if err != nil {
			return Fail(stderr, err)
		}
	}

	outw := bufio.NewWriter(stdout)
	err := output.WriteIndexStats(outw, o.Format, list, o.Header)
	if err == nil {
		err = outw.Flush()
	}
	if writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitRuntime
	}
	return ExitOK
}
