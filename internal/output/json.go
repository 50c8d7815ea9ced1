// internal/output/json.go
package output

import (
	"io"

	"blastn/internal/common"
	"blastn/pkg/api"
)

// ToAPIAlignment converts a hit to the stable wire schema (v1).
func ToAPIAlignment(h common.Hit) api.AlignmentV1 {
	return api.AlignmentV1{
		QueryID:    h.QueryID,
		DatabaseID: h.DatabaseID,
		QueryStart: h.QueryStart,
		QueryEnd:   h.QueryEnd,
		DataStart:  h.DataStart,
		DataEnd:    h.DataEnd,
		Length:     h.Length(),
		Score:      h.Score,
		Identity:   h.Identity,
		SourceFile: h.SourceFile,
		QuerySeq:   h.QuerySeq,
		DataSeq:    h.DataSeq,
	}
}

func toAPIAlignments(list []common.Hit) []api.AlignmentV1 {
	out := make([]api.AlignmentV1, 0, len(list))
	for _, h := range list {
		out = append(out, ToAPIAlignment(h))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 alignments (pretty-indented).
func WriteJSON(w io.Writer, list []common.Hit) error {
	return writeIndented(w, toAPIAlignments(list))
}
