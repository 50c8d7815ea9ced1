// internal/output/rows.go
package output

import (
	"fmt"

	"blastn/internal/common"
)

// FormatRowTSV returns the TSV columns of one hit (no trailing newline).
func FormatRowTSV(h common.Hit) string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%.2f",
		h.QueryID, h.DatabaseID,
		h.QueryStart, h.QueryEnd, h.DataStart, h.DataEnd,
		h.Length(), h.Score, h.Identity,
	)
}
