// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"blastn/internal/common"
)

// Renderer draws an extra block under a row (used by --pretty).
type Renderer func(common.Hit) string

func writeRow(w io.Writer, h common.Hit, render Renderer) error {
	if _, err := fmt.Fprintln(w, FormatRowTSV(h)); err != nil {
		return err
	}
	if render != nil {
		if _, err := io.WriteString(w, render(h)); err != nil {
			return err
		}
	}
	return nil
}

// WriteText prints an optional header and one TSV line per hit, each
// followed by render's block when render is non-nil.
func WriteText(w io.Writer, list []common.Hit, header bool, render Renderer) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, h := range list {
		if err := writeRow(w, h, render); err != nil {
			return err
		}
	}
	return nil
}

// StreamText is WriteText over a channel, writing each hit as it arrives.
// The header is written even when no hit follows.
func StreamText(w io.Writer, in <-chan common.Hit, header bool, render Renderer) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for h := range in {
		if err := writeRow(w, h, render); err != nil {
			return err
		}
	}
	return nil
}
