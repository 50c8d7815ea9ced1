// Package pretty renders an ASCII alignment block under a text row.
package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"blastn/internal/common"
)

// Options control the ASCII rendering.
type Options struct {
	// Residues per block line. If <=0, use default (60).
	Width int

	// Glyphs
	MatchGlyph    string // default "|"
	MismatchGlyph string // default " "
}

// DefaultOptions is the look used by --pretty.
var DefaultOptions = Options{
	Width:         60,
	MatchGlyph:    "|",
	MismatchGlyph: " ",
}

const linePrefix = "# "

func (o Options) width() int {
	if o.Width <= 0 {
		return DefaultOptions.Width
	}
	return o.Width
}

func (o Options) MatchGlyphOrDefault() string {
	if o.MatchGlyph == "" {
		return DefaultOptions.MatchGlyph
	}
	return o.MatchGlyph
}

func (o Options) MismatchGlyphOrDefault() string {
	if o.MismatchGlyph == "" {
		return DefaultOptions.MismatchGlyph
	}
	return o.MismatchGlyph
}

// matchLine puts a match glyph under every identical column.
func matchLine(q, d string, opt Options) string {
	var b strings.Builder
	for i := 0; i < len(q); i++ {
		if q[i] == d[i] {
			b.WriteString(opt.MatchGlyphOrDefault())
		} else {
			b.WriteString(opt.MismatchGlyphOrDefault())
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// RenderHitWithOptions draws the query segment, a match line and the
// database segment, wrapped at opt.Width columns. Coordinates are 0-based
// and inclusive, as in the TSV row. Every line starts with "# ".
func RenderHitWithOptions(h common.Hit, opt Options) string {
	if h.QuerySeq == "" || len(h.QuerySeq) != len(h.DataSeq) {
		return fmt.Sprintf("%s(pretty not available: sequences missing)\n#\n", linePrefix)
	}
	w := opt.width()
	digits := len(strconv.Itoa(max(h.QueryEnd, h.DataEnd)))
	pad := strings.Repeat(" ", digits)

	var b strings.Builder
	for off := 0; off < len(h.QuerySeq); off += w {
		end := min(off+w, len(h.QuerySeq))
		q, d := h.QuerySeq[off:end], h.DataSeq[off:end]
		fmt.Fprintf(&b, "%sq %*d %s %d\n", linePrefix, digits, h.QueryStart+off, q, h.QueryStart+end-1)
		b.WriteString(strings.TrimRight(linePrefix+"  "+pad+" "+matchLine(q, d, opt), " ") + "\n")
		fmt.Fprintf(&b, "%sd %*d %s %d\n", linePrefix, digits, h.DataStart+off, d, h.DataStart+end-1)
		b.WriteString("#\n")
	}
	return b.String()
}

// RenderHit uses DefaultOptions.
func RenderHit(h common.Hit) string {
	return RenderHitWithOptions(h, DefaultOptions)
}
