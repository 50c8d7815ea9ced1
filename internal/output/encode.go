package output

import (
	"encoding/json"
	"io"

	"blastn/internal/common"
)

// writeIndented writes v as a two-space indented JSON document.
func writeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EncodeHitLine writes h as one compact v1 JSON line on enc.
func EncodeHitLine(enc *json.Encoder, h common.Hit) error {
	return enc.Encode(ToAPIAlignment(h))
}
