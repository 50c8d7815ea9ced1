package pretty

import (
	"strings"
	"testing"

	"blastn-core/engine"
	"blastn/internal/common"
)

func hit(q, d string, qs, ds int) common.Hit {
	return common.Hit{
		Record: engine.Record{
			QueryStart: qs, QueryEnd: qs + len(q) - 1,
			DataStart: ds, DataEnd: ds + len(d) - 1,
		},
		QuerySeq: q,
		DataSeq:  d,
	}
}

func TestRenderHit(t *testing.T) {
	got := RenderHit(hit("CTGAC", "CTGAC", 2, 2))
	want := "# q 2 CTGAC 6\n" +
		"#     |||||\n" +
		"# d 2 CTGAC 6\n" +
		"#\n"
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderHitMismatchAndWrap(t *testing.T) {
	got := RenderHitWithOptions(hit("CCATTTT", "CCAGTTT", 0, 0), Options{Width: 4})
	want := strings.Join([]string{
		"# q 0 CCAT 3",
		"#     |||",
		"# d 0 CCAG 3",
		"#",
		"# q 4 TTT 6",
		"#     |||",
		"# d 4 TTT 6",
		"#",
	}, "\n") + "\n"
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderHitPadsCoordinates(t *testing.T) {
	got := RenderHitWithOptions(hit("ACGT", "AGGT", 8, 120), Options{MatchGlyph: ":", MismatchGlyph: "x"})
	want := "# q   8 ACGT 11\n" +
		"#       :x::\n" +
		"# d 120 AGGT 123\n" +
		"#\n"
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderHitWithoutSequences(t *testing.T) {
	if got := RenderHit(common.Hit{}); !strings.Contains(got, "pretty not available") {
		t.Fatalf("got %q", got)
	}
}
