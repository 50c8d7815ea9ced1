package output

import "testing"

func TestTSVHeader_Stable(t *testing.T) {
	const want = "query_id\tdatabase_id\tq_start\tq_end\td_start\td_end\tlength\tscore\tidentity"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" || FormatJSONL != "jsonl" {
		t.Fatalf("output format constants changed")
	}
}
