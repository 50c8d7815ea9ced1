package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"blastn-core/engine"
	"blastn/internal/common"
)

func sampleHit() common.Hit {
	return common.Hit{
		DatabaseID: "chr1", QueryID: "read1",
		Record:   engine.Record{QueryStart: 0, QueryEnd: 6, DataStart: 0, DataEnd: 6, Score: 3},
		Identity: 600.0 / 7,
	}
}

func TestWriteTextRows(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, []common.Hit{sampleHit()}, false, nil); err != nil {
		t.Fatal(err)
	}
	if want := "read1\tchr1\t0\t6\t0\t6\t7\t3\t85.71\n"; buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestStreamTextRendersBlocks(t *testing.T) {
	in := make(chan common.Hit, 2)
	in <- sampleHit()
	in <- sampleHit()
	close(in)
	var buf bytes.Buffer
	render := func(common.Hit) string { return "#x\n" }
	if err := StreamText(&buf, in, true, render); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 5 || lines[0] != TSVHeader || lines[2] != "#x" || lines[4] != "#x" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestSegmentsOmittedWhenEmpty(t *testing.T) {
	b, err := json.Marshal(ToAPIAlignment(sampleHit()))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "query_seq") {
		t.Fatalf("empty segments serialised: %s", b)
	}
	h := sampleHit()
	h.QuerySeq, h.DataSeq = "CCATTTT", "CCAGTTT"
	b, _ = json.Marshal(ToAPIAlignment(h))
	if !strings.Contains(string(b), `"data_seq":"CCAGTTT"`) {
		t.Fatalf("segments missing: %s", b)
	}
}
