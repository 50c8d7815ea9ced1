package cmdutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"blastn-core/engine"
	"blastn/internal/common"
	"blastn/internal/pipeline"
	"blastn/internal/visitors"
)

func TestWarnfInfof(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, true, "hidden %d", 1)
	Infof(&b, false, "hidden %d", 2)
	if b.Len() != 0 {
		t.Fatalf("quiet/non-verbose wrote %q", b.String())
	}
	Warnf(&b, false, "dropped %s", Count(1234567))
	Infof(&b, true, "ok")
	if got := b.String(); got != "WARN: dropped 1,234,567\nINFO: ok\n" {
		t.Fatalf("got %q", got)
	}
}

func TestRunPairsAppliesVisitor(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "db.fa")
	q := filepath.Join(dir, "q.fa")
	if err := os.WriteFile(db, []byte(">d\nGACTGACATAC\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(q, []byte(">q\nAGCTGAC\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	qs, err := pipeline.LoadQueries(context.Background(), []string{q})
	if err != nil {
		t.Fatal(err)
	}
	eng, err := engine.New(engine.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	var sent []common.Hit
	n, err := RunPairs(context.Background(), pipeline.Config{Threads: 2}, []string{db}, qs, eng,
		visitors.Best{}, func(h common.Hit) error {
			sent = append(sent, h)
			return nil
		})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || len(sent) != 2 || sent[0].Score != 5 || sent[1].Score != 5 {
		t.Fatalf("n=%d sent=%+v", n, sent)
	}
}
