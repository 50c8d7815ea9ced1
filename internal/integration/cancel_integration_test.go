package integration

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"blastn/internal/app"
)

func TestCtrlC_MidScan_Exit130(t *testing.T) {
	// Periodic sequences make every seed extend across the whole overlap,
	// so the run is far from done when the cancel lands.
	dir := t.TempDir()
	var b strings.Builder
	for i := 0; i < 64; i++ {
		fmt.Fprintf(&b, ">chr%d\n%s\n", i, strings.Repeat("ACGT", 16<<10))
	}
	db := filepath.Join(dir, "cancel_big.fa")
	if err := os.WriteFile(db, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write fasta: %v", err)
	}
	q := filepath.Join(dir, "q.fa")
	if err := os.WriteFile(q, []byte(">q\n"+strings.Repeat("ACGT", 500)+"\n"), 0o644); err != nil {
		t.Fatalf("write fasta: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	// Cancel shortly after start.
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	code := app.RunContext(ctx, []string{"align", "-q", q, db, "--threads", "2"}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
