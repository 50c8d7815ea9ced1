package appcore

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"blastn-core/engine"
	"blastn-core/index"
	"blastn-core/seq"
	"blastn/internal/output"
	"blastn/internal/visitors"
)

func fixture(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.New(engine.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return eng
}

func TestRunWritesWorkedExample(t *testing.T) {
	o := Options{
		DBFiles:    []string{fixture(t, "db.fa", ">d\nGACTGACATAC\n")},
		QueryFiles: []string{fixture(t, "q.fa", ">q\nAGCTGAC\n")},
		Threads:    2, NoMatchExitCode: 1,
	}
	var out, errb bytes.Buffer
	code := Run(context.Background(), &out, &errb, o, newEngine(t), visitors.PassThrough{}, NewHitWriterFactory(output.FormatText, false, true, false))
	if code != ExitOK {
		t.Fatalf("exit %d: %s", code, errb.String())
	}
	want := output.TSVHeader + "\n" +
		"q\td\t2\t4\t2\t4\t3\t3\t100.00\n" +
		"q\td\t2\t6\t2\t6\t5\t5\t100.00\n" +
		"q\td\t2\t6\t2\t6\t5\t5\t100.00\n" +
		"q\td\t4\t6\t0\t2\t3\t3\t100.00\n"
	if out.String() != want {
		t.Fatalf("output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRunNoMatchExitCode(t *testing.T) {
	o := Options{
		DBFiles:    []string{fixture(t, "db.fa", ">d\nAAAAAAAA\n")},
		QueryFiles: []string{fixture(t, "q.fa", ">q\nCCCCCC\n")},
		NoMatchExitCode: 7,
	}
	var out, errb bytes.Buffer
	if code := Run(context.Background(), &out, &errb, o, newEngine(t), visitors.PassThrough{}, NewHitWriterFactory(output.FormatText, false, false, false)); code != 7 {
		t.Fatalf("exit %d want 7", code)
	}
}

func TestRunInvalidInputIsUsageError(t *testing.T) {
	o := Options{
		DBFiles:    []string{fixture(t, "db.fa", ">d\nACGTNN\n")},
		QueryFiles: []string{fixture(t, "q.fa", ">q\nACG\n")},
	}
	var out, errb bytes.Buffer
	code := Run(context.Background(), &out, &errb, o, newEngine(t), visitors.PassThrough{}, NewHitWriterFactory(output.FormatText, false, true, false))
	if code != ExitUsage || !strings.Contains(errb.String(), "invalid symbol") {
		t.Fatalf("exit %d stderr %q", code, errb.String())
	}
}

func TestRunWarnsOnTruncation(t *testing.T) {
	o := Options{
		DBFiles:    []string{fixture(t, "db.fa", ">d\n"+strings.Repeat("A", 14)+"GGCGT\n")},
		QueryFiles: []string{fixture(t, "q.fa", ">q\nAAAA\n")},
	}
	var out, errb bytes.Buffer
	if code := Run(context.Background(), &out, &errb, o, newEngine(t), visitors.Best{}, NewHitWriterFactory(output.FormatJSONL, false, false, false)); code != ExitOK {
		t.Fatalf("exit %d: %s", code, errb.String())
	}
	if !strings.Contains(errb.String(), "WARN:") || !strings.Contains(errb.String(), "2 k-mer occurrences dropped") {
		t.Fatalf("missing truncation warning: %q", errb.String())
	}
}

func TestRunCanceled(t *testing.T) {
	o := Options{
		DBFiles:    []string{fixture(t, "db.fa", ">d\nGACTGACATAC\n")},
		QueryFiles: []string{fixture(t, "q.fa", ">q\nAGCTGAC\n")},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errb bytes.Buffer
	if code := Run(ctx, &out, &errb, o, newEngine(t), visitors.PassThrough{}, NewHitWriterFactory(output.FormatText, false, true, false)); code != ExitCanceled {
		t.Fatalf("exit %d want 130 (%s)", code, errb.String())
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{errors.Wrap(context.Canceled, "x"), ExitCanceled},
		{errors.Wrap(seq.ErrInvalidSymbol, "x"), ExitUsage},
		{errors.Wrap(index.ErrInvalidParams, "x"), ExitUsage},
		{os.ErrNotExist, ExitUsage},
		{errors.Wrap(engine.ErrResourceExhausted, "x"), ExitRuntime},
		{errors.New("disk on fire"), ExitRuntime},
	}
	for _, c := range cases {
		if got := ExitCode(c.err); got != c.want {
			t.Errorf("%v: got %d want %d", c.err, got, c.want)
		}
	}
}

func TestRunIndex(t *testing.T) {
	db := fixture(t, "db.fa", ">d1\nGACTGACATAC\n>d2\nACG\n")
	var out, errb bytes.Buffer
	code := RunIndex(context.Background(), &out, &errb, IndexOptions{
		DBFiles: []string{db}, Params: index.DefaultParams(), Format: output.FormatText, Header: true,
	})
	if code != ExitOK {
		t.Fatalf("exit %d: %s", code, errb.String())
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 || lines[0] != output.IndexTSVHeader {
		t.Fatalf("unexpected report:\n%s", out.String())
	}
	if !strings.HasPrefix(lines[1], db+"\td1\t11\t3\t13\t") || !strings.HasSuffix(lines[1], "\t3\t9\t0") {
		t.Fatalf("d1 row %q", lines[1])
	}
}

func TestRunIndexBadParams(t *testing.T) {
	db := fixture(t, "db.fa", ">d1\nGACTGACATAC\n")
	var out, errb bytes.Buffer
	code := RunIndex(context.Background(), &out, &errb, IndexOptions{
		DBFiles: []string{db}, Params: index.Params{K: 3, TableSize: 13, Capacity: 10, MaxNodes: 2}, Format: output.FormatText,
	})
	if code != ExitRuntime {
		t.Fatalf("exit %d want %d (%s)", code, ExitRuntime, errb.String())
	}
}
