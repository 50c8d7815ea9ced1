package appshell

import (
	"bytes"
	"context"
	"io"
	"reflect"
	"testing"
)

func TestExecPassesArgsAndCode(t *testing.T) {
	var got []string
	run := func(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
		if ctx.Err() != nil {
			t.Error("context cancelled before any signal")
		}
		got = argv
		return 3
	}
	var out, errb bytes.Buffer
	if code := Exec(run, []string{"align", "-q", "q.fa"}, &out, &errb); code != 3 {
		t.Fatalf("code=%d want 3", code)
	}
	if !reflect.DeepEqual(got, []string{"align", "-q", "q.fa"}) {
		t.Fatalf("argv=%v", got)
	}
}
