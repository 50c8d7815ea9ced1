package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

// The core module holds domain packages only: no orchestration, no I/O
// frameworks, and the layers only import downward.
func TestCoreLayering(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../../core"
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}

	// package -> core packages it must not import
	bans := map[string][]string{
		"blastn-core/seq":    {"blastn-core/"},
		"blastn-core/packed": {"blastn-core/index", "blastn-core/engine", "blastn-core/fasta"},
		"blastn-core/index":  {"blastn-core/engine", "blastn-core/fasta", "blastn-core/packed"},
		"blastn-core/engine": {"blastn-core/fasta"},
		"blastn-core/fasta":  {"blastn-core/engine", "blastn-core/index", "blastn-core/packed"},
	}

	dec := json.NewDecoder(&out)
	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		for _, dep := range p.Imports {
			if strings.HasPrefix(dep, "blastn/") {
				violations = append(violations, p.ImportPath+" → "+dep)
			}
			for _, ban := range bans[p.ImportPath] {
				if strings.HasPrefix(dep, ban) {
					violations = append(violations, p.ImportPath+" → "+dep)
				}
			}
		}
	}
	if len(violations) > 0 {
		t.Fatalf("core layering violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
