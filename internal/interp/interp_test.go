package interp_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ondrovic/goschem/internal/interp"
)

func TestEvalStringReturnsLastResult(t *testing.T) {
	var out bytes.Buffer
	c := interp.New(&out)

	v, err := c.EvalString("(define x 10) (+ x 5)", "<test>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Num() != 15 {
		t.Fatalf("expected 15, got %v", v)
	}
}

func TestLoadEvaluatesEveryTopLevelForm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.scm")
	if err := os.WriteFile(path, []byte("(define x 1) (define y 2) (define z (+ x y))"), 0o644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	var out bytes.Buffer
	c := interp.New(&out)
	if err := c.Load(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := c.EvalString("z", "<test>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Num() != 3 {
		t.Fatalf("expected 3, got %v", v)
	}
}

func TestCollectReportsGC(t *testing.T) {
	var out bytes.Buffer
	c := interp.New(&out)
	c.GCEvery = 0 // drive collection manually

	if _, err := c.EvalString("(define xs (list 1 2 3))", "<test>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.EvalString("(define xs (list 4 5))", "<test>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := c.Collect()
	if report.Remaining == 0 {
		t.Fatalf("expected some cells to remain reachable after collection")
	}
}

func TestWriteResultUsesWriteNotDisplay(t *testing.T) {
	var out bytes.Buffer
	c := interp.New(&out)
	v, err := c.EvalString(`"hi"`, "<test>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.WriteResult(v)
	if got := out.String(); got != "\"hi\"\n" {
		t.Fatalf("expected quoted string echo, got %q", got)
	}
}
