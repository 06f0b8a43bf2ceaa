// Package interp assembles the heap, root environment and evaluator
// into the single object the command-line front end drives: the
// top-level read-eval-print cycle, file loading, and the
// collect-at-safe-points garbage collection policy (§4.5, §4.7).
// Grounded on the teacher's repl.go driver loop, generalized from a
// single global interpreter into an explicit Continuation value so a
// host program can run more than one independently.
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/ondrovic/goschem/internal/builtin"
	"github.com/ondrovic/goschem/internal/env"
	"github.com/ondrovic/goschem/internal/escape"
	"github.com/ondrovic/goschem/internal/eval"
	"github.com/ondrovic/goschem/internal/gc"
	"github.com/ondrovic/goschem/internal/printer"
	"github.com/ondrovic/goschem/internal/reader"
	"github.com/ondrovic/goschem/internal/value"
)

// Continuation owns one interpreter instance: its heap, root
// environment, evaluator, and standard ports. The name echoes §3.3's
// framing of the live interpreter state as what a program's execution
// continues from.
type Continuation struct {
	Heap *value.Heap
	Root *env.Environment
	Eval *eval.Evaluator

	stdout io.Writer
	// GCEvery controls how many top-level forms run between automatic
	// collections; 0 disables automatic collection entirely (tests that
	// want to control GC timing by hand set this).
	GCEvery int
	formsSinceGC int
}

// New builds a Continuation with every §6.3 built-in registered, the
// standard input port wired to the process's stdin and the standard
// output port writing to stdout.
func New(stdout io.Writer) *Continuation {
	h := value.NewHeap()
	root := env.New()

	stdinPort := h.NewPort(&value.PortData{IsStdin: true, Reader: newRuneReader(os.Stdin)}, true)
	stdoutPort := h.NewPort(&value.PortData{IsStdout: true, Writer: &writerAdapter{w: stdout}}, false)

	ev := eval.New(h, stdinPort, stdoutPort)
	builtin.Register(h, root)

	return &Continuation{Heap: h, Root: root, Eval: ev, stdout: stdout, GCEvery: 1}
}

// Load parses every top-level form in path and evaluates each in the
// root environment, in order, per §4.5. It does not print results —
// only the REPL echoes values.
func (c *Continuation) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return escape.New(escape.IOError, "cannot load %q: %v", path, err)
	}
	forms, err := reader.ReadAll(string(data), path, c.Heap)
	if err != nil {
		return err
	}
	for _, f := range forms {
		if _, err := c.Eval.Eval(f, c.Root); err != nil {
			return err
		}
		c.maybeCollect()
	}
	return nil
}

// EvalString reads and evaluates every top-level form in text, used by
// the REPL for one line (or accumulated lines) of input. It returns
// the value of the last form evaluated.
func (c *Continuation) EvalString(text, label string) (value.Value, error) {
	forms, err := reader.ReadAll(text, label, c.Heap)
	if err != nil {
		return value.Value{}, err
	}
	var result value.Value = value.Null()
	for _, f := range forms {
		result, err = c.Eval.Eval(f, c.Root)
		if err != nil {
			return value.Value{}, err
		}
		c.maybeCollect()
	}
	return result, nil
}

// Collect runs the mark-sweep collector now, regardless of GCEvery,
// and returns the cells-collected/cells-remaining report (§4.5).
func (c *Continuation) Collect() gc.Report {
	return gc.Collect(c.Heap, c.Root)
}

func (c *Continuation) maybeCollect() {
	if c.GCEvery <= 0 {
		return
	}
	c.formsSinceGC++
	if c.formsSinceGC >= c.GCEvery {
		c.formsSinceGC = 0
		c.Collect()
	}
}

// WriteResult prints v to stdout the way the REPL echoes a result:
// write representation, not display.
func (c *Continuation) WriteResult(v value.Value) {
	fmt.Fprintln(c.stdout, printer.Write(v))
}

// runeReader adapts an io.Reader to the PortData.Reader interface.
// Standard input to this interpreter is always line-oriented ASCII
// command text, so a byte-at-a-time read is sufficient.
type runeReader struct {
	r io.Reader
}

func newRuneReader(r io.Reader) *runeReader {
	return &runeReader{r: r}
}

func (rr *runeReader) ReadRune() (rune, int, error) {
	var b [1]byte
	n, err := rr.r.Read(b[:])
	if n == 0 {
		return 0, 0, err
	}
	return rune(b[0]), 1, nil
}

type writerAdapter struct{ w io.Writer }

func (wa *writerAdapter) WriteString(s string) (int, error) {
	return io.WriteString(wa.w, s)
}
