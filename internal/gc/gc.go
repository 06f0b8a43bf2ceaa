// Package gc wraps the heap's mark-sweep pass with the reporting
// contract the top-level driver needs (§4.5, §4.7): a collection is
// only ever triggered at a safe point (after a top-level form
// completes or errors), never mid-evaluation.
package gc

import "github.com/ondrovic/goschem/internal/value"

// Report summarizes one collection for observability.
type Report struct {
	Collected int64
	Remaining int64
}

// Collect runs one mark-sweep pass over h, rooted at root.
func Collect(h *value.Heap, root value.Env) Report {
	collected, remaining := h.Collect(root)
	return Report{Collected: collected, Remaining: remaining}
}
