package outcome

import (
	"fmt"
	"io"
	"os"

	"github.com/tsrc-dev/tsrc/internal/uiterm"
)

// Collection is the aggregated (summaries, errors) view over a set of
// per-item outcomes, keyed by the item description the task assigned.
type Collection struct {
	// keys preserves the iteration order used to build this Collection,
	// so Summaries/Errors iteration and Report output are deterministic
	// for a given input order (for the parallel executor, that order is
	// completion order).
	keys []string

	summaries []string
	errors    map[string]error
	errKeys   []string // insertion order of errors, preserved separately from keys
}

// New partitions outcomes in a single traversal: every Outcome with a
// non-empty summary contributes its summary (in order) to Summaries;
// every Outcome with a non-nil error contributes to Errors, keyed by its
// map key, preserving first-insertion order. An outcome may contribute to
// both lists at once (partial success with a trailing failure).
//
// order gives the key iteration order to use; pass nil to iterate
// outcomes in Go's unspecified map order (acceptable only when the
// caller does not care about Summaries/Errors ordering).
func New(outcomes map[string]Outcome, order []string) *Collection {
	keys := order
	if keys == nil {
		keys = make([]string, 0, len(outcomes))
		for k := range outcomes {
			keys = append(keys, k)
		}
	}

	c := &Collection{
		keys:    keys,
		errors:  make(map[string]error),
		errKeys: make([]string, 0),
	}

	for _, k := range keys {
		o, ok := outcomes[k]
		if !ok {
			continue
		}
		if o.HasSummary() {
			c.summaries = append(c.summaries, o.summary)
		}
		if o.err != nil {
			c.errors[k] = o.err
			c.errKeys = append(c.errKeys, k)
		}
	}

	return c
}

// Summaries returns the ordered list of summary strings.
func (c *Collection) Summaries() []string {
	return append([]string(nil), c.summaries...)
}

// Errors returns the item-description -> error map. The returned map
// preserves no order of its own; use ErrorKeys for deterministic
// iteration.
func (c *Collection) Errors() map[string]error {
	out := make(map[string]error, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// ErrorKeys returns the keys with an attached error, in first-insertion
// order.
func (c *Collection) ErrorKeys() []string {
	return append([]string(nil), c.errKeys...)
}

// HasErrors reports whether any item failed.
func (c *Collection) HasErrors() bool { return len(c.errKeys) > 0 }

// Report prints, in order: an optional summaryTitle followed by each
// summary line (if any summaries were collected), then errorMessage
// followed by each "* <item> : <error>" bullet (if any errors were
// collected). It returns ErrExecutorFailed iff any error was collected —
// the aggregate error spec.md's dispatcher propagates to the CLI as a
// non-zero exit code.
func (c *Collection) Report(w io.Writer, errorMessage, summaryTitle string) error {
	if len(c.summaries) > 0 {
		if summaryTitle != "" {
			fmt.Fprintln(w, summaryTitle)
		}
		for _, s := range c.summaries {
			fmt.Fprintln(w, s)
		}
	}

	if len(c.errKeys) > 0 {
		fmt.Fprintln(w, errorMessage)
		for _, k := range c.errKeys {
			fmt.Fprintln(w, uiterm.Bullet(k, c.errors[k].Error()))
		}
		return ErrExecutorFailed
	}

	return nil
}

// HandleResult is Report writing to os.Stderr, matching spec.md's
// handle_result(error_message, summary_title?) entry point used by the
// CLI layer.
func (c *Collection) HandleResult(errorMessage, summaryTitle string) error {
	return c.Report(os.Stderr, errorMessage, summaryTitle)
}
