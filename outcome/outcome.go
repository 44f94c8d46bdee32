// Package outcome models the per-item result produced by a task.Task and
// the aggregation of many such results into a summary/error report.
//
// Outcome is a tagged sum of four states — following the Design Notes in
// this module's specification, which call for exactly this shape rather
// than a struct with two optional fields:
//
//	Empty              — no error, no summary (success, nothing to report)
//	Summary(s)         — success with a human-readable fragment
//	Error(e)           — failure with a typed error value
//	SummaryAndError(s,e) — partial progress was made before failing
//
// Success is defined purely by the absence of an error, regardless of
// whether a summary is also attached.
package outcome

import "strings"

// Outcome is the per-item result returned by task.Task.Process.
type Outcome struct {
	summary string
	err     error
}

// Empty returns a successful Outcome with nothing to report.
func Empty() Outcome { return Outcome{} }

// FromError returns a failing Outcome wrapping err. Passing a nil err
// returns Empty(), matching the invariant that success is exactly
// err == nil.
func FromError(err error) Outcome { return Outcome{err: err} }

// FromSummary returns a successful Outcome carrying a single summary
// fragment.
func FromSummary(summary string) Outcome { return Outcome{summary: summary} }

// FromSummaryLines joins lines with "\n" into a single summary fragment.
// An empty slice is equivalent to Empty().
func FromSummaryLines(lines []string) Outcome {
	if len(lines) == 0 {
		return Empty()
	}
	return Outcome{summary: strings.Join(lines, "\n")}
}

// WithError returns a copy of o with err attached, preserving any summary
// already present — this is how a task reports partial progress before a
// later, fatal step fails (the SummaryAndError case).
func (o Outcome) WithError(err error) Outcome {
	o.err = err
	return o
}

// WithSummary returns a copy of o with summary attached (or appended, if
// o already carries one), preserving any error already present.
func (o Outcome) WithSummary(summary string) Outcome {
	if summary == "" {
		return o
	}
	if o.summary == "" {
		o.summary = summary
	} else {
		o.summary = o.summary + "\n" + summary
	}
	return o
}

// Success reports whether o represents a successful outcome: exactly
// err == nil.
func (o Outcome) Success() bool { return o.err == nil }

// Error returns the error attached to o, or nil for a successful Outcome.
func (o Outcome) Error() error { return o.err }

// Summary returns the summary fragment attached to o, or "" if none.
func (o Outcome) Summary() string { return o.summary }

// HasSummary reports whether o carries a non-empty summary fragment.
func (o Outcome) HasSummary() bool { return o.summary != "" }
