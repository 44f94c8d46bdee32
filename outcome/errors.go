package outcome

import "errors"

// ErrExecutorFailed is the aggregate error Collection.Report/HandleResult
// returns when any per-item error was collected. The CLI layer maps this
// to a non-zero exit code (spec.md §6's exit code policy). It lives here,
// next to Collection, rather than in package executor, so that
// Report/HandleResult do not need to import executor to raise it; package
// executor re-exports it as executor.ErrExecutorFailed for callers that
// only import executor.
var ErrExecutorFailed = errors.New("tsrc: one or more items failed")
