// Package executor drives a task.Task over a list of items, either
// sequentially or across a bounded pool of goroutines, and returns an
// outcome.Collection built from the per-item results.
package executor

import "github.com/tsrc-dev/tsrc/outcome"

// ErrExecutorFailed re-exports outcome.ErrExecutorFailed for callers that
// only import package executor.
var ErrExecutorFailed = outcome.ErrExecutorFailed
