package executor

import (
	"github.com/tsrc-dev/tsrc/outcome"
	"github.com/tsrc-dev/tsrc/task"
)

// ProcessItems is the top-level entry point: it picks the sequential or
// the bounded-parallel executor based on numJobs, runs t over items, and
// wraps the result into an *outcome.Collection.
//
// numJobs nil or non-positive selects the sequential executor (and sets
// t's mode to task.Sequential); a positive numJobs selects the parallel
// executor with that worker-pool width (and sets t's mode to
// task.Parallel).
func ProcessItems[T any](items []T, t task.Task[T], numJobs *int) *outcome.Collection {
	var (
		results map[string]outcome.Outcome
		order   []string
	)

	if numJobs != nil && *numJobs > 0 {
		results, order = Parallel(t, items, *numJobs, nil)
	} else {
		results, order = Sequential(t, items)
	}

	return outcome.New(results, order)
}
