package executor

import (
	"github.com/tsrc-dev/tsrc/outcome"
	"github.com/tsrc-dev/tsrc/task"
)

// Sequential runs t.Process on each item in items, one at a time, in
// input order. The returned map's keys are exactly the items'
// DescribeItem values; the returned slice holds those same keys in input
// order, so callers can reproduce deterministic output from a map.
func Sequential[T any](t task.Task[T], items []T) (map[string]outcome.Outcome, []string) {
	t.SetMode(task.Sequential)

	count := len(items)
	results := make(map[string]outcome.Outcome, count)
	order := make([]string, 0, count)

	for i, item := range items {
		desc := t.DescribeItem(item)
		o := t.Process(i, count, item)
		results[desc] = o
		order = append(order, desc)
	}

	return results, order
}
