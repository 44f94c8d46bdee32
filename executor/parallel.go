package executor

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/tsrc-dev/tsrc/internal/uiterm"
	"github.com/tsrc-dev/tsrc/outcome"
	"github.com/tsrc-dev/tsrc/pool"
	"github.com/tsrc-dev/tsrc/task"
)

// Parallel runs t.Process across items using a worker pool of fixed width
// numJobs (at least 1). process calls run concurrently; t must be
// thread-safe with respect to Process (the synchronizer is, because each
// repository is a distinct working directory). Progress is written to
// out (os.Stdout if out is nil).
//
// The returned map's keys are the items' DescribeItem values; the
// returned slice holds those same keys in completion order, which is
// unspecified relative to input order — process invocation order is
// dispatch order, completion order is whatever finishes first.
func Parallel[T any](t task.Task[T], items []T, numJobs int, out io.Writer) (map[string]outcome.Outcome, []string) {
	t.SetMode(task.Parallel)

	if out == nil {
		out = os.Stdout
	}
	if numJobs < 1 {
		numJobs = 1
	}

	count := len(items)
	slots := pool.NewFixed(uint(numJobs), func() interface{} { return struct{}{} })

	var (
		outputMu sync.Mutex
		resultMu sync.Mutex
		doneCount int64
	)

	results := make(map[string]outcome.Outcome, count)
	order := make([]string, 0, count)

	var wg sync.WaitGroup
	wg.Add(count)

	for i, item := range items {
		i, item := i, item
		go func() {
			defer wg.Done()

			slot := slots.Get()
			defer slots.Put(slot)

			desc := t.DescribeItem(item)

			if start := t.DescribeStart(item); len(start) > 0 {
				outputMu.Lock()
				prefix := uiterm.PlainToken(fmt.Sprintf("(%d/%d)", i+1, count))
				uiterm.WriteProgress(out, append([]uiterm.Token{prefix}, start...))
				outputMu.Unlock()
			}

			o := t.Process(i, count, item)

			end := atomic.AddInt64(&doneCount, 1)

			outputMu.Lock()
			endPrefix := uiterm.PlainToken(fmt.Sprintf("(%d/%d)", end-1, count))
			uiterm.WriteProgress(out, append([]uiterm.Token{endPrefix}, t.DescribeEnd(item)...))
			if int(end) == count {
				fmt.Fprintln(out)
			}
			outputMu.Unlock()

			resultMu.Lock()
			results[desc] = o
			order = append(order, desc)
			resultMu.Unlock()
		}()
	}

	wg.Wait()

	return results, order
}
