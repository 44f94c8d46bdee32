package executor

import (
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsrc-dev/tsrc/task"
)

func TestParallel_ReturnsAllKeys(t *testing.T) {
	tsk := &intTask{}
	items := []int{1, 2, 3, 4, 5}

	var buf bytes.Buffer
	results, order := Parallel[int](tsk, items, 2, &buf)

	require.Len(t, results, len(items))
	require.Len(t, order, len(items))
	for _, item := range items {
		require.True(t, results[strconv.Itoa(item)].Success())
	}
	require.Equal(t, task.Parallel, tsk.GetMode())
}

func TestParallel_CapturesErrorsWithoutCrashingPool(t *testing.T) {
	tsk := &intTask{fail: map[int]error{2: errors.New("kaboom")}}
	items := []int{1, 2, 3}

	var buf bytes.Buffer
	results, order := Parallel[int](tsk, items, 2, &buf)

	require.ElementsMatch(t, []string{"1", "2", "3"}, order)
	require.True(t, results["1"].Success())
	require.False(t, results["2"].Success())
	require.True(t, results["3"].Success())
}

func TestParallel_SingleWorker_MatchesSequentialKeySet(t *testing.T) {
	items := []int{10, 20, 30}

	seqResults, _ := Sequential[int](&intTask{}, items)

	var buf bytes.Buffer
	parResults, _ := Parallel[int](&intTask{}, items, 1, &buf)

	require.Equal(t, len(seqResults), len(parResults))
	for k := range seqResults {
		require.Contains(t, parResults, k)
	}
}
