package outcome

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollection_PartitionsSummariesAndErrors(t *testing.T) {
	outcomes := map[string]Outcome{
		"foo": FromSummary("Reset to v1.0"),
		"bar": FromError(errors.New("fetch failed")),
		"baz": Empty(),
	}
	order := []string{"foo", "bar", "baz"}

	c := New(outcomes, order)

	require.Equal(t, []string{"Reset to v1.0"}, c.Summaries())
	require.True(t, c.HasErrors())
	require.Equal(t, []string{"bar"}, c.ErrorKeys())
	require.EqualError(t, c.Errors()["bar"], "fetch failed")
}

func TestCollection_Idempotent(t *testing.T) {
	outcomes := map[string]Outcome{
		"foo": FromSummary("ok"),
		"bar": FromError(errors.New("nope")),
	}
	order := []string{"foo", "bar"}

	c1 := New(outcomes, order)
	c2 := New(outcomes, order)

	require.Equal(t, c1.Summaries(), c2.Summaries())
	require.Equal(t, c1.ErrorKeys(), c2.ErrorKeys())
}

func TestCollection_Report_NoErrors_ReturnsNil(t *testing.T) {
	outcomes := map[string]Outcome{"foo": FromSummary("ok")}
	c := New(outcomes, []string{"foo"})

	var buf bytes.Buffer
	err := c.Report(&buf, "errors:", "summary:")
	require.NoError(t, err)
	require.Contains(t, buf.String(), "summary:")
	require.Contains(t, buf.String(), "ok")
}

func TestCollection_Report_WithErrors_ReturnsErrExecutorFailed(t *testing.T) {
	outcomes := map[string]Outcome{"foo": FromError(errors.New("kaboom"))}
	c := New(outcomes, []string{"foo"})

	var buf bytes.Buffer
	err := c.Report(&buf, "errors:", "")
	require.ErrorIs(t, err, ErrExecutorFailed)
	require.Contains(t, buf.String(), "errors:")
	require.Contains(t, buf.String(), "foo")
}
