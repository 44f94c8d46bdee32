package outcome

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutcome_Empty(t *testing.T) {
	o := Empty()
	require.True(t, o.Success())
	require.False(t, o.HasSummary())
	require.Nil(t, o.Error())
}

func TestOutcome_FromError(t *testing.T) {
	cause := errors.New("boom")
	o := FromError(cause)
	require.False(t, o.Success())
	require.Equal(t, cause, o.Error())
}

func TestOutcome_FromSummary(t *testing.T) {
	o := FromSummary("did a thing")
	require.True(t, o.Success())
	require.Equal(t, "did a thing", o.Summary())
}

func TestOutcome_FromSummaryLines(t *testing.T) {
	o := FromSummaryLines([]string{"one", "two"})
	require.Equal(t, "one\ntwo", o.Summary())

	empty := FromSummaryLines(nil)
	require.False(t, empty.HasSummary())
}

func TestOutcome_WithError_PreservesSummary(t *testing.T) {
	cause := errors.New("boom")
	o := FromSummary("partial progress").WithError(cause)

	require.False(t, o.Success())
	require.Equal(t, "partial progress", o.Summary())
	require.Equal(t, cause, o.Error())
}

func TestOutcome_WithSummary_Appends(t *testing.T) {
	o := FromSummary("first")
	o = o.WithSummary("second")
	require.Equal(t, "first\nsecond", o.Summary())
}
