package reposync

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsrc-dev/tsrc/metrics"
)

func TestSyncer_WithMetrics_RecordsDurationAndCounts(t *testing.T) {
	runner := newFakeRunner()
	provider := metrics.NewBasicProvider()
	syncer := NewSyncer("/workspace", runner, WithMetrics(provider))

	syncer.Process(0, 2, repoFixture("foo", "master"))

	runner.Scripts["/workspace/bar"] = &fakeRepoScript{FetchErr: errors.New("boom")}
	syncer.Process(1, 2, repoFixture("bar", "master"))

	total := provider.Counter("sync_repo_total").(*metrics.BasicCounter)
	errs := provider.Counter("sync_repo_errors_total").(*metrics.BasicCounter)
	duration := provider.Histogram("sync_repo_duration_seconds").(*metrics.BasicHistogram)

	require.EqualValues(t, 2, total.Snapshot())
	require.EqualValues(t, 1, errs.Snapshot())
	require.EqualValues(t, 2, duration.Snapshot().Count)
}
