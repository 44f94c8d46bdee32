package reposync

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/tsrc-dev/tsrc/internal/uiterm"
	"github.com/tsrc-dev/tsrc/metrics"
	"github.com/tsrc-dev/tsrc/outcome"
	"github.com/tsrc-dev/tsrc/task"
	"github.com/tsrc-dev/tsrc/vcsrunner"
)

// Syncer is the primary task: it reconciles every Repo's on-disk state
// with its manifest-declared state via the fetch -> (reset-to-ref |
// fast-forward-branch) -> submodule-update pipeline.
type Syncer struct {
	task.Base

	workspacePath string
	runner        vcsrunner.Runner
	force         bool
	remoteName    string
	metrics       metrics.Provider

	syncDuration metrics.Histogram
	syncTotal    metrics.Counter
	syncErrors   metrics.Counter
}

// SyncerOption configures a Syncer built by NewSyncer.
type SyncerOption func(*Syncer)

// WithForce appends --force to every fetch, so a retagged or rewound
// ref on the remote is accepted rather than rejected.
func WithForce(force bool) SyncerOption {
	return func(s *Syncer) { s.force = force }
}

// WithRemote restricts fetch to the named remote; pickRemotes returns
// a ConfigurationError for any repo lacking that remote.
func WithRemote(name string) SyncerOption {
	return func(s *Syncer) { s.remoteName = name }
}

// WithMetrics records sync duration and outcome counts through provider.
// Defaults to metrics.NewNoopProvider().
func WithMetrics(provider metrics.Provider) SyncerOption {
	return func(s *Syncer) { s.metrics = provider }
}

// NewSyncer constructs a Syncer rooted at workspacePath, driving every
// git operation through runner.
func NewSyncer(workspacePath string, runner vcsrunner.Runner, opts ...SyncerOption) *Syncer {
	s := &Syncer{
		workspacePath: workspacePath,
		runner:        runner,
		metrics:       metrics.NewNoopProvider(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.syncDuration = s.metrics.Histogram("sync_repo_duration_seconds",
		metrics.WithDescription("duration of a single repository sync"), metrics.WithUnit("seconds"))
	s.syncTotal = s.metrics.Counter("sync_repo_total",
		metrics.WithDescription("repositories synced"))
	s.syncErrors = s.metrics.Counter("sync_repo_errors_total",
		metrics.WithDescription("repository syncs that ended in error"))

	return s
}

// DescribeItem implements task.Task.
func (s *Syncer) DescribeItem(repo Repo) string { return repo.Dest }

// DescribeStart implements task.Task.
func (s *Syncer) DescribeStart(repo Repo) []uiterm.Token {
	return []uiterm.Token{uiterm.PlainToken("Syncing"), uiterm.PlainToken(repo.Dest)}
}

// DescribeEnd implements task.Task.
func (s *Syncer) DescribeEnd(repo Repo) []uiterm.Token {
	return []uiterm.Token{uiterm.Colored("ok", uiterm.Green), uiterm.PlainToken(repo.Dest)}
}

func (s *Syncer) path(repo Repo) string {
	return filepath.Join(s.workspacePath, repo.Dest)
}

// Process implements task.Task: it runs the fetch -> ref-selection ->
// (reset | fast-forward) -> submodule-update pipeline for repo.
func (s *Syncer) Process(index, count int, repo Repo) outcome.Outcome {
	start := time.Now()
	s.syncTotal.Add(1)

	s.InfoCount(index, count, "Synchronizing", repo.Dest)

	o := s.process(repo)

	s.syncDuration.Record(time.Since(start).Seconds())
	if !o.Success() {
		s.syncErrors.Add(1)
	}
	return o
}

func (s *Syncer) process(repo Repo) outcome.Outcome {
	ctx := context.Background()

	if err := s.fetch(ctx, repo); err != nil {
		return outcome.FromError(err)
	}

	if ref := repo.ref(); ref != "" {
		s.Info3("Resetting to", ref)
		if err := s.syncToRef(ctx, repo, ref); err != nil {
			return outcome.FromError(err)
		}
		return outcome.FromSummary(fmt.Sprintf("Reset to %s", ref))
	}

	s.Info3("Updating branch")

	var branchErr error
	if actual, err := s.currentBranch(ctx, repo); err != nil {
		return outcome.FromError(err)
	} else if actual != repo.Branch {
		branchErr = &IncorrectBranchError{Dest: repo.Dest, Actual: actual, Expected: repo.Branch}
	}

	summary, mergeErr := s.syncToBranch(ctx, repo)
	if mergeErr != nil {
		return outcome.FromError(mergeErr)
	}

	o := outcome.FromSummary(summary)
	if branchErr != nil {
		o = o.WithError(branchErr)
	}

	if err := s.updateSubmodules(ctx, repo); err != nil {
		return o.WithError(err)
	}

	return o
}

func (s *Syncer) pickRemotes(repo Repo) ([]Remote, error) {
	if s.remoteName == "" {
		return repo.Remotes, nil
	}
	for _, r := range repo.Remotes {
		if r.Name == s.remoteName {
			return []Remote{r}, nil
		}
	}
	return nil, &ConfigurationError{Dest: repo.Dest, Remote: s.remoteName}
}

func (s *Syncer) fetch(ctx context.Context, repo Repo) error {
	remotes, err := s.pickRemotes(repo)
	if err != nil {
		return err
	}
	path := s.path(repo)
	for _, remote := range remotes {
		s.Info3("Fetching", remote.Name)
		args := []string{"fetch", "--tags", "--prune", remote.Name}
		if s.force {
			args = append(args, "--force")
		}
		if err := s.runner.Run(ctx, path, args...); err != nil {
			return &FetchError{Remote: remote.Name, Cause: err}
		}
	}
	return nil
}

func (s *Syncer) syncToRef(ctx context.Context, repo Repo, ref string) error {
	path := s.path(repo)
	status, err := s.runner.StatusOf(ctx, path)
	if err != nil {
		return err
	}
	if status.Dirty {
		return &DirtyWorkingTreeError{Path: path}
	}
	if err := s.runner.Run(ctx, path, "reset", "--hard", ref); err != nil {
		return &RefUpdateError{Cause: err}
	}
	return nil
}

func (s *Syncer) currentBranch(ctx context.Context, repo Repo) (string, error) {
	branch, err := s.runner.CurrentBranch(ctx, s.path(repo))
	if err != nil {
		return "", &DetachedHeadError{}
	}
	return branch, nil
}

// syncToBranch fast-forwards repo's current branch to its upstream. In
// sequential mode the merge runs through Runner.Run, so its output is not
// shown (it only appears in the returned error on failure) and the
// summary is empty; in parallel mode it first checks (captured) whether there is anything to
// merge, to skip the noisy "already up-to-date" case, and returns a
// multi-line summary block headed by the repo's dest underlined with
// dashes.
func (s *Syncer) syncToBranch(ctx context.Context, repo Repo) (string, error) {
	path := s.path(repo)

	if s.GetMode() == task.Parallel {
		code, out, _ := s.runner.RunCaptured(ctx, path, false, "log", "--oneline", "HEAD..@{upstream}")
		if code == 0 && strings.TrimSpace(out) == "" {
			return "", nil
		}

		_, mergeOut, err := s.runner.RunCaptured(ctx, path, true, "merge", "--ff-only", "@{upstream}")
		if err != nil {
			return "", &MergeError{Cause: err}
		}
		if !strings.HasSuffix(mergeOut, "\n") {
			mergeOut += "\n"
		}
		return repo.Dest + "\n" + strings.Repeat("-", len(repo.Dest)) + "\n" + mergeOut, nil
	}

	if err := s.runner.Run(ctx, path, "merge", "--ff-only", "@{upstream}"); err != nil {
		return "", &MergeError{Cause: err}
	}
	return "", nil
}

func (s *Syncer) updateSubmodules(ctx context.Context, repo Repo) error {
	return s.runner.Run(ctx, s.path(repo), "submodule", "update", "--init", "--recursive")
}
