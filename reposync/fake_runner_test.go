package reposync

import (
	"context"
	"strings"
	"sync"

	"github.com/tsrc-dev/tsrc/vcsrunner"
)

// call records one invocation against the fake runner, keyed by
// repository directory so tests can assert per-repo command sequences.
type call struct {
	Dir  string
	Args []string
}

// fakeRunner is an in-memory vcsrunner.Runner used to test reposync's
// ordering and error-handling guarantees without invoking a real git
// binary. Behavior for each directory is scripted via the Scripts field;
// directories with no script behave as a clean repo on branch "master"
// with nothing to fetch or merge.
type fakeRunner struct {
	mu    sync.Mutex
	calls []call

	// Scripts maps a repo directory to its scripted responses. Missing
	// fields take the zero-value ("succeed, no-op") behavior.
	Scripts map[string]*fakeRepoScript
}

// fakeRepoScript scripts one repository directory's responses.
type fakeRepoScript struct {
	Branch       string // CurrentBranch result; "" means detached
	Dirty        bool
	SHA          string
	FetchErr     error // returned by Run for a "fetch" command
	ResetErr     error // returned by Run for a "reset" command
	MergeErr     error // returned by Run/RunCaptured(check=true) for "merge"
	LogOutput    string // RunCaptured output for "log --oneline HEAD..@{upstream}"
	LogCode      int    // RunCaptured exit code for the same "log" call; 0 means clean
	SubmoduleErr error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{Scripts: make(map[string]*fakeRepoScript)}
}

func (f *fakeRunner) script(dir string) *fakeRepoScript {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.Scripts[dir]
	if !ok {
		s = &fakeRepoScript{Branch: "master"}
		f.Scripts[dir] = s
	}
	return s
}

func (f *fakeRunner) record(dir string, args ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{Dir: dir, Args: append([]string(nil), args...)})
}

func (f *fakeRunner) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

var _ vcsrunner.Runner = (*fakeRunner)(nil)

func (f *fakeRunner) Run(ctx context.Context, dir string, args ...string) error {
	f.record(dir, args...)
	s := f.script(dir)

	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "fetch":
		return s.FetchErr
	case "reset":
		return s.ResetErr
	case "merge":
		return s.MergeErr
	case "submodule":
		return s.SubmoduleErr
	default:
		return nil
	}
}

func (f *fakeRunner) RunCaptured(ctx context.Context, dir string, check bool, args ...string) (int, string, error) {
	f.record(dir, args...)
	s := f.script(dir)

	if len(args) >= 2 && args[0] == "log" {
		return s.LogCode, s.LogOutput, nil
	}
	if len(args) >= 1 && args[0] == "merge" {
		if s.MergeErr != nil {
			if check {
				return 1, "", s.MergeErr
			}
			return 1, "", nil
		}
		return 0, "Updating abc123..def456\n", nil
	}
	if len(args) >= 2 && args[0] == "remote" && args[1] == "get-url" {
		return 1, "", nil
	}
	return 0, "", nil
}

func (f *fakeRunner) CurrentBranch(ctx context.Context, dir string) (string, error) {
	s := f.script(dir)
	if s.Branch == "" {
		return "", vcsrunner.ErrDetachedHead
	}
	return s.Branch, nil
}

func (f *fakeRunner) StatusOf(ctx context.Context, dir string) (vcsrunner.Status, error) {
	s := f.script(dir)
	return vcsrunner.Status{Dirty: s.Dirty}, nil
}

func (f *fakeRunner) SHA1(ctx context.Context, dir, ref string) (string, error) {
	s := f.script(dir)
	if s.SHA != "" {
		return s.SHA, nil
	}
	return strings.Repeat("a", 40), nil
}
