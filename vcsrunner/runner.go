// Package vcsrunner supplies a concrete version-control adapter for
// reposync: a Runner backed by os/exec against the git binary. The
// synchronizer treats the VCS adapter as an external collaborator (it
// only depends on the Runner interface below); this package exists so
// the rest of the module is actually runnable end to end, rather than
// only testable against a fake.
package vcsrunner

import "context"

// Status is the subset of `git status --porcelain` the synchronizer
// needs: whether the working tree has any uncommitted change.
type Status struct {
	Dirty bool
}

// Runner is the contract reposync drives every git operation through.
// Implementations must be safe for concurrent use across distinct dirs;
// two calls against the same dir concurrently are not supported (the
// synchronizer never does this — see reposync's unique-dest invariant).
type Runner interface {
	// Run executes git with args in dir and returns a *CommandError on
	// non-zero exit.
	Run(ctx context.Context, dir string, args ...string) error

	// RunCaptured executes git with args in dir and returns the exit
	// code and combined stdout+stderr. If check is true, a non-zero
	// exit is also returned as a *CommandError; if false, the caller
	// inspects the exit code itself.
	RunCaptured(ctx context.Context, dir string, check bool, args ...string) (exitCode int, output string, err error)

	// CurrentBranch returns the short name of the branch dir's HEAD
	// points at. It returns ErrDetachedHead when HEAD is detached.
	CurrentBranch(ctx context.Context, dir string) (string, error)

	// StatusOf reports whether dir's working tree is dirty.
	StatusOf(ctx context.Context, dir string) (Status, error)

	// SHA1 resolves ref to a full commit hash in dir.
	SHA1(ctx context.Context, dir, ref string) (string, error)
}
