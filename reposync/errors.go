package reposync

import "fmt"

// ConfigurationError is caller misuse: a requested remote name does not
// exist on the repository. Fatal for that repo.
type ConfigurationError struct {
	Dest   string
	Remote string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("Remote %s not found for repository %s", e.Remote, e.Dest)
}

// FetchError reports a failed fetch against one remote. Fatal for that
// repo; does not stop other repositories.
type FetchError struct {
	Remote string
	Cause  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch from '%s' failed", e.Remote)
}

func (e *FetchError) Unwrap() error { return e.Cause }

// DirtyWorkingTreeError is the safety refusal to reset a dirty working
// tree. Fatal for that repo only; no reset command is ever issued.
type DirtyWorkingTreeError struct {
	Path string
}

func (e *DirtyWorkingTreeError) Error() string {
	return fmt.Sprintf("%s is dirty, skipping", e.Path)
}

// RefUpdateError reports a failed `reset --hard`. Fatal for that repo.
type RefUpdateError struct {
	Cause error
}

func (e *RefUpdateError) Error() string { return "updating ref failed" }

func (e *RefUpdateError) Unwrap() error { return e.Cause }

// DetachedHeadError is raised when a branch-mode sync finds HEAD
// detached. Fatal for that repo.
type DetachedHeadError struct{}

func (e *DetachedHeadError) Error() string { return "Not on any branch" }

// IncorrectBranchError records that the local branch does not match the
// manifest's declared branch. It is non-fatal in the sense that the
// pipeline continues through fast-forward and submodules, but it still
// surfaces as the repo's outcome error.
type IncorrectBranchError struct {
	Dest     string
	Actual   string
	Expected string
}

func (e *IncorrectBranchError) Error() string {
	return fmt.Sprintf("%s is on %s, not on the correct branch (expected %s)", e.Dest, e.Actual, e.Expected)
}

// MergeError reports a failed fast-forward merge. Fatal for that repo.
type MergeError struct {
	Cause error
}

func (e *MergeError) Error() string { return "updating branch failed" }

func (e *MergeError) Unwrap() error { return e.Cause }
