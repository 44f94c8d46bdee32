// Package reposync implements the repository synchronizer: the concrete
// task.Task[Repo] that reconciles a workspace's on-disk repositories with
// the state a manifest declares, built on top of the executor and
// outcome packages plus a vcsrunner.Runner.
package reposync

import "fmt"

// Remote is a named remote URL pair. Names are unique within a Repo's
// remote list.
type Remote struct {
	Name string
	URL  string
}

// Repo is an immutable repository descriptor derived from the manifest.
// It is read-only for the duration of a sync run and freely shared
// across workers; the only per-run mutable state lives in the task
// instance processing it.
type Repo struct {
	// Dest is the workspace-relative directory name.
	Dest string
	// Remotes is the ordered, non-empty list of remotes; the first is
	// the primary.
	Remotes []Remote
	// Branch is the floating branch to track when Tag and SHA1 are both
	// unset.
	Branch string
	// Tag pins the repository to a tag, taking precedence over SHA1.
	Tag string
	// SHA1 pins the repository to an exact commit.
	SHA1 string
}

// Validate checks the Repo invariant: at most one of Tag/SHA1 is set;
// if neither is set, Branch must be; Dest and Remotes are required.
func (r Repo) Validate() error {
	if r.Dest == "" {
		return fmt.Errorf("repo: dest must not be empty")
	}
	if len(r.Remotes) == 0 {
		return fmt.Errorf("repo %q: at least one remote is required", r.Dest)
	}
	if r.Tag != "" && r.SHA1 != "" {
		return fmt.Errorf("repo %q: at most one of tag or sha1 may be set", r.Dest)
	}
	if r.Tag == "" && r.SHA1 == "" && r.Branch == "" {
		return fmt.Errorf("repo %q: branch is required when neither tag nor sha1 is set", r.Dest)
	}
	seen := make(map[string]struct{}, len(r.Remotes))
	for _, rem := range r.Remotes {
		if rem.Name == "" {
			return fmt.Errorf("repo %q: remote name must not be empty", r.Dest)
		}
		if _, dup := seen[rem.Name]; dup {
			return fmt.Errorf("repo %q: duplicate remote name %q", r.Dest, rem.Name)
		}
		seen[rem.Name] = struct{}{}
	}
	return nil
}

// ref returns the pinning ref (tag takes precedence over sha1), or the
// empty string when the repo floats on a branch.
func (r Repo) ref() string {
	if r.Tag != "" {
		return r.Tag
	}
	return r.SHA1
}
