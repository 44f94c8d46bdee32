package reposync

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tsrc-dev/tsrc/internal/uiterm"
	"github.com/tsrc-dev/tsrc/outcome"
	"github.com/tsrc-dev/tsrc/task"
	"github.com/tsrc-dev/tsrc/vcsrunner"
)

// RemoteSetter is the secondary task: for each repo's declared remotes,
// it adds any remote missing locally and updates the URL of any remote
// whose local URL has drifted from the manifest.
type RemoteSetter struct {
	task.Base

	workspacePath string
	runner        vcsrunner.Runner
}

// NewRemoteSetter constructs a RemoteSetter rooted at workspacePath.
func NewRemoteSetter(workspacePath string, runner vcsrunner.Runner) *RemoteSetter {
	return &RemoteSetter{workspacePath: workspacePath, runner: runner}
}

// DescribeItem implements task.Task.
func (s *RemoteSetter) DescribeItem(repo Repo) string { return repo.Dest }

// DescribeStart implements task.Task.
func (s *RemoteSetter) DescribeStart(repo Repo) []uiterm.Token {
	return []uiterm.Token{uiterm.PlainToken("Configuring remotes"), uiterm.PlainToken(repo.Dest)}
}

// DescribeEnd implements task.Task.
func (s *RemoteSetter) DescribeEnd(repo Repo) []uiterm.Token {
	return []uiterm.Token{uiterm.Colored("ok", uiterm.Green), uiterm.PlainToken(repo.Dest)}
}

func (s *RemoteSetter) path(repo Repo) string {
	return filepath.Join(s.workspacePath, repo.Dest)
}

// Process implements task.Task: for every remote declared in repo, add
// it if missing, update its URL if it drifted, or no-op if it already
// matches.
func (s *RemoteSetter) Process(index, count int, repo Repo) outcome.Outcome {
	s.InfoCount(index, count, "Configuring remotes", repo.Dest)

	ctx := context.Background()
	path := s.path(repo)

	var lines []string
	for _, remote := range repo.Remotes {
		existing, err := s.existingURL(ctx, path, remote.Name)
		if err != nil {
			return outcome.FromError(err)
		}

		switch {
		case existing == "":
			s.Info3("Add remote", remote.Name, fmt.Sprintf("(%s)", remote.URL))
			if err := s.runner.Run(ctx, path, "remote", "add", remote.Name, remote.URL); err != nil {
				return outcome.FromError(err)
			}
			lines = append(lines, fmt.Sprintf("%s: Add remote %s (%s)", repo.Dest, remote.Name, remote.URL))

		case existing != remote.URL:
			s.Info3("Update remote", remote.Name, "to new url:", fmt.Sprintf("(%s)", remote.URL))
			if err := s.runner.Run(ctx, path, "remote", "set-url", remote.Name, remote.URL); err != nil {
				return outcome.FromError(err)
			}
			lines = append(lines, fmt.Sprintf("%s: Update remote %s to new url: (%s)", repo.Dest, remote.Name, remote.URL))
		}
	}

	return outcome.FromSummaryLines(lines)
}

// existingURL returns the locally configured URL for name, or "" if no
// such remote exists.
func (s *RemoteSetter) existingURL(ctx context.Context, path, name string) (string, error) {
	code, out, err := s.runner.RunCaptured(ctx, path, false, "remote", "get-url", name)
	if err != nil {
		return "", err
	}
	if code != 0 {
		return "", nil
	}
	return strings.TrimSpace(out), nil
}
