package vcsrunner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Git is the Runner implementation backing every reposync operation
// against the real git binary via os/exec.CommandContext.
type Git struct{}

// NewGit returns a Runner that shells out to git. Git has no state of
// its own; a single value can be shared across goroutines.
func NewGit() *Git {
	return &Git{}
}

func (g *Git) exec(ctx context.Context, dir string, args ...string) (int, string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	if err == nil {
		return 0, buf.String(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), buf.String(), err
	}
	return -1, buf.String(), err
}

// Run implements Runner.
func (g *Git) Run(ctx context.Context, dir string, args ...string) error {
	code, out, err := g.exec(ctx, dir, args...)
	if err == nil {
		return nil
	}
	return &CommandError{Dir: dir, Args: args, ExitCode: code, Output: out}
}

// RunCaptured implements Runner.
func (g *Git) RunCaptured(ctx context.Context, dir string, check bool, args ...string) (int, string, error) {
	code, out, err := g.exec(ctx, dir, args...)
	if err != nil && check {
		return code, out, &CommandError{Dir: dir, Args: args, ExitCode: code, Output: out}
	}
	return code, out, nil
}

// CurrentBranch implements Runner.
func (g *Git) CurrentBranch(ctx context.Context, dir string) (string, error) {
	code, out, err := g.exec(ctx, dir, "symbolic-ref", "--short", "HEAD")
	if err != nil || code != 0 {
		return "", ErrDetachedHead
	}
	return strings.TrimSpace(out), nil
}

// StatusOf implements Runner.
func (g *Git) StatusOf(ctx context.Context, dir string) (Status, error) {
	code, out, err := g.exec(ctx, dir, "status", "--porcelain")
	if err != nil || code != 0 {
		return Status{}, &CommandError{Dir: dir, Args: []string{"status", "--porcelain"}, ExitCode: code, Output: out}
	}
	return Status{Dirty: strings.TrimSpace(out) != ""}, nil
}

// SHA1 implements Runner.
func (g *Git) SHA1(ctx context.Context, dir, ref string) (string, error) {
	args := []string{"rev-parse", ref + "^{commit}"}
	code, out, err := g.exec(ctx, dir, args...)
	if err != nil || code != 0 {
		return "", &CommandError{Dir: dir, Args: args, ExitCode: code, Output: out}
	}
	return strings.TrimSpace(out), nil
}
