package vcsrunner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDetachedHead is returned by CurrentBranch when HEAD does not point
// at a branch.
var ErrDetachedHead = errors.New("HEAD is detached")

// CommandError wraps a failed git invocation with enough context for
// callers and tests to report a useful message: the arguments passed,
// the exit code, and whatever the command wrote to stdout/stderr.
type CommandError struct {
	Dir      string
	Args     []string
	ExitCode int
	Output   string
}

func (e *CommandError) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("git %s (in %s): exit status %d", strings.Join(e.Args, " "), e.Dir, e.ExitCode)
	}
	return fmt.Sprintf("git %s (in %s): exit status %d: %s", strings.Join(e.Args, " "), e.Dir, e.ExitCode, out)
}
