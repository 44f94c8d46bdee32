package vcsrunner

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not on PATH")
	}
}

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	run := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=tsrc-test", "GIT_AUTHOR_EMAIL=tsrc-test@example.com",
			"GIT_COMMITTER_NAME=tsrc-test", "GIT_COMMITTER_EMAIL=tsrc-test@example.com",
		)
		require.NoError(t, cmd.Run())
	}
	run("init", "-q", "-b", "master")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello\n"), 0o644))
	run("add", ".")
	run("commit", "-q", "-m", "initial")
	return dir
}

func TestGit_CurrentBranch(t *testing.T) {
	requireGit(t)
	dir := initRepo(t)
	g := NewGit()

	branch, err := g.CurrentBranch(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, "master", branch)
}

func TestGit_CurrentBranch_Detached(t *testing.T) {
	requireGit(t)
	dir := initRepo(t)
	g := NewGit()

	sha, err := g.SHA1(context.Background(), dir, "HEAD")
	require.NoError(t, err)
	require.NoError(t, g.Run(context.Background(), dir, "checkout", "-q", sha))

	_, err = g.CurrentBranch(context.Background(), dir)
	require.ErrorIs(t, err, ErrDetachedHead)
}

func TestGit_StatusOf(t *testing.T) {
	requireGit(t)
	dir := initRepo(t)
	g := NewGit()

	status, err := g.StatusOf(context.Background(), dir)
	require.NoError(t, err)
	require.False(t, status.Dirty)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "untracked.txt"), []byte("x"), 0o644))

	status, err = g.StatusOf(context.Background(), dir)
	require.NoError(t, err)
	require.True(t, status.Dirty)
}

func TestGit_SHA1(t *testing.T) {
	requireGit(t)
	dir := initRepo(t)
	g := NewGit()

	sha, err := g.SHA1(context.Background(), dir, "HEAD")
	require.NoError(t, err)
	require.Len(t, sha, 40)
}
