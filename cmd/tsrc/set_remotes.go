package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tsrc-dev/tsrc/executor"
	"github.com/tsrc-dev/tsrc/manifest"
	"github.com/tsrc-dev/tsrc/reposync"
	"github.com/tsrc-dev/tsrc/vcsrunner"
)

func newSetRemotesCmd() *cobra.Command {
	var numJobs int

	cmd := &cobra.Command{
		Use:   "set-remotes <manifest.yml> <workspace-dir>",
		Short: "Add or update each repository's remotes to match the manifest",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetRemotes(args[0], args[1], numJobs)
		},
	}

	cmd.Flags().IntVarP(&numJobs, "jobs", "j", 0, "Number of parallel jobs (0 = sequential)")

	return cmd
}

func runSetRemotes(manifestPath, workspaceDir string, jobs int) error {
	repos, err := manifest.Load(manifestPath)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}
	slog.Info("manifest loaded", "repos", len(repos))

	setter := reposync.NewRemoteSetter(workspaceDir, vcsrunner.NewGit())

	var numJobs *int
	if jobs > 0 {
		numJobs = &jobs
	}

	collection := executor.ProcessItems(repos, setter, numJobs)
	return collection.HandleResult("Error: failed to configure remotes for some repositories:", "")
}
