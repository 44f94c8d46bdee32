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

type syncFlags struct {
	jobs   int
	force  bool
	remote string
}

func newSyncCmd() *cobra.Command {
	var flags syncFlags

	cmd := &cobra.Command{
		Use:   "sync <manifest.yml> <workspace-dir>",
		Short: "Synchronize every repository in the manifest",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(args[0], args[1], flags)
		},
	}

	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "Number of parallel jobs (0 = sequential)")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Force-fetch even when a tagged ref was moved on the remote")
	cmd.Flags().StringVar(&flags.remote, "remote", "", "Fetch only the named remote")

	return cmd
}

func runSync(manifestPath, workspaceDir string, flags syncFlags) error {
	repos, err := manifest.Load(manifestPath)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}
	slog.Info("manifest loaded", "repos", len(repos))

	var opts []reposync.SyncerOption
	if flags.force {
		opts = append(opts, reposync.WithForce(true))
	}
	if flags.remote != "" {
		opts = append(opts, reposync.WithRemote(flags.remote))
	}

	syncer := reposync.NewSyncer(workspaceDir, vcsrunner.NewGit(), opts...)

	var numJobs *int
	if flags.jobs > 0 {
		numJobs = &flags.jobs
	}

	collection := executor.ProcessItems(repos, syncer, numJobs)
	return collection.HandleResult("Error: failed to synchronize some repositories:", "")
}
