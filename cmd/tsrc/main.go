// Command tsrc manages a workspace of many interrelated source
// repositories as a single unit, driven by a declarative manifest.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagVerbose bool
	flagDebug   bool
)

func main() {
	root := newRootCmd()
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tsrc",
		Short: "Manage a workspace of source repositories",
		Long: "tsrc synchronizes many repositories at once, reconciling each one's\n" +
			"on-disk state with the state declared in a manifest.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initLogging()
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose (info) logging")
	cmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging (overrides --verbose)")

	cmd.AddCommand(newSyncCmd())
	cmd.AddCommand(newSetRemotesCmd())

	return cmd
}

func initLogging() {
	var level slog.Level
	switch {
	case flagDebug:
		level = slog.LevelDebug
	case flagVerbose:
		level = slog.LevelInfo
	default:
		level = slog.LevelWarn
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	slog.Debug("logging initialized", "level", level.String())
}
