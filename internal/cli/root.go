package cli

import (
	"context"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sketchwall/sketchwall/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "sketchwall"

// Execute runs the sketchwall CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext. The context carries cancellation from the caller, so a
// SIGINT delivered to main stops in-flight renders and shuts the server down.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the root command with all subcommands registered.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Sketchwall renders whiteboard sketches as vector graphics",
		Long:         `Sketchwall is a CLI tool and server for turning typed whiteboard shapes into hand-drawn style SVG, raster images, and PDF documents, with live board sync over websockets.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newBoardsCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newDiscoverCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

// cacheDir returns the artifact cache directory using the XDG standard
// (~/.cache/sketchwall/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
