package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lunaterra/chartwheel/pkg/config"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with values
// injected via ldflags at build time.
//
// Parameters:
//   - v: semantic version string (e.g., "v1.2.3")
//   - c: git commit SHA (short or long form)
//   - d: build timestamp (e.g., "2026-08-30T14:32:01Z")
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the chartwheel CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (render, inspect,
// serve, cache), configures logging based on the --verbose flag, loads the
// TOML configuration file, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger and configuration are attached to the context and accessible to
// all commands via loggerFromContext and configFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "chartwheel",
		Short:        "Chartwheel lays out astrological charts as wheel diagrams",
		Long:         `Chartwheel is a CLI tool for turning calculated chart documents (bodies, aspects, houses) into circular wheel diagrams, with collision-resolved labels and multiple output formats.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))

			path := configPath
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					path = "" // no config dir, run on defaults
				}
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("chartwheel %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: platform config dir)")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}
