package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/reactome-tools/reaction-layout/internal/config"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version metadata shown by --version, injected by
// main via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the reaction-layout CLI.
func Execute() error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          appName,
		Short:        "Compute deterministic 2D layouts for biochemical reaction diagrams",
		Long:         `reaction-layout arranges a reaction's participants, compartments, and connectors into a deterministic 2D diagram, the way Reactome's pathway browser does.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML tunable-constants file")

	var cliState *CLI
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if configPath != "" {
			loaded, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config %s: %w", configPath, err)
			}
			cfg = loaded
		}
		level := charmlog.InfoLevel
		if verbose {
			level = charmlog.DebugLevel
		}
		cliState = New(os.Stderr, level, cfg)
		cmd.SetContext(withLogger(cmd.Context(), cliState.Logger))
		return nil
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))

	root.AddCommand(newComputeCmd(&cliState))
	root.AddCommand(newViewCmd(&cliState))
	root.AddCommand(newServeCmd(&cliState))
	root.AddCommand(newInspectCmd(&cliState))
	root.AddCommand(newMCPCmd(&cliState))

	return root.ExecuteContext(context.Background())
}
