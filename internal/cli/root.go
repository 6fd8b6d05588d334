// Package cli provides the Cobra command structure for livemark.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/xonecas/livemark/internal/config"
	"github.com/xonecas/livemark/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app carries state shared between the root command and its subcommands,
// populated by the persistent pre-run.
type app struct {
	cfg *config.Config
}

// NewRootCommand creates the root livemark command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "livemark [file]",
		Short: "A live-decorated markdown scratchpad for the terminal",
		Long: `livemark is a markdown scratchpad for the terminal. Markup renders in
place as you type: markers hide once the cursor leaves them, list bullets and
fenced code blocks draw styled, and moving the cursor back into a construct
reveals the raw text for editing.

Running livemark with no arguments opens the default scratch file; pass a
path to edit any markdown file. Every save records a snapshot that the
history subcommand can list and diff.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			level := cfg.Log.LevelOrDefault()
			if debug {
				level = "debug"
			}
			dir, err := config.EnsureDataDir()
			if err != nil {
				return err
			}
			return logging.Setup(dir, level)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runEdit(a, path)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	// Add subcommands.
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newHistoryCommand(a))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
