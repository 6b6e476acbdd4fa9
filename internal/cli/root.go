// Package cli provides the cobra command tree for the commitmsg binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"commitmsg.dev/commitmsg/internal/output"
)

// splog is the shared logger for all commands, reconfigured by the
// persistent flags before any command runs
var splog = output.NewSplog()

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		debug   bool
		logFile string
	)

	rootCmd := &cobra.Command{
		Use:   "commitmsg",
		Short: "Commitmsg parses, checks and formats Conventional Commits messages",
		Long: `Commitmsg parses, checks and formats commit messages following the
Conventional Commits v1.0.0 specification.

https://www.conventionalcommits.org/en/v1.0.0/`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logFile != "" {
				configured, err := output.NewSplogWithConfig(logFile)
				if err != nil {
					return fmt.Errorf("failed to configure logging: %w", err)
				}
				splog = configured
			}
			if debug {
				splog.SetDebug(true)
			}
			output.DetectColorProfile()
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show debug output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write a rotating debug log to this file")

	// Add subcommands
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newComposeCmd())
	rootCmd.AddCommand(newEditCmd())

	return rootCmd
}
