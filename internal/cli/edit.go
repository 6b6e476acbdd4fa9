package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"commitmsg.dev/commitmsg/internal/tui"
)

// newEditCmd creates the edit command
func newEditCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a commit message with a live parse preview",
		Long: `Edit a commit message in a full-screen editor with a live parse preview.

The preview shows the parsed fields while you type, or the current format
error. Accepting prints the message in canonical form; a message that does
not parse cannot be accepted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !tui.IsTTY() {
				return fmt.Errorf("edit requires an interactive terminal")
			}

			result, err := tui.RunEditor(message)
			if err != nil {
				return fmt.Errorf("editor failed: %w", err)
			}
			if result == "" {
				splog.Debug("editor canceled")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Initial message text to edit")

	return cmd
}
