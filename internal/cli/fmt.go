package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"commitmsg.dev/commitmsg/conventional"
)

// newFmtCmd creates the fmt command
func newFmtCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "fmt [message]",
		Short: "Print the canonical form of a commit message",
		Long: `Print the canonical form of a commit message.

Parsing and re-formatting normalizes separator spacing and collapses blank-line
runs between the header and the body to a single blank line. The message must
already follow the Conventional Commits format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := resolveMessage(args, file)
			if err != nil {
				return err
			}

			commit, err := conventional.Parse(message)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), conventional.Format(commit))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "F", "", "Read the commit message from a file")

	return cmd
}
