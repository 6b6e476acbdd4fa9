package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"commitmsg.dev/commitmsg/conventional"
	"commitmsg.dev/commitmsg/internal/output"
)

// newCheckCmd creates the check command
func newCheckCmd() *cobra.Command {
	var (
		file  string
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "check [message]",
		Short: "Check that a commit message follows the Conventional Commits format",
		Long: `Check that a commit message follows the Conventional Commits format.

The message is read from the argument, from --file, or from stdin when piped.
On success the parsed fields are printed; on failure the specific format
error is reported and the exit status is non-zero.`,
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

			splog.Debug("parsed message: type=%s breaking=%t", commit.CommitType(), commit.IsBreakingChange())

			if !quiet {
				fmt.Fprintln(cmd.OutOrStdout(), output.RenderCommit(commit))
			}
			return nil
		},
	}

	// Add flags
	cmd.Flags().StringVarP(&file, "file", "F", "", "Read the commit message from a file (e.g. .git/COMMIT_EDITMSG)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress output; the exit status reports the result")

	return cmd
}
