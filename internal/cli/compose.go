package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"commitmsg.dev/commitmsg/conventional"
	"commitmsg.dev/commitmsg/internal/tui"
)

// commitTypes are the commonly used Conventional Commits type tokens offered
// by the compose prompt. Any other type can be entered via the custom option.
var commitTypes = []string{
	"feat",
	"fix",
	"chore",
	"docs",
	"style",
	"refactor",
	"perf",
	"test",
	"build",
	"ci",
}

const customTypeOption = "other..."

// newComposeCmd creates the compose command
func newComposeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Interactively compose a Conventional Commits message",
		Long: `Interactively compose a Conventional Commits message.

Prompts for the type, optional scope, description, optional body, and
breaking-change flag, then prints the message in canonical form.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !tui.IsTTY() {
				return fmt.Errorf("compose requires an interactive terminal")
			}

			commit, err := runComposePrompts()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), conventional.Format(commit))
			return nil
		},
	}

	return cmd
}

func runComposePrompts() (conventional.CommitMessage, error) {
	commitType, err := promptCommitType()
	if err != nil {
		return conventional.CommitMessage{}, err
	}

	var scope string
	if err := survey.AskOne(&survey.Input{
		Message: "Scope (optional)",
	}, &scope); err != nil {
		return conventional.CommitMessage{}, fmt.Errorf("canceled")
	}

	var description string
	if err := survey.AskOne(&survey.Input{
		Message: "Short description",
	}, &description, survey.WithValidator(survey.Required)); err != nil {
		return conventional.CommitMessage{}, fmt.Errorf("canceled")
	}

	var body string
	if err := survey.AskOne(&survey.Multiline{
		Message: "Body (optional)",
	}, &body); err != nil {
		return conventional.CommitMessage{}, fmt.Errorf("canceled")
	}

	var breaking bool
	if err := survey.AskOne(&survey.Confirm{
		Message: "Is this a breaking change?",
		Default: false,
	}, &breaking); err != nil {
		return conventional.CommitMessage{}, fmt.Errorf("canceled")
	}

	commit, err := conventional.New(commitType, description)
	if err != nil {
		return conventional.CommitMessage{}, err
	}

	return commit.WithScope(scope).WithBody(body).WithBreakingChange(breaking), nil
}

func promptCommitType() (string, error) {
	options := append([]string{}, commitTypes...)
	options = append(options, customTypeOption)

	var commitType string
	if err := survey.AskOne(&survey.Select{
		Message: "Commit type",
		Options: options,
		Default: "feat",
	}, &commitType); err != nil {
		return "", fmt.Errorf("canceled")
	}

	if commitType != customTypeOption {
		return commitType, nil
	}

	if err := survey.AskOne(&survey.Input{
		Message: "Custom commit type",
	}, &commitType, survey.WithValidator(survey.Required)); err != nil {
		return "", fmt.Errorf("canceled")
	}
	return commitType, nil
}
