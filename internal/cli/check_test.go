package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"commitmsg.dev/commitmsg/conventional"
	"commitmsg.dev/commitmsg/internal/cli"
)

func init() {
	// Force a fixed color profile so output assertions are deterministic
	lipgloss.SetColorProfile(termenv.Ascii)
}

// runCommand executes the commitmsg command tree in-process and captures stdout
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd := cli.NewRootCmd("test", "none", "unknown")
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCheckCommand(t *testing.T) {
	t.Run("valid message prints parsed fields", func(t *testing.T) {
		output, err := runCommand(t, "check", "fix(parser): handle empty input")
		require.NoError(t, err)
		require.Contains(t, output, "fix")
		require.Contains(t, output, "parser")
		require.Contains(t, output, "handle empty input")
	})

	t.Run("breaking change is reported", func(t *testing.T) {
		output, err := runCommand(t, "check", "feat!: drop legacy format")
		require.NoError(t, err)
		require.Contains(t, output, "breaking")
		require.Contains(t, output, "yes")
	})

	t.Run("quiet suppresses output on success", func(t *testing.T) {
		output, err := runCommand(t, "check", "--quiet", "docs: update readme")
		require.NoError(t, err)
		require.Equal(t, "", output)
	})

	t.Run("malformed message fails with the specific error", func(t *testing.T) {
		_, err := runCommand(t, "check", "not a conventional commit")
		require.Error(t, err)
		require.ErrorIs(t, err, conventional.ErrMissingTypeSeparator)
	})

	t.Run("multiple scopes fail", func(t *testing.T) {
		_, err := runCommand(t, "check", "feat(a)(b): x")
		require.Error(t, err)
		require.ErrorIs(t, err, conventional.ErrMultipleScopesSpecified)
	})

	t.Run("message read from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
		err := os.WriteFile(path, []byte("feat(cli): add check command\n\ndetails\n"), 0600)
		require.NoError(t, err)

		output, err := runCommand(t, "check", "--file", path)
		require.NoError(t, err)
		require.Contains(t, output, "add check command")
		require.Contains(t, output, "details")
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := runCommand(t, "check", "--file", filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to read message file")
	})
}

func TestFmtCommand(t *testing.T) {
	t.Run("normalizes spacing to the canonical form", func(t *testing.T) {
		output, err := runCommand(t, "fmt", "  feat( cli ): add check command \n\n\n\nbody text\n")
		require.NoError(t, err)
		require.Equal(t, "feat(cli): add check command\n\nbody text\n", output)
	})

	t.Run("keeps breaking marker in the header", func(t *testing.T) {
		output, err := runCommand(t, "fmt", "fix: tighten parsing\n\nBREAKING CHANGE: stricter input rules")
		require.NoError(t, err)
		require.Equal(t, "fix!: tighten parsing\n\nBREAKING CHANGE: stricter input rules\n", output)
	})

	t.Run("malformed message fails", func(t *testing.T) {
		_, err := runCommand(t, "fmt", "feat(): x")
		require.Error(t, err)
		require.ErrorIs(t, err, conventional.ErrInvalidScopeSyntax)
	})
}
