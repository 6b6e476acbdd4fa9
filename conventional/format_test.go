package conventional

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		commit   CommitMessage
		expected string
	}{
		{
			name:     "type and description",
			commit:   mustNew(t, "docs", "update readme"),
			expected: "docs: update readme",
		},
		{
			name:     "with scope",
			commit:   mustNew(t, "fix", "handle empty input").WithScope("parser"),
			expected: "fix(parser): handle empty input",
		},
		{
			name:     "breaking change",
			commit:   mustNew(t, "feat", "drop legacy format").WithBreakingChange(true),
			expected: "feat!: drop legacy format",
		},
		{
			name:     "scope and breaking change",
			commit:   mustNew(t, "feat", "drop legacy format").WithScope("config").WithBreakingChange(true),
			expected: "feat(config)!: drop legacy format",
		},
		{
			name:     "with body",
			commit:   mustNew(t, "feat", "add user preferences").WithBody("Store preferences in the repo config.\nMigrate existing settings on first run."),
			expected: "feat: add user preferences\n\nStore preferences in the repo config.\nMigrate existing settings on first run.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.expected, Format(tt.commit))
			require.Equal(t, tt.expected, tt.commit.String())
		})
	}
}

// Every value Parse produces must survive a format/parse round trip unchanged.
func TestFormatRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"docs: update readme",
		"fix(parser): handle empty input",
		"feat!: drop legacy config format",
		"feat(config)!: drop legacy config format",
		"FIX(Parser): casing preserved through the round trip",
		"feat: add user preferences\n\nStore preferences in the repo config.\nMigrate existing settings on first run.",
		"fix: tighten ref parsing\n\nBREAKING CHANGE: refs with spaces are now rejected",
		"chore: bump minimum git version\n\nBREAKING-CHANGE: git 2.30 is now required",
		"refactor: rework metadata storage\n\nMetadata now lives in refs.\n\nBREAKING CHANGE: old metadata files are ignored",
		"docs: clarify usage: examples and flags",
		"  \n feat(cli): leading and trailing noise \n\n\n  body survives normalization  \n",
	}

	for _, input := range inputs {
		commit, err := Parse(input)
		require.NoError(t, err, "input: %q", input)

		reparsed, err := Parse(Format(commit))
		require.NoError(t, err, "formatted output failed to parse: %q", Format(commit))
		require.Equal(t, commit, reparsed, "round trip changed the value for input %q", input)
	}
}

// Formatting normalizes hand-written spacing: extra blank lines between the
// header and body collapse to the canonical single blank line.
func TestFormatNormalizes(t *testing.T) {
	t.Parallel()

	commit, err := Parse("feat: add thing\n\n\n\nbody text")
	require.NoError(t, err)
	require.Equal(t, "feat: add thing\n\nbody text", Format(commit))
}

func mustNew(t *testing.T, commitType, description string) CommitMessage {
	t.Helper()
	commit, err := New(commitType, description)
	require.NoError(t, err)
	return commit
}
