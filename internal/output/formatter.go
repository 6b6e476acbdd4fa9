package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"commitmsg.dev/commitmsg/conventional"
)

var (
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	typeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	scopeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	descStyle     = lipgloss.NewStyle()
	bodyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	breakingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	checkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// DetectColorProfile disables color output when stdout is not a terminal
func DetectColorProfile() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// RenderCommit renders the parsed fields of a commit message as an aligned
// field listing
func RenderCommit(commit conventional.CommitMessage) string {
	var b strings.Builder

	// Header line of the canonical form
	header, _, _ := strings.Cut(commit.String(), "\n")
	b.WriteString(checkStyle.Render("✓") + " " + header + "\n\n")

	writeField(&b, "type", typeStyle.Render(commit.CommitType()))

	if scope, ok := commit.Scope(); ok {
		writeField(&b, "scope", scopeStyle.Render(scope))
	} else {
		writeField(&b, "scope", dimStyle.Render("(none)"))
	}

	writeField(&b, "description", descStyle.Render(commit.Description()))

	if commit.IsBreakingChange() {
		writeField(&b, "breaking", breakingStyle.Render("yes"))
	} else {
		writeField(&b, "breaking", dimStyle.Render("no"))
	}

	if body, ok := commit.Body(); ok {
		lines := strings.Split(body, "\n")
		writeField(&b, "body", bodyStyle.Render(lines[0]))
		for _, line := range lines[1:] {
			writeField(&b, "", bodyStyle.Render(line))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderParseError renders a parse failure for terminal display
func RenderParseError(err error) string {
	return errorStyle.Render("✗ " + err.Error())
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s%s\n", labelStyle.Render(label), value)
}
