// Package tui provides the full-screen commit message editor.
package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"commitmsg.dev/commitmsg/conventional"
	"commitmsg.dev/commitmsg/internal/output"
)

// EditorModel is the bubbletea model for the live-preview message editor
type EditorModel struct {
	textarea textarea.Model
	styles   editorStyles
	accepted bool
	quitting bool
}

type editorStyles struct {
	titleStyle lipgloss.Style
	helpStyle  lipgloss.Style
}

// NewEditorModel creates an editor model seeded with an initial message
func NewEditorModel(initial string) EditorModel {
	ta := textarea.New()
	ta.Placeholder = "feat(scope): description"
	ta.SetWidth(72)
	ta.SetHeight(8)
	ta.SetValue(initial)
	ta.Focus()

	return EditorModel{
		textarea: ta,
		styles: editorStyles{
			titleStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
			helpStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
	}
}

func (m EditorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+s":
			// Only accept a message that parses
			if _, ok := conventional.TryParse(m.textarea.Value()); ok {
				m.accepted = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m EditorModel) View() string {
	if m.quitting || m.accepted {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.titleStyle.Render("Commit message"))
	b.WriteString("\n\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderPreview())
	b.WriteString("\n\n")
	b.WriteString(m.styles.helpStyle.Render("ctrl+s accept • esc cancel"))
	b.WriteString("\n")

	return b.String()
}

// renderPreview shows the parsed fields for the current text, or the parse
// error that keeps the accept key disabled
func (m EditorModel) renderPreview() string {
	value := m.textarea.Value()
	if strings.TrimSpace(value) == "" {
		return m.styles.helpStyle.Render("start typing to see the parsed message")
	}

	commit, err := conventional.Parse(value)
	if err != nil {
		return output.RenderParseError(err)
	}
	return output.RenderCommit(commit)
}

// Accepted reports whether the user accepted the message
func (m EditorModel) Accepted() bool {
	return m.accepted
}

// Value returns the raw text in the editor
func (m EditorModel) Value() string {
	return m.textarea.Value()
}

// IsTTY returns true if we can use a TTY for the interactive editor
func IsTTY() bool {
	if !((isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))) {
		return false
	}
	// Also try to open /dev/tty to verify it's actually available
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// RunEditor runs the editor and returns the accepted message in canonical
// form, or an empty string if the user canceled
func RunEditor(initial string) (string, error) {
	p := tea.NewProgram(NewEditorModel(initial), tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	final, err := p.Run()
	if err != nil {
		return "", err
	}

	model, ok := final.(EditorModel)
	if !ok || !model.Accepted() {
		return "", nil
	}

	commit, err := conventional.Parse(model.Value())
	if err != nil {
		return "", err
	}
	return conventional.Format(commit), nil
}
