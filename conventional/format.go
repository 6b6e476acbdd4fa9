package conventional

import "strings"

// Format renders the canonical textual form of a commit message.
// It is the inverse of Parse for every value Parse produces: the header is
// "type(scope)!: description" with the scope and "!" included only when
// present, followed by one blank line and the body when one is present.
func Format(c CommitMessage) string {
	return c.String()
}

// String renders the canonical textual form of the message.
func (c CommitMessage) String() string {
	var b strings.Builder

	b.WriteString(c.commitType)
	if c.scope != "" {
		b.WriteString("(")
		b.WriteString(c.scope)
		b.WriteString(")")
	}
	if c.breaking {
		b.WriteString("!")
	}
	b.WriteString(headerSeparator)
	b.WriteString(c.description)

	if c.body != "" {
		b.WriteString("\n\n")
		b.WriteString(c.body)
	}

	return b.String()
}
