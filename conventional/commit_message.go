// Package conventional parses and formats git commit messages following the
// Conventional Commits v1.0.0 specification.
//
// A message is made up of a header line (a type, an optional scope, and a
// description), an optional body, and an optional breaking-change marker
// carried either as a trailing "!" on the header or as a BREAKING CHANGE
// footer line in the body.
package conventional

import (
	"fmt"
	"strings"
)

// CommitMessage is a parsed Conventional Commits message. It is an immutable
// value: accessors are read-only and the With* methods return modified copies.
type CommitMessage struct {
	commitType  string
	description string
	scope       string // empty means absent
	body        string // empty means absent
	breaking    bool
}

// New creates a CommitMessage from a commit type and a description.
// Both are trimmed and must be non-empty.
func New(commitType, description string) (CommitMessage, error) {
	commitType = strings.TrimSpace(commitType)
	description = strings.TrimSpace(description)
	if commitType == "" {
		return CommitMessage{}, fmt.Errorf("commit type must not be empty")
	}
	if description == "" {
		return CommitMessage{}, fmt.Errorf("description must not be empty")
	}
	return CommitMessage{
		commitType:  commitType,
		description: description,
	}, nil
}

// CommitType returns the commit type token (e.g. "feat", "fix").
// Case is preserved as given.
func (c CommitMessage) CommitType() string {
	return c.commitType
}

// Description returns the short summary text from the header line.
func (c CommitMessage) Description() string {
	return c.description
}

// Scope returns the scope and whether one is present.
// A present scope is never empty.
func (c CommitMessage) Scope() (string, bool) {
	return c.scope, c.scope != ""
}

// Body returns the body text and whether one is present.
// A present body is trimmed of leading/trailing blank lines.
func (c CommitMessage) Body() (string, bool) {
	return c.body, c.body != ""
}

// IsBreakingChange reports whether the header carried a trailing "!" or the
// body carried a breaking-change footer line.
func (c CommitMessage) IsBreakingChange() bool {
	return c.breaking
}

// IsNewFeature reports whether the commit type is "feat" (case-insensitive).
func (c CommitMessage) IsNewFeature() bool {
	return strings.EqualFold(c.commitType, "feat")
}

// IsBugFix reports whether the commit type is "fix" (case-insensitive).
func (c CommitMessage) IsBugFix() bool {
	return strings.EqualFold(c.commitType, "fix")
}

// WithScope returns a copy with the scope set. The scope is trimmed; a blank
// scope clears it.
func (c CommitMessage) WithScope(scope string) CommitMessage {
	c.scope = strings.TrimSpace(scope)
	return c
}

// WithBody returns a copy with the body set. The body is trimmed of
// leading/trailing whitespace; a blank body clears it.
func (c CommitMessage) WithBody(body string) CommitMessage {
	c.body = strings.TrimSpace(body)
	return c
}

// WithBreakingChange returns a copy with the breaking-change flag set.
func (c CommitMessage) WithBreakingChange(breaking bool) CommitMessage {
	c.breaking = breaking
	return c
}
