package conventional

import "strings"

const (
	// headerSeparator splits the header from the description on the first line
	headerSeparator = ": "

	// Footer tokens that mark a breaking change regardless of header syntax
	breakingFooterSpace  = "BREAKING CHANGE: "
	breakingFooterHyphen = "BREAKING-CHANGE: "
)

// Parse parses a raw commit message into a CommitMessage.
// On failure it returns a *ParseError wrapping one of the sentinel errors;
// there is no partial result.
func Parse(message string) (CommitMessage, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return CommitMessage{}, newParseError(message, ErrEmptyInput)
	}

	lines := strings.Split(trimmed, "\n")
	headerLine := strings.TrimSpace(lines[0])
	if headerLine == "" {
		return CommitMessage{}, newParseError(lines[0], ErrEmptyHeader)
	}

	header, description, ok := splitHeader(headerLine)
	if !ok {
		return CommitMessage{}, newParseError(headerLine, ErrMissingTypeSeparator)
	}

	breaking := strings.HasSuffix(header, "!")
	header = strings.TrimSuffix(header, "!")

	commitType, scope, err := splitTypeScope(header)
	if err != nil {
		return CommitMessage{}, newParseError(header, err)
	}

	body, footerBreaking := collectBody(lines[1:])
	if footerBreaking {
		// The footer can only ever turn the flag on, never off
		breaking = true
	}

	return CommitMessage{
		commitType:  commitType,
		description: description,
		scope:       scope,
		body:        body,
		breaking:    breaking,
	}, nil
}

// TryParse is the non-failing variant of Parse. It reports ok = false for any
// input Parse would reject and discards the error detail.
func TryParse(message string) (CommitMessage, bool) {
	commit, err := Parse(message)
	if err != nil {
		return CommitMessage{}, false
	}
	return commit, true
}

// splitHeader splits the header line on the first ": " into the type/scope
// part and the description. Only the first occurrence governs the split, so a
// description may itself contain ": ". Both halves are trimmed and must be
// non-empty.
func splitHeader(line string) (header, description string, ok bool) {
	before, after, found := strings.Cut(line, headerSeparator)
	if !found {
		return "", "", false
	}
	header = strings.TrimSpace(before)
	description = strings.TrimSpace(after)
	if header == "" || description == "" {
		return "", "", false
	}
	return header, description, true
}

// splitTypeScope parses a header of the form "type" or "type(scope)".
// An empty type or empty scope segment (e.g. "feat()") is a format error,
// not an absent-scope signal.
func splitTypeScope(header string) (commitType, scope string, err error) {
	header = strings.TrimSuffix(header, ")")
	parts := strings.Split(header, "(")

	switch len(parts) {
	case 1:
		commitType = strings.TrimSpace(parts[0])
		if commitType == "" {
			return "", "", ErrInvalidScopeSyntax
		}
		return commitType, "", nil
	case 2:
		commitType = strings.TrimSpace(parts[0])
		scope = strings.TrimSpace(parts[1])
		if commitType == "" || scope == "" {
			return "", "", ErrInvalidScopeSyntax
		}
		return commitType, scope, nil
	default:
		return "", "", ErrMultipleScopesSpecified
	}
}

// collectBody joins the remaining lines into the body, preserving the
// original line breaks, and reports whether any line carries a
// breaking-change footer token.
func collectBody(lines []string) (body string, breaking bool) {
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, breakingFooterSpace) || strings.HasPrefix(t, breakingFooterHyphen) {
			breaking = true
		}
	}

	body = strings.TrimSpace(strings.Join(lines, "\n"))
	return body, breaking
}
