// Package ingestion provides text normalization and plain-text job posting
// ingestion. Normalization is the shared cleanup step every other component
// consumes; it never fails and is idempotent.
package ingestion

import (
	"strings"
	"unicode"
)

// Normalize collapses consecutive whitespace, including non-breaking and
// zero-width Unicode spaces, to a single ASCII space and trims the result.
// Empty input yields empty output. Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(text))
	pendingSpace := false
	wrote := false

	for _, r := range text {
		if isCollapsible(r) {
			if wrote {
				pendingSpace = true
			}
			continue
		}
		if pendingSpace {
			sb.WriteByte(' ')
			pendingSpace = false
		}
		sb.WriteRune(r)
		wrote = true
	}

	return sb.String()
}

// isCollapsible reports whether r should be folded into a single space.
// Zero-width characters have no visual width but still break term matching
// if left in place.
func isCollapsible(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '\u200B', '\u200C', '\u200D', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Cf, r)
}

// FirstLine returns the first non-empty line of text, trimmed. Used to guess
// a title from a manually supplied description.
func FirstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
