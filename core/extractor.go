package core

import (
	"regexp"
	"strings"
	"unicode"
)

// separatorRun matches anything that cannot appear in a raw handle token.
var separatorRun = regexp.MustCompile(`[^A-Za-z0-9._]+`)

// NormalizeHandle lowercases s and drops every character outside [a-z0-9._].
// The result is only usable when its length is within the handle bounds.
func NormalizeHandle(s string) (string, bool) {
	lowered := strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(lowered))

	// Multi-byte runes never fall in the allowed ASCII range, so a byte walk is enough.
	for i := 0; i < len(lowered); i++ {
		if c := lowered[i]; isHandleByte(c) {
			b.WriteByte(c)
		}
	}

	handle := b.String()

	if len(handle) < MinHandleLength || len(handle) > MaxHandleLength {
		return "", false
	}

	return handle, true
}

func isHandleByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '.' || c == '_'
}

// ExtractHandles turns pasted text into a set of handles, one candidate per line.
// Lines that yield no valid handle are skipped.
func ExtractHandles(text string) HandleSet {
	handles := make(HandleSet)

	for _, line := range strings.Split(text, "\n") {
		if handle, ok := extractLine(line); ok {
			handles.Add(handle)
		}
	}

	return handles
}

// extractLine tries the whole line first and falls back to the first token.
// A whole-line match is never re-split.
func extractLine(line string) (string, bool) {
	line = strings.TrimFunc(line, isTrimmable)

	if line == "" {
		return "", false
	}

	if handle, ok := NormalizeHandle(line); ok {
		return handle, true
	}

	// The first token is empty when the line starts with a separator.
	first := separatorRun.Split(line, 2)[0]

	return NormalizeHandle(first)
}

// isTrimmable follows unicode.IsSpace, so NEL (U+0085) and NBSP (U+00A0)
// are trimmed as well, plus a byte order mark.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
