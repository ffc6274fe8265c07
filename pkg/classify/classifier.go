package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// maxNameLength is the exclusive upper bound on the first line's
	// length for it to be treated as the candidate name.
	maxNameLength = 80
	// minHeaderLength and maxHeaderLength are the exclusive bounds on an
	// all-caps section header.
	minHeaderLength = 3
	maxHeaderLength = 50

	bulletGlyph = "•"
	emDash      = "—"
)

// escaper replaces the characters a markup-interpreting sink would treat
// as structure. Applied to output text only; predicates run on the raw
// trimmed line.
//
//nolint:gochecknoglobals // Escape table constant
var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Classify splits text into lines and assigns each one a role in a single
// forward pass. It is total and deterministic: it emits exactly one Line
// per input line, never fails, and identical input always yields the
// identical role sequence.
func Classify(text string) (lines []Line) {
	state := awaitingName

	raw := strings.Split(text, "\n")
	lines = make([]Line, 0, len(raw))
	for _, rawLine := range raw {
		var line Line
		line, state = classifyLine(rawLine, state)
		lines = append(lines, line)
	}

	return lines
}

// classifyLine assigns a role to one line and advances the header-zone
// state. Rules are evaluated in strict precedence order; the first match
// wins.
func classifyLine(rawLine string, state headerState) (line Line, next headerState) {
	next = state
	trimmed := strings.TrimSpace(rawLine)

	// Blank lines become spacing and leave the header zone untouched.
	if trimmed == "" {
		line = Line{Role: Blank}
		return line, next
	}

	escaped := escaper.Replace(trimmed)
	length := utf8.RuneCountInString(trimmed)

	// The first non-blank line closes the name window whether or not it
	// qualifies as the name; the contact window only opens when it does.
	if state == awaitingName {
		next = steady
		if length < maxNameLength {
			line = Line{Role: Name, Text: escaped}
			next = awaitingContact
			return line, next
		}
	}

	// The contact window covers exactly one non-blank line.
	if state == awaitingContact {
		next = steady
		if strings.Contains(trimmed, "|") {
			line = Line{Role: ContactLine, Text: escaped}
			return line, next
		}
	}

	switch {
	case isUpper(trimmed) && length > minHeaderLength && length < maxHeaderLength:
		line = Line{Role: SectionHeader, Text: escaped}
	case strings.Contains(trimmed, emDash) && !strings.HasPrefix(trimmed, bulletGlyph):
		line = Line{Role: SubHeading, Text: escaped}
	case strings.HasPrefix(trimmed, bulletGlyph):
		line = Line{Role: Bullet, Text: escaped}
	default:
		// Body absorbs everything else, date/location lines included.
		line = Line{Role: Body, Text: escaped}
	}

	return line, next
}

// isUpper reports whether a line is fully upper-case: at least one cased
// character and no lower- or title-case characters. Digits and punctuation
// are neutral, so a bare "2023" is not upper-case.
func isUpper(s string) (upper bool) {
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			upper = false
			return upper
		}
		if unicode.IsUpper(r) {
			upper = true
		}
	}
	return upper
}
