package timesort

import "regexp"

// space matches the same characters as a JavaScript \s: ASCII whitespace,
// vertical tab, every Unicode space separator (U+00A0, U+3000, ...), the
// line and paragraph separators and the byte order mark. RE2's \s is ASCII
// only, so full-width indentation would otherwise not classify.
const space = `[\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}]`

var (
	// bulletPattern matches "-", "*" or "+" after optional indentation,
	// optionally followed by a task checkbox "[ ]" or "[x]". Everything
	// after the marker is optional, so "-foo" and "---" classify too.
	bulletPattern = regexp.MustCompile(`^` + space + `*[-*+]` + space + `*(\[[ x]\]` + space + `*)?`)

	// numberedPattern matches "1.", "12. " and so on after optional
	// indentation.
	numberedPattern = regexp.MustCompile(`^` + space + `*\d+\.` + space + `*`)
)

// IsListItem reports whether line starts with a Markdown list marker.
// Only the leading structure is inspected; the rest of the line is ignored.
func IsListItem(line string) bool {
	return bulletPattern.MatchString(line) || numberedPattern.MatchString(line)
}
