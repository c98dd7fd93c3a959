package timesort

import "strings"

// lineSeparator splits and joins lines. A trailing "\r" stays on its line,
// so CRLF text round-trips unchanged.
const lineSeparator = "\n"

// SplitLines splits text into lines on "\n". The empty string is a single
// empty line, matching how an editor presents an empty document.
func SplitLines(text string) []string {
	return strings.Split(text, lineSeparator)
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, lineSeparator)
}
