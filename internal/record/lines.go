package record

import "strings"

// splitRawLines splits s on line boundaries (\n, \r\n, or \r) without
// keeping terminators and without producing a trailing empty element
// for a terminal newline. Empty input yields nil.
func splitRawLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// SplitLines converts raw text into comparison units: one element per
// line, each terminated by a single newline for diff compatibility.
// When stripWS is true, leading and trailing whitespace is trimmed
// from each line before the terminator is appended. Empty input yields
// an empty sequence.
func SplitLines(s string, stripWS bool) []string {
	raw := splitRawLines(s)
	if len(raw) == 0 {
		return nil
	}
	lines := make([]string, len(raw))
	for i, line := range raw {
		if stripWS {
			line = strings.TrimSpace(line)
		}
		lines[i] = line + "\n"
	}
	return lines
}
