package doctext

import "strings"

const tabWidth = 8

// Tabs are expanded before margin detection, so \t is absent here.
const leadingSpace = " \v\f\r"

// Clean normalises a docstring-like text: tabs are expanded, the
// common leading indentation of every line after the first is
// stripped, the first line loses its leading whitespace
// unconditionally, and leading and trailing blank lines are dropped.
func Clean(s string) string {
	lines := strings.Split(expandTabs(s), "\n")

	// Smallest indent among non-blank lines after the first.
	margin := -1
	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, leadingSpace)
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(trimmed)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}

	lines[0] = strings.TrimLeft(lines[0], leadingSpace)
	if margin > 0 {
		for i := 1; i < len(lines); i++ {
			if margin < len(lines[i]) {
				lines[i] = lines[i][margin:]
			} else {
				lines[i] = ""
			}
		}
	}

	// Drop trailing, then leading, blank lines.
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	start := 0
	for start < end && lines[start] == "" {
		start++
	}

	return strings.Join(lines[start:end], "\n")
}

// expandTabs replaces tabs with spaces up to the next multiple of
// tabWidth, resetting the column at line breaks.
func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := tabWidth - col%tabWidth
			for range n {
				b.WriteByte(' ')
			}
			col += n
		case '\n', '\r':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}
