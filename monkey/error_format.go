package monkey

import (
	"fmt"
	"strconv"
	"strings"
)

// formatCodeFrame renders the source line at pos with a caret under the
// column. Columns count bytes, matching the lexer.
func formatCodeFrame(source string, pos Position) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}
	lineText := strings.TrimRight(lines[pos.Line-1], "\r")

	column := min(max(pos.Column, 1), len(lineText)+1)

	lineLabel := strconv.Itoa(pos.Line)
	gutter := strings.Repeat(" ", len(lineLabel))
	caret := strings.Repeat(" ", column-1) + "^"

	return fmt.Sprintf(" %s | %s\n %s | %s", lineLabel, lineText, gutter, caret)
}
