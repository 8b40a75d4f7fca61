package report

import "strings"

// BuildText renders the trail lines as a plain-text report.
func BuildText(lines []string) []byte {
	return []byte(strings.Join(lines, "\n") + "\n")
}
