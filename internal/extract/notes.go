package extract

import (
	"regexp"
	"strings"
)

// notesHeader marks an external annotation block ("Notes:" or
// "Doctor's notes:"). The block runs to the next blank line.
var notesHeader = regexp.MustCompile(`(?i)^(?:doctor'?s?\s+)?notes?\s*:\s*(.*)$`)

// ExtractDoctorNotes returns the annotation block verbatim, or "" when the
// document carries none. Only the first block is taken.
func ExtractDoctorNotes(text string) string {
	raw := strings.Split(text, "\n")
	for i, line := range raw {
		m := notesHeader.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		var parts []string
		if m[1] != "" {
			parts = append(parts, m[1])
		}
		for _, next := range raw[i+1:] {
			t := strings.TrimSpace(next)
			if t == "" {
				break
			}
			parts = append(parts, t)
		}
		return strings.Join(parts, "\n")
	}
	return ""
}
