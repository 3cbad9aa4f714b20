package recipes

import "strings"

// ParseLines splits a free-text block into one entry per line. Each line is
// trimmed and blank lines are dropped, so "flour\nsugar\n\neggs" yields
// ["flour", "sugar", "eggs"].
func ParseLines(text string) Lines {
	raw := strings.Split(text, "\n")
	lines := make(Lines, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func ParseCategory(value string) (Category, bool) {
	candidate := Category(strings.ToLower(strings.TrimSpace(value)))
	for _, category := range Categories {
		if category == candidate {
			return category, true
		}
	}
	return "", false
}

// ParseStatus accepts only the exact status names.
func ParseStatus(value string) (Status, bool) {
	for _, status := range Statuses {
		if string(status) == value {
			return status, true
		}
	}
	return "", false
}
