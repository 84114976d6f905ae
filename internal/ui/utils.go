package ui

import "strings"

// CN merges class lists, dropping exact duplicates. Conflicting utilities
// (p-4 vs p-6) are both kept; the stylesheet decides.
func CN(inputs ...string) string {
	var classes []string
	seen := make(map[string]bool)

	for _, input := range inputs {
		for _, part := range strings.Fields(input) {
			if !seen[part] {
				classes = append(classes, part)
				seen[part] = true
			}
		}
	}
	return strings.Join(classes, " ")
}

func joinClasses(classes []string) string {
	return strings.Join(classes, " ")
}
