package textrules

import "strings"

// TrimEnds removes leading and trailing whitespace. The inner text is
// left untouched.
func TrimEnds(text string) string {
	return strings.TrimSpace(text)
}

// CollapseWhitespace replaces every run of Unicode whitespace, newlines
// included, with a single space and trims the ends. Multi-line text
// comes out as a single line.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// StripAllWhitespace removes every whitespace character, inner ones
// included.
func StripAllWhitespace(text string) string {
	return strings.Join(strings.Fields(text), "")
}

// RemoveBlankLines drops lines that are empty after trimming and joins
// the survivors with single newlines.
func RemoveBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// DedupeLines drops a line when an identical line was already kept.
// Comparison is exact, untrimmed; first occurrence order is preserved.
func DedupeLines(text string) string {
	lines := strings.Split(text, "\n")
	seen := make(map[string]struct{}, len(lines))
	kept := lines[:0]
	for _, line := range lines {
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
