// Package reflow undoes hard line wrapping in extracted text.
//
// Lines inside a paragraph are trimmed and joined with a single space.
// A line ending in a hyphen is treated as a broken word and joined to the
// next line without the hyphen or a space. Paragraphs are separated by
// blank lines and are reflowed independently.
package reflow

import "strings"

// Reflow joins soft-wrapped lines of every paragraph in text.
// Whitespace-only paragraphs are dropped; the remaining paragraphs are
// separated by exactly one blank line. Reflow(Reflow(s)) == Reflow(s).
func Reflow(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	var paragraphs []string
	for _, group := range strings.Split(strings.Join(lines, "\n"), "\n\n") {
		if p := joinLines(strings.Split(group, "\n")); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

// joinLines merges the lines of one paragraph into a single line.
func joinLines(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(line)
			continue
		}
		joined := b.String()
		b.Reset()
		if strings.HasSuffix(joined, "-") {
			b.WriteString(joined[:len(joined)-1])
		} else {
			b.WriteString(joined)
			b.WriteByte(' ')
		}
		b.WriteString(line)
	}
	return strings.TrimSpace(b.String())
}
