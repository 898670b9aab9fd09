package textchange

import "strings"

// DefaultLabelWidth caps display labels before the UI applies its own layout.
const DefaultLabelWidth = 120

// Labels derives a display label for each change: the containing line of the
// replacement in the changed text, or the replacement text itself when it is
// longer than that line. Labels are newline-normalized to a single line,
// trimmed, and truncated with an ellipsis.
func Labels(changed string, changes []TextChange) []string {
	labels := make([]string, len(changes))

	delta := 0 // cumulative length shift of prior changes
	for i, c := range changes {
		offset := c.Span.Start + delta
		line := LineContaining(changed, offset)
		if len(c.NewText) > len(line) {
			line = c.NewText
		}
		labels[i] = Ellipsize(line, DefaultLabelWidth)
		delta += c.Delta()
	}

	return labels
}

// Ellipsize collapses a string to a single trimmed line of at most max bytes,
// marking collapsed newlines and truncation with an ellipsis.
func Ellipsize(s string, max int) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSpace(s)
	s = strings.Join(strings.Fields(strings.ReplaceAll(s, "\n", " … ")), " ")
	if max > len("…") && len(s) > max {
		s = s[:max-len("…")] + "…"
	}
	return s
}
