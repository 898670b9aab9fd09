// Package textchange computes and applies span-based edits to document text.
package textchange

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Span is a half-open byte range [Start, End) in the base document.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// TextChange replaces the base-document bytes in Span with NewText.
type TextChange struct {
	Span    Span
	NewText string
}

// Compute returns the ordered textual differences between base and changed.
// Each contiguous run of deletions and insertions becomes one change. The
// result is sorted by span start and spans never overlap.
func Compute(base, changed string) []TextChange {
	if base == changed {
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(base, changed, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var changes []TextChange
	pos := 0 // current offset in base

	cur := TextChange{Span: Span{Start: -1}}
	flush := func() {
		if cur.Span.Start >= 0 {
			changes = append(changes, cur)
		}
		cur = TextChange{Span: Span{Start: -1}}
	}
	open := func() {
		if cur.Span.Start < 0 {
			cur = TextChange{Span: Span{Start: pos, End: pos}}
		}
	}

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			pos += len(d.Text)

		case diffmatchpatch.DiffDelete:
			open()
			cur.Span.End += len(d.Text)
			pos += len(d.Text)

		case diffmatchpatch.DiffInsert:
			open()
			cur.NewText += d.Text
		}
	}
	flush()

	return changes
}

// Apply returns base with the given changes applied. Changes must be sorted
// by span start and non-overlapping, as produced by Compute.
func Apply(base string, changes []TextChange) string {
	if len(changes) == 0 {
		return base
	}

	var b strings.Builder
	pos := 0
	for _, c := range changes {
		start, end := c.Span.Start, c.Span.End
		if start < pos || end > len(base) {
			continue // out of order or out of range; skip rather than corrupt
		}
		b.WriteString(base[pos:start])
		b.WriteString(c.NewText)
		pos = end
	}
	b.WriteString(base[pos:])
	return b.String()
}

// Delta returns the length difference the change introduces when applied.
func (c TextChange) Delta() int { return len(c.NewText) - c.Span.Len() }

// LineAt returns the 0-based line index containing the byte offset.
func LineAt(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	return strings.Count(text[:offset], "\n")
}

// LineContaining returns the full line of text (without its newline) that
// contains the byte offset.
func LineContaining(text string, offset int) string {
	if offset > len(text) {
		offset = len(text)
	}
	start := strings.LastIndexByte(text[:offset], '\n') + 1
	end := strings.IndexByte(text[offset:], '\n')
	if end < 0 {
		return text[start:]
	}
	return text[start : offset+end]
}
