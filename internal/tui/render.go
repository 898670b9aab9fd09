package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fixpick/fixpick/internal/editor"
	"github.com/fixpick/fixpick/internal/preview"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	list := m.renderEditList()
	previewPane := previewStyle.Width(m.width - 2).Render(m.vp.View())
	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, header, list, previewPane, statusBar)
}

func (m Model) renderHeader() string {
	action := m.dialog.Action()
	name := m.dialog.Editor().Name()

	title := diagnosticStyle.Render(fmt.Sprintf("Fix all '%s'", action.DiagnosticID))
	doc := fmt.Sprintf("%s  (%s)", name, editor.LanguageFor(name))
	return headerStyle.Render(title + "  " + doc)
}

func (m Model) renderEditList() string {
	nodes := m.dialog.Nodes()
	height := m.listHeight()
	width := m.width - 6 // borders + padding + checkbox column

	// Keep the cursor visible when there are more rows than fit.
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := start + height
	if end > len(nodes) {
		end = len(nodes)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i, nodes[i], width))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}

	return editListStyle.Width(m.width - 2).Render(b.String())
}

func (m Model) renderRow(row int, n preview.Node, width int) string {
	var line string
	if n.IsRoot() {
		line = "▾ " + n.Label
	} else {
		box := checkboxOnStyle.Render("[✓]")
		if !n.Enabled {
			box = checkboxOffStyle.Render("[ ]")
		}
		line = "  " + box + " " + truncate(n.Label, width-8)
	}

	switch {
	case row == m.cursor:
		return editRowCursorStyle.Width(width).Render(line)
	case n.IsRoot():
		return rootRowStyle.Render(line)
	case !n.Enabled:
		return editRowDisabledStyle.Render(line)
	default:
		return editRowStyle.Render(line)
	}
}

// renderPreviewText lays out the preview document with line numbers and
// marks the replaced range of the first applied change.
func renderPreviewText(st preview.PreviewState) string {
	lines := strings.Split(st.Text, "\n")

	var b strings.Builder
	offset := 0
	for i, line := range lines {
		b.WriteString(lineNumberStyle.Render(fmt.Sprintf("%d ", i+1)))
		b.WriteByte(' ')
		b.WriteString(styleLine(line, offset, st))
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
		offset += len(line) + 1
	}
	return b.String()
}

// styleLine highlights the part of the line that falls inside the replaced
// range, if any.
func styleLine(line string, offset int, st preview.PreviewState) string {
	selStart, selEnd := st.Sel.Start, st.Sel.End
	lineEnd := offset + len(line)
	if st.Line < 0 || selStart == selEnd || selEnd <= offset || selStart >= lineEnd {
		return line
	}

	lo := selStart - offset
	if lo < 0 {
		lo = 0
	}
	hi := selEnd - offset
	if hi > len(line) {
		hi = len(line)
	}
	return line[:lo] + changedRangeStyle.Render(line[lo:hi]) + line[hi:]
}

func (m Model) renderStatusBar() string {
	nodes := m.dialog.Nodes()
	total := len(nodes) - 1
	enabled := 0
	for _, n := range nodes[1:] {
		if n.Enabled {
			enabled++
		}
	}

	left := fmt.Sprintf(" %d/%d edits enabled", enabled, total)
	right := "space toggle  enter apply  esc cancel  ? help "

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return statusBarStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("fixpick — Keyboard Shortcuts"))
	b.WriteString("\n\n")

	helpItems := []struct{ key, desc string }{
		{"↑/k", "Previous edit"},
		{"↓/j", "Next edit"},
		{"space", "Toggle the edit under the cursor"},
		{"enter", "Apply the enabled edits and close"},
		{"esc/q", "Cancel without applying"},
		{"?", "Toggle this help"},
	}

	for _, item := range helpItems {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			helpKeyStyle.Width(12).Render(item.key),
			item.desc,
		))
	}

	b.WriteString("\n")
	b.WriteString(helpBarStyle.Render("Press ? to close help"))

	return b.String()
}

func truncate(s string, max int) string {
	if max <= len("…") || len(s) <= max {
		return s
	}
	return s[:max-len("…")] + "…"
}
