// Package tui renders the fix-all preview dialog as a Bubble Tea program.
package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fixpick/fixpick/internal/preview"
	"github.com/fixpick/fixpick/internal/textchange"
)

// Result carries the user-approved changes after the dialog closed with
// Apply. The caller applies them to the real document.
type Result struct {
	Changes []textchange.TextChange
}

// Model is the Bubble Tea model wrapping an initialized preview dialog.
type Model struct {
	dialog *preview.Dialog

	vp     viewport.Model
	cursor int // row under the cursor in the edit list

	width  int
	height int

	showHelp bool
	applied  bool
}

// New wraps an initialized dialog. The cursor starts on the root row, so
// the preview opens with every enabled edit applied.
func New(d *preview.Dialog) Model {
	m := Model{dialog: d}
	m.dialog.Dispatch(preview.Select{Row: 0})
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.refreshPreview()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Cancel):
			return m, tea.Quit

		case key.Matches(msg, keys.Apply):
			m.applied = true
			return m, tea.Quit

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.dialog.Nodes())-1 {
				m.cursor++
				m.dialog.Dispatch(preview.Select{Row: m.cursor})
				m.refreshPreview()
			}

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.dialog.Dispatch(preview.Select{Row: m.cursor})
				m.refreshPreview()
			}

		case key.Matches(msg, keys.Toggle):
			m.dialog.Dispatch(preview.Toggle{Row: m.cursor})
			m.refreshPreview()

		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
		}
	}

	return m, nil
}

// layout splits the vertical space between the edit list and the preview.
func (m *Model) layout() {
	listHeight := m.listHeight()
	vpHeight := m.height - listHeight - 7 // header, borders, status bar
	if vpHeight < 3 {
		vpHeight = 3
	}
	vpWidth := m.width - 4
	if vpWidth < 10 {
		vpWidth = 10
	}

	if m.vp.Width == 0 {
		m.vp = viewport.New(vpWidth, vpHeight)
	} else {
		m.vp.Width = vpWidth
		m.vp.Height = vpHeight
	}
}

func (m Model) listHeight() int {
	rows := len(m.dialog.Nodes())
	max := m.height / 3
	if max < 4 {
		max = 4
	}
	if rows > max {
		return max
	}
	if rows < 2 {
		return 2
	}
	return rows
}

// refreshPreview re-renders the viewport from the dialog's preview state and
// centers it on the first applied change.
func (m *Model) refreshPreview() {
	if m.vp.Width == 0 {
		return
	}
	st := m.dialog.Preview()
	m.vp.SetContent(renderPreviewText(st))

	if st.Line >= 0 {
		offset := st.Line - m.vp.Height/2
		if offset < 0 {
			offset = 0
		}
		m.vp.SetYOffset(offset)
	} else {
		m.vp.SetYOffset(0)
	}
}

// Applied reports whether the dialog was closed with Apply.
func (m Model) Applied() bool { return m.applied }

// Run opens the dialog in the alternate screen and returns the approved
// changes, or nil when cancelled.
func Run(d *preview.Dialog) (*Result, error) {
	p := tea.NewProgram(New(d), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := final.(Model)
	if !m.applied {
		return nil, nil
	}
	return &Result{Changes: slices.Collect(d.Approved())}, nil
}
