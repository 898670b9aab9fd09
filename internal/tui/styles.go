package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	colorRed       = lipgloss.Color("#ff5555")
	colorGreen     = lipgloss.Color("#50fa7b")
	colorYellow    = lipgloss.Color("#f1fa8c")
	colorBlue      = lipgloss.Color("#8be9fd")
	colorPurple    = lipgloss.Color("#bd93f9")
	colorDim       = lipgloss.Color("#6272a4")
	colorBgLight   = lipgloss.Color("#343746")
	colorFg        = lipgloss.Color("#f8f8f2")
	colorBorder    = lipgloss.Color("#44475a")
	colorHighlight = lipgloss.Color("#44475a")
)

// Style definitions.
var (
	// Edit list styles
	editListStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	editRowStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	editRowCursorStyle = lipgloss.NewStyle().
				Foreground(colorFg).
				Background(colorHighlight).
				Bold(true)

	editRowDisabledStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Strikethrough(true)

	rootRowStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	checkboxOnStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	checkboxOffStyle = lipgloss.NewStyle().
				Foreground(colorRed)

	// Preview pane styles
	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Width(5).
			Align(lipgloss.Right)

	changedRangeStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Reverse(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true).
			Padding(0, 0, 1, 0)

	diagnosticStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	// Status bar
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Background(colorBgLight).
			Padding(0, 1)

	// Help
	helpBarStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorYellow)
)
