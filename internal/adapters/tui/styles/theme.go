package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#D97706") // Amber, the studio accent
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Light amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Session table styles
	TableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	RowCurrent = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	RowDone = lipgloss.NewStyle().
		Foreground(Muted).
		Strikethrough(true)

	RowPending = lipgloss.NewStyle()

	// Status line styles
	StatusOK = lipgloss.NewStyle().
			Foreground(Secondary)

	StatusWait = lipgloss.NewStyle().
			Foreground(Warning)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Help = lipgloss.NewStyle().
		Foreground(Muted)
)
