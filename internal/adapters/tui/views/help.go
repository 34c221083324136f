package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"shootlist/internal/adapters/tui/styles"
)

// HelpModel is the static key reference view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates the help view
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// SetSize stores the window size
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (*HelpModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		default:
			// any other key returns to the prompt
			return m, func() tea.Msg { return SwitchToLookupMsg{} }
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("shootlist — keys"))
	b.WriteString("\n\n")

	rows := []struct{ key, desc string }{
		{"enter", "look up the typed article number and start shooting"},
		{"r", "retry the failed step (clipboard or metadata write)"},
		{"s", "skip the current variation without a photo"},
		{"o", "open the last tagged photo in the image viewer"},
		{"esc", "cancel the current article / back to the prompt"},
		{"ctrl+c", "quit"},
	}
	for _, row := range rows {
		b.WriteString(styles.TableHeader.Render("  "+row.key) + "  " + row.desc + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("The clipboard holds the file name the tether software should use."))
	b.WriteString("\n\n")
	b.WriteString(styles.Help.Render("press any key to go back"))

	return styles.App.Render(b.String())
}
