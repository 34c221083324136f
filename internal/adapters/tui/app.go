package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"shootlist/internal/adapters/tui/views"
	"shootlist/internal/domain"
	"shootlist/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewLookup ViewState = iota
	ViewSession
	ViewHelp
)

// App is the main TUI application model
type App struct {
	viewer ports.ViewerOpener

	state   ViewState
	lookup  *views.LookupModel
	session *views.SessionModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(catalog *domain.Catalog, deps views.SessionDeps, viewer ports.ViewerOpener) *App {
	return &App{
		viewer:  viewer,
		state:   ViewLookup,
		lookup:  views.NewLookupModel(catalog),
		session: views.NewSessionModel(deps),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.lookup.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.lookup.SetSize(msg.Width, msg.Height)
		a.session.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToSessionMsg:
		a.state = ViewSession
		return a, a.session.Start(msg.Variations)

	case views.SwitchToLookupMsg:
		a.state = ViewLookup
		a.lookup.Reset()
		return a, a.lookup.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.OpenViewerMsg:
		return a, a.openViewer(msg.Path)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewLookup:
		_, cmd = a.lookup.Update(msg)
	case ViewSession:
		_, cmd = a.session.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type viewerFinishedMsg struct{ err error }

func (a *App) openViewer(path string) tea.Cmd {
	if a.viewer == nil {
		return nil
	}

	cmd, err := a.viewer.Command(path)
	if err != nil {
		return func() tea.Msg {
			return viewerFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return viewerFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewSession:
		return a.session.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.lookup.View()
	}
}
