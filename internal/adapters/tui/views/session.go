package views

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"shootlist/internal/adapters/tui/styles"
	"shootlist/internal/application/session"
	"shootlist/internal/domain"
	"shootlist/internal/ports"
)

// SessionKeyMap defines key bindings for the session view
type SessionKeyMap struct {
	Retry  key.Binding
	Skip   key.Binding
	Viewer key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var SessionKeys = SessionKeyMap{
	Retry: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "retry"),
	),
	Skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip variation"),
	),
	Viewer: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open last photo"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back to lookup"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// SessionDeps carries the collaborators one article shoot needs. A
// fresh watcher is created per shoot; the rest are shared.
type SessionDeps struct {
	Publisher    ports.Publisher
	Writer       ports.MetadataWriter
	Journal      ports.Journal
	NewWatcher   func() ports.FolderWatcher
	WatchDir     string
	WorkbookPath string
}

type sessionUpdateMsg session.Update

type sessionDoneMsg struct{ err error }

// SessionModel shoots one article's variations front to back
type SessionModel struct {
	deps       SessionDeps
	variations []domain.Variation

	controller *session.Controller
	cancel     context.CancelFunc
	updates    chan session.Update
	result     chan error

	current  session.Update
	running  bool
	finished bool
	failed   string // terminal error text, empty when the run succeeded

	width  int
	height int
}

// NewSessionModel creates the session view
func NewSessionModel(deps SessionDeps) *SessionModel {
	return &SessionModel{deps: deps}
}

// Start begins shooting the given variations
func (m *SessionModel) Start(variations []domain.Variation) tea.Cmd {
	m.variations = variations
	m.updates = make(chan session.Update, 16)
	m.result = make(chan error, 1)
	m.current = session.Update{}
	m.running = true
	m.finished = false
	m.failed = ""

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	updates := m.updates
	m.controller = session.New(session.Options{
		Catalog:      domain.NewCatalog(variations),
		Publisher:    m.deps.Publisher,
		Watcher:      m.deps.NewWatcher(),
		Writer:       m.deps.Writer,
		Journal:      m.deps.Journal,
		WatchDir:     m.deps.WatchDir,
		WorkbookPath: m.deps.WorkbookPath,
		Notify:       func(u session.Update) { updates <- u },
	})

	controller := m.controller
	result := m.result
	go func() { result <- controller.Run(ctx) }()

	return m.waitForUpdate()
}

// waitForUpdate bridges the controller goroutine into the tea loop
func (m *SessionModel) waitForUpdate() tea.Cmd {
	updates, result := m.updates, m.result
	return func() tea.Msg {
		select {
		case u := <-updates:
			return sessionUpdateMsg(u)
		case err := <-result:
			return sessionDoneMsg{err: err}
		}
	}
}

// SetSize stores the window size
func (m *SessionModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the session view
func (m *SessionModel) Update(msg tea.Msg) (*SessionModel, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionUpdateMsg:
		m.current = session.Update(msg)
		return m, m.waitForUpdate()

	case sessionDoneMsg:
		m.running = false
		m.finished = true
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.failed = msg.err.Error()
		}
		if errors.Is(msg.err, context.Canceled) {
			return m, func() tea.Msg { return SwitchToLookupMsg{} }
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SessionKeys.Quit):
			m.stop()
			return m, tea.Quit

		case key.Matches(msg, SessionKeys.Retry):
			if m.running && m.current.Err != nil {
				m.controller.Retry()
			}
			return m, nil

		case key.Matches(msg, SessionKeys.Skip):
			if m.running {
				m.controller.Skip()
			}
			return m, nil

		case key.Matches(msg, SessionKeys.Viewer):
			if m.current.FilePath != "" {
				path := m.current.FilePath
				return m, func() tea.Msg { return OpenViewerMsg{Path: path} }
			}
			return m, nil

		case key.Matches(msg, SessionKeys.Back):
			if m.running {
				m.stop()
				// SwitchToLookupMsg follows once the run reports
				// cancellation
				return m, m.waitForUpdate()
			}
			return m, func() tea.Msg { return SwitchToLookupMsg{} }
		}
	}

	return m, nil
}

func (m *SessionModel) stop() {
	if m.cancel != nil {
		m.cancel()
	}
}

// View renders the variation table and status line
func (m *SessionModel) View() string {
	if len(m.variations) == 0 {
		return styles.App.Render(styles.Subtitle.Render("No variations selected"))
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(fmt.Sprintf(
		"Article %s — %d variation(s)", m.variations[0].Number, len(m.variations))))
	b.WriteString("\n\n")

	b.WriteString(styles.TableHeader.Render(fmt.Sprintf(
		"  %-10s %-8s %-12s %s", "ArtikelNr", "Position", "Color", "Description")))
	b.WriteString("\n")

	for i, v := range m.variations {
		line := fmt.Sprintf("  %-10s %-8s %-12s %s",
			v.Number, v.PositionLabel(), v.ColorCode+" "+v.ColorName, v.Description)

		switch {
		case !m.running && m.finished, i < m.current.Index:
			line = styles.RowDone.Render(line)
		case i == m.current.Index && m.running:
			line = styles.RowCurrent.Render(line)
		default:
			line = styles.RowPending.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")
	b.WriteString(styles.Help.Render("r retry · s skip · o open last photo · esc back · ctrl+c quit"))

	return styles.App.Render(b.String())
}

func (m *SessionModel) statusLine() string {
	if m.failed != "" {
		return styles.StatusError.Render("Session failed: " + m.failed)
	}
	if m.finished {
		return styles.StatusOK.Render(fmt.Sprintf(
			"Done — %d photo(s) tagged. esc for the next article.", m.current.Processed))
	}
	if m.current.Err != nil {
		return styles.StatusError.Render(m.current.Err.Error() + " — press r to retry")
	}

	switch m.current.Phase {
	case domain.PhaseAwaitingPhoto:
		return styles.StatusWait.Render(fmt.Sprintf(
			"Clipboard: %q — waiting for the photo…", m.current.FileName))
	case domain.PhasePhotoDetected:
		return styles.StatusWait.Render("Photo detected, writing metadata…")
	default:
		return styles.StatusWait.Render("Preparing…")
	}
}
