package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shootlist/internal/adapters/tui/styles"
	"shootlist/internal/application/commands"
	"shootlist/internal/domain"
)

// LookupKeyMap defines key bindings for the lookup view
type LookupKeyMap struct {
	Submit key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var LookupKeys = LookupKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "shoot article"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// LookupModel is the article-number prompt view
type LookupModel struct {
	catalog *domain.Catalog
	input   textinput.Model
	errMsg  string
	width   int
	height  int
}

// NewLookupModel creates the lookup view
func NewLookupModel(catalog *domain.Catalog) *LookupModel {
	input := textinput.New()
	input.Placeholder = "ArtikelNr"
	input.Focus()

	return &LookupModel{catalog: catalog, input: input}
}

// Init initializes the lookup view
func (m *LookupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the prompt for the next article
func (m *LookupModel) Reset() {
	m.input.SetValue("")
	m.errMsg = ""
	m.input.Focus()
}

// SetSize stores the window size
func (m *LookupModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the lookup view
func (m *LookupModel) Update(msg tea.Msg) (*LookupModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, LookupKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, LookupKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }

		case key.Matches(msg, LookupKeys.Submit):
			return m, m.lookup()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *LookupModel) lookup() tea.Cmd {
	articleNo := m.input.Value()
	cmd := commands.NewLookupArticleCommand(m.catalog, articleNo)
	variations, err := cmd.Execute(context.Background())
	if err != nil {
		m.errMsg = fmt.Sprintf("Article %q not found in the catalog", articleNo)
		return nil
	}

	m.errMsg = ""
	return func() tea.Msg { return SwitchToSessionMsg{Variations: variations} }
}

// View renders the lookup view
func (m *LookupModel) View() string {
	title := styles.Title.Render("shootlist")
	subtitle := styles.Subtitle.Render(fmt.Sprintf(
		"%d articles, %d variations loaded", m.catalog.Articles(), m.catalog.Len()))

	body := title + "\n" + subtitle + "\n\n" + m.input.View() + "\n"
	if m.errMsg != "" {
		body += "\n" + styles.StatusError.Render(m.errMsg) + "\n"
	}
	body += "\n" + styles.Help.Render("enter shoot · f1 help · esc quit")

	return styles.App.Render(body)
}
