// Package tui implements the interactive catalog menu.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/libra/internal/catalog"
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

type state int

const (
	stateMenu state = iota
	stateSearch
	stateYear
	stateLanguage
)

const menuBody = `1. Search books by title
2. List registered books
3. List registered authors
4. List authors alive in a given year
5. List books by language
0. Exit`

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("110"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// resultsMsg carries rendered query output back into the model.
type resultsMsg struct {
	output string
}

// Model is the menu state machine. The main menu is the only
// non-terminal state; prompts return to it after running their query.
type Model struct {
	svc      *catalog.Service
	state    state
	input    textinput.Model
	output   string
	status   string
	quitting bool
}

// NewModel creates the menu model over a catalog service.
func NewModel(svc *catalog.Service) Model {
	input := textinput.New()
	input.Placeholder = "0-5"
	input.CharLimit = 64
	input.Width = 40
	input.Focus()

	return Model{
		svc:   svc,
		input: input,
	}
}

// Run starts the interactive menu and blocks until the user exits.
func Run(svc *catalog.Service) error {
	_, err := runProgram(NewModel(svc))
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsMsg:
		m.output = msg.output
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	m.input.SetValue("")
	m.status = ""

	switch m.state {
	case stateMenu:
		return m.selectOption(value)
	case stateSearch:
		m.toMenu()
		return m, m.searchCmd(value)
	case stateYear:
		m.toMenu()
		year, err := ParseYear(value)
		if err != nil {
			m.status = "Please enter a valid year."
			return m, nil
		}
		return m, m.aliveCmd(year)
	case stateLanguage:
		m.toMenu()
		return m, m.languageCmd(value)
	}
	return m, nil
}

func (m Model) selectOption(value string) (tea.Model, tea.Cmd) {
	choice, err := ParseChoice(value)
	if err != nil {
		m.status = "Invalid option, please enter a number between 0 and 5."
		return m, nil
	}

	switch choice {
	case 0:
		m.quitting = true
		return m, tea.Quit
	case 1:
		m.toPrompt(stateSearch, "book title")
	case 2:
		return m, m.listBooksCmd()
	case 3:
		return m, m.listAuthorsCmd()
	case 4:
		m.toPrompt(stateYear, "year, e.g. 1850")
	case 5:
		m.toPrompt(stateLanguage, "language code, e.g. en")
	}
	return m, nil
}

func (m *Model) toPrompt(s state, placeholder string) {
	m.state = s
	m.input.Placeholder = placeholder
}

func (m *Model) toMenu() {
	m.state = stateMenu
	m.input.Placeholder = "0-5"
}

func (m Model) searchCmd(term string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		books := svc.Search(context.Background(), term)
		return resultsMsg{output: RenderBooks(books, "No books found for that title.")}
	}
}

func (m Model) listBooksCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		books := svc.ListPersisted()
		return resultsMsg{output: RenderBooks(books, "No books registered yet.")}
	}
}

func (m Model) listAuthorsCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		books := svc.ListPersisted()
		return resultsMsg{output: RenderAuthors(catalog.DistinctAuthors(books))}
	}
}

func (m Model) aliveCmd(year int) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		books := svc.ListPersisted()
		return resultsMsg{output: RenderAuthorsAlive(books, year)}
	}
}

func (m Model) languageCmd(language string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		books := svc.ListPersisted()
		return resultsMsg{output: RenderBooksByLanguage(books, language)}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	var prompt string
	switch m.state {
	case stateMenu:
		prompt = "Select an option: "
	case stateSearch:
		prompt = "Enter a book title: "
	case stateYear:
		prompt = "Enter a year: "
	case stateLanguage:
		prompt = "Enter a language code: "
	}

	view := titleStyle.Render("LIBRA - MAIN MENU") + "\n\n" + menuBody + "\n"
	if m.output != "" {
		view += "\n" + outputStyle.Render(m.output) + "\n"
	}
	if m.status != "" {
		view += "\n" + statusStyle.Render(m.status) + "\n"
	}
	view += "\n" + prompt + m.input.View() + "\n"
	return view
}
