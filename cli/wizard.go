package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stackup-cli/stackup/catalog"
	"github.com/stackup-cli/stackup/core"
)

type phase int

const (
	phaseName phase = iota
	phaseProjectType
	phaseFrontendFramework
	phaseFrontendTools
	phaseBackendFramework
	phaseDatabase
	phaseORM
	phaseBackendTools
	phaseDone
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("202"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

// wizardModel walks the user through the selection prompts, one phase
// per field. Phases that the project type or an earlier answer make
// irrelevant are skipped.
type wizardModel struct {
	textInput textinput.Model
	phase     phase
	cursor    int
	picked    map[int]bool
	selection *core.Selection
	aborted   bool
}

func newWizardModel(name string) wizardModel {
	ti := textinput.New()
	ti.Placeholder = "my-app (empty scaffolds in the current directory)"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 60
	ti.SetValue(name)

	return wizardModel{
		textInput: ti,
		phase:     phaseName,
		picked:    make(map[int]bool),
		selection: &core.Selection{},
	}
}

func (m wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// prompt returns the title and option labels for the current phase.
func (m wizardModel) prompt() (string, []string) {
	switch m.phase {
	case phaseProjectType:
		return "What are you building?", labels(catalog.ProjectTypes)
	case phaseFrontendFramework:
		return "Frontend framework:", labels(catalog.FrontendFrameworks)
	case phaseFrontendTools:
		return "Frontend tools (space to toggle):", labels(catalog.FrontendTools)
	case phaseBackendFramework:
		return "Backend framework:", labels(catalog.BackendFrameworks)
	case phaseDatabase:
		return "Database:", labels(catalog.Databases)
	case phaseORM:
		return "ORM:", labels(catalog.ORMs)
	case phaseBackendTools:
		return "Backend tools (space to toggle):", labels(catalog.BackendTools)
	}
	return "", nil
}

func labels[T fmt.Stringer](options []T) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = o.String()
	}
	return out
}

func (m wizardModel) multiSelect() bool {
	return m.phase == phaseFrontendTools || m.phase == phaseBackendTools
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
		if m.phase == phaseName {
			if msg.Type == tea.KeyEnter {
				m.selection.ProjectName = strings.TrimSpace(m.textInput.Value())
				return m.advance(phaseProjectType)
			}
			break
		}
		return m.handleSelectKey(msg)
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m wizardModel) handleSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, options := m.prompt()

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(options)-1 {
			m.cursor++
		}
	case " ":
		if m.multiSelect() {
			m.picked[m.cursor] = !m.picked[m.cursor]
		}
	case "enter":
		return m.commit()
	}
	return m, nil
}

// commit records the answer for the current phase and moves to the
// next relevant one.
func (m wizardModel) commit() (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseProjectType:
		m.selection.ProjectType = catalog.ProjectTypes[m.cursor]
		if m.selection.ProjectType.IncludesFrontend() {
			m.selection.Frontend = &core.FrontendSelection{}
			return m.advance(phaseFrontendFramework)
		}
		return m.startBackend()

	case phaseFrontendFramework:
		m.selection.Frontend.Framework = catalog.FrontendFrameworks[m.cursor]
		if m.selection.Frontend.Framework == catalog.FrontendNone {
			return m.startBackend()
		}
		return m.advance(phaseFrontendTools)

	case phaseFrontendTools:
		m.selection.Frontend.Tools = m.pickedTools(catalog.FrontendTools)
		return m.startBackend()

	case phaseBackendFramework:
		m.selection.Backend.Framework = catalog.BackendFrameworks[m.cursor]
		if m.selection.Backend.Framework == catalog.BackendNone {
			return m.finish()
		}
		return m.advance(phaseDatabase)

	case phaseDatabase:
		m.selection.Backend.Database = catalog.Databases[m.cursor]
		if m.selection.Backend.Database == catalog.UseORM {
			return m.advance(phaseORM)
		}
		return m.advance(phaseBackendTools)

	case phaseORM:
		m.selection.Backend.ORM = catalog.ORMs[m.cursor]
		return m.advance(phaseBackendTools)

	case phaseBackendTools:
		m.selection.Backend.Tools = m.pickedTools(catalog.BackendTools)
		return m.finish()
	}
	return m, nil
}

func (m wizardModel) startBackend() (tea.Model, tea.Cmd) {
	if m.selection.ProjectType.IncludesBackend() {
		m.selection.Backend = &core.BackendSelection{}
		return m.advance(phaseBackendFramework)
	}
	return m.finish()
}

func (m wizardModel) advance(next phase) (tea.Model, tea.Cmd) {
	m.phase = next
	m.cursor = 0
	m.picked = make(map[int]bool)
	return m, nil
}

func (m wizardModel) finish() (tea.Model, tea.Cmd) {
	m.phase = phaseDone
	return m, tea.Quit
}

// pickedTools maps the toggled option indexes back to tools, keeping
// the option list's order.
func (m wizardModel) pickedTools(options []catalog.Tool) []catalog.Tool {
	var tools []catalog.Tool
	for i, tool := range options {
		if m.picked[i] {
			tools = append(tools, tool)
		}
	}
	return tools
}

func (m wizardModel) View() string {
	switch m.phase {
	case phaseName:
		return fmt.Sprintf("%s\n%s\n%s",
			titleStyle.Render("Project name:"),
			m.textInput.View(),
			hintStyle.Render("(enter to confirm, esc to quit)"))
	case phaseDone:
		return ""
	}

	title, options := m.prompt()
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")
	for i, option := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("❯ ")
		}
		if m.multiSelect() {
			box := "[ ]"
			if m.picked[i] {
				box = selectedStyle.Render("[x]")
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, box, option))
		} else {
			b.WriteString(fmt.Sprintf("%s%s\n", cursor, option))
		}
	}
	b.WriteString(hintStyle.Render("(↑/↓ to move, enter to confirm, esc to quit)"))
	return b.String()
}
