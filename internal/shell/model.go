// Package shell provides the interactive Bubble Tea command shell.
package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/galaxy-cli/circuit/internal/model"
	"github.com/galaxy-cli/circuit/internal/store"
	"github.com/galaxy-cli/circuit/internal/worklog"
)

const shellName = "Circuit"

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	usageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// Model implements the interactive shell.
type Model struct {
	store     *store.Store
	sink      worklog.Sink
	exportDir string
	logPath   string

	opts           model.DisplayOptions
	currentGroupID int64

	input  textinput.Model
	lines  []string
	flow   *flow
	width  int
	height int
}

// NewModel constructs a shell over the given store and log sink.
func NewModel(st *store.Store, sink worklog.Sink, logPath, exportDir string) *Model {
	input := textinput.New()
	input.Focus()
	input.CharLimit = 0
	m := &Model{
		store:     st,
		sink:      sink,
		exportDir: exportDir,
		logPath:   logPath,
		opts:      model.DefaultDisplayOptions(),
		input:     input,
	}
	m.info(fmt.Sprintf("Welcome to %s - The circuit-style exercise automation tool", shellName))
	m.info("`cmd` for commands, `help` or `?` for help, and `exit` to exit shell.")
	m.info("")
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyCtrlD:
			m.info("")
			m.info("Enter `exit` to close shell")
			return m, nil
		case tea.KeyEnter:
			return m.submit()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	visible := m.lines
	if m.height > 1 && len(visible) > m.height-1 {
		visible = visible[len(visible)-(m.height-1):]
	}
	var b strings.Builder
	for _, line := range visible {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	m.input.Prompt = promptStyle.Render(m.promptText())
	b.WriteString(m.input.View())
	return b.String()
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	m.lines = append(m.lines, m.promptText()+value)
	m.input.SetValue("")

	if m.flow != nil {
		m.advanceFlow(value)
		return m, nil
	}
	return m.dispatch(value)
}

func (m *Model) promptText() string {
	if m.flow != nil {
		return m.flow.steps[m.flow.idx].prompt + " "
	}
	return fmt.Sprintf("(%s) [%s] ", shellName, m.currentGroupName())
}

func (m *Model) currentGroupName() string {
	if m.currentGroupID == 0 {
		return ""
	}
	group, err := m.store.GetGroup(shellCtx(), m.currentGroupID)
	if err != nil {
		return ""
	}
	return group.Name
}

func (m *Model) info(lines ...string) {
	for _, line := range lines {
		m.lines = append(m.lines, strings.Split(line, "\n")...)
	}
}

func (m *Model) errorf(format string, args ...any) {
	m.lines = append(m.lines, errorStyle.Render("ERROR: "+fmt.Sprintf(format, args...)))
}

func (m *Model) usage(msg string) {
	m.lines = append(m.lines, usageStyle.Render("USAGE: "+msg))
}
