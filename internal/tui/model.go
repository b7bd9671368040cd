// Package tui is an interactive browser for projection results: it loads a
// scenario file, runs the projection, and lets the user scroll through the
// per-period cashflows.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lifesim/lifesim/internal/calculation"
	"github.com/lifesim/lifesim/internal/config"
	"github.com/lifesim/lifesim/internal/domain"
	"github.com/lifesim/lifesim/internal/modelpoints"
)

// keyMap defines the key bindings for the results browser.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn", "page down")),
	Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first month")),
	End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last month")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

// resultMsg carries a finished projection into the update loop.
type resultMsg struct {
	result *calculation.Result
	groups int
}

// errMsg carries a load or run failure.
type errMsg struct {
	err error
}

// Model is the Bubble Tea model for the results browser.
type Model struct {
	configPath string

	width  int
	height int

	loading bool
	err     error

	result *calculation.Result
	groups int

	cursor int
	offset int
}

// NewModel creates the browser for a scenario file.
func NewModel(configPath string) Model {
	return Model{
		configPath: configPath,
		loading:    true,
		width:      100,
		height:     30,
	}
}

// Init kicks off the projection in a command.
func (m Model) Init() tea.Cmd {
	return runProjectionCmd(m.configPath)
}

func runProjectionCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return errMsg{err}
		}
		model, err := cfg.BuildModel()
		if err != nil {
			return errMsg{err}
		}
		groups, err := modelpoints.Load(cfg.ModelPoints)
		if err != nil {
			return errMsg{err}
		}
		if err := cfg.ValidateModelPoints(model, groups); err != nil {
			return errMsg{err}
		}
		engine := calculation.NewEngine(model)
		return resultMsg{
			result: engine.Project(groups, cfg.Simulation.Months, nil),
			groups: len(groups),
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case resultMsg:
		m.loading = false
		m.result = msg.result
		m.groups = msg.groups
		return m, nil

	case errMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, keys.PageUp):
			m.moveCursor(-m.pageSize())
		case key.Matches(msg, keys.PageDown):
			m.moveCursor(m.pageSize())
		case key.Matches(msg, keys.Home):
			m.cursor = 0
			m.offset = 0
		case key.Matches(msg, keys.End):
			if m.result != nil {
				m.moveCursor(len(m.result.Periods))
			}
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.result == nil {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if max := len(m.result.Periods) - 1; m.cursor > max {
		m.cursor = max
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.pageSize() {
		m.offset = m.cursor - m.pageSize() + 1
	}
}

// pageSize is how many cashflow rows fit under the title, summary and
// status bar.
func (m Model) pageSize() int {
	rows := m.height - 10
	if rows < 1 {
		return 1
	}
	return rows
}

func (m Model) View() string {
	title := TitleStyle.Render("lifesim — " + m.configPath)

	if m.loading {
		return title + "\n\n  Running projection...\n"
	}
	if m.err != nil {
		return title + "\n\n" + ErrorStyle.Render("Error: "+m.err.Error()) + "\n\n" + m.statusBar()
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(m.summary())
	b.WriteString("\n\n")
	b.WriteString(m.table())
	b.WriteString("\n")
	b.WriteString(m.statusBar())
	return b.String()
}

func (m Model) summary() string {
	total := m.result.Total
	items := []string{
		summaryItem("Product", m.result.ProductKind),
		summaryItem("Months", fmt.Sprintf("%d", m.result.Months)),
		summaryItem("Groups", fmt.Sprintf("%d", m.groups)),
		summaryItem("Net", total.Net.StringFixed(2)),
		summaryItem("Discounted", total.Discounted.StringFixed(2)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(items, "   "))
}

func summaryItem(label, value string) string {
	return SummaryLabelStyle.Render(label+": ") + SummaryValueStyle.Render(value)
}

func (m Model) table() string {
	var b strings.Builder
	header := fmt.Sprintf("%6s %14s %14s %14s %14s %14s %14s",
		"Month", "Premiums", "Claims", "Expenses", "Commissions", "Net", "Discounted")
	b.WriteString(TableHeaderStyle.Render(header))
	b.WriteString("\n")

	end := m.offset + m.pageSize()
	if end > len(m.result.Periods) {
		end = len(m.result.Periods)
	}
	for i := m.offset; i < end; i++ {
		row := formatRow(i, m.result.Periods[i])
		if i == m.cursor {
			row = SelectedRowStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func formatRow(month int, cf domain.CashFlow) string {
	return fmt.Sprintf("%6d %14s %14s %14s %14s %14s %14s",
		month,
		cf.Premiums.StringFixed(2),
		cf.Claims.StringFixed(2),
		cf.Expenses.StringFixed(2),
		cf.Commissions.StringFixed(2),
		cf.Net.StringFixed(2),
		cf.Discounted.StringFixed(2),
	)
}

func (m Model) statusBar() string {
	help := []string{
		keys.Up.Help().Key + "/" + keys.Down.Help().Key + " scroll",
		keys.PageUp.Help().Key + "/" + keys.PageDown.Help().Key + " page",
		keys.Quit.Help().Key + " quit",
	}
	return StatusBarStyle.Render(strings.Join(help, " • "))
}
