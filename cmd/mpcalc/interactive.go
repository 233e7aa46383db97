package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const historyLimit = 200

type interactiveModel struct {
	session *session
	input   textinput.Model
	history []string
	past    []string // submitted commands for up/down recall
	pastIdx int
	height  int
}

func newInteractiveModel(s *session) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render("mp> ")
	ti.Placeholder = "help"
	ti.Focus()
	ti.Width = 72
	return &interactiveModel{
		session: s,
		input:   ti,
		height:  24,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) push(line string) {
	m.history = append(m.history, line)
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.input.Width = msg.Width - 8

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			return m, tea.Quit

		case "up":
			if m.pastIdx > 0 {
				m.pastIdx--
				m.input.SetValue(m.past[m.pastIdx])
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.pastIdx < len(m.past) {
				m.pastIdx++
				if m.pastIdx == len(m.past) {
					m.input.SetValue("")
				} else {
					m.input.SetValue(m.past[m.pastIdx])
					m.input.CursorEnd()
				}
			}
			return m, nil

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if line == "quit" || line == "exit" {
				return m, tea.Quit
			}
			m.past = append(m.past, line)
			m.pastIdx = len(m.past)

			m.push(promptStyle.Render("mp> ") + line)
			out, err := m.session.eval(line)
			switch {
			case err != nil:
				m.push(errorStyle.Render("error: " + err.Error()))
			case out != "":
				for _, l := range strings.Split(out, "\n") {
					m.push(resultStyle.Render(l))
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("mpcalc"))
	b.WriteString(helpStyle.Render("  arbitrary-precision calculator"))
	b.WriteString("\n\n")

	// Show as much history as fits above the prompt.
	visible := m.height - 6
	if visible < 1 {
		visible = 1
	}
	hist := m.history
	if len(hist) > visible {
		hist = hist[len(hist)-visible:]
	}
	for _, line := range hist {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter evaluate • ↑/↓ history • help commands • ctrl+c quit"))

	return b.String()
}

func runInteractive(s *session) error {
	p := tea.NewProgram(newInteractiveModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
