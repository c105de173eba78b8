// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#bd93f9")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272a4"))
)

type inputModel struct {
	input     textinput.Model
	submitted bool
	cancelled bool
}

func newInputModel(label string) inputModel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(label+": ") + " "
	ti.Placeholder = "title of a movie or show"
	ti.CharLimit = 200
	ti.Width = 50
	ti.Focus()
	return inputModel{input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			// Blank input keeps the prompt open.
			if strings.TrimSpace(m.input.Value()) == "" {
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	return m.input.View() + "\n" + hintStyle.Render("enter: search • esc: quit") + "\n"
}

// Value returns the trimmed text once the user has submitted it.
func (m inputModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// ReadLine asks for one line of text with label as the prompt. It returns
// ErrCancelled when the user quits without submitting.
func ReadLine(label string, in io.Reader, out io.Writer) (string, error) {
	p := tea.NewProgram(newInputModel(label), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
	}

	m, ok := final.(inputModel)
	if !ok || !m.submitted {
		return "", ErrCancelled
	}
	return m.Value(), nil
}
