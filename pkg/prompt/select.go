package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prflow/pkg/catalog"
)

var (
	infoStyle    = lipgloss.NewStyle().Bold(true)
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	subStyle     = lipgloss.NewStyle().Faint(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

// selectModel represents the Bubble Tea model for action selection.
type selectModel struct {
	choices  catalog.Choices
	cursor   int
	selected *catalog.Choice
	quitting bool
}

func initialSelectModel(choices catalog.Choices) selectModel {
	return selectModel{choices: choices}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		choice := m.choices.Choices[m.cursor]
		m.selected = &choice
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices.Choices)-1 {
			m.cursor++
		}
	}

	return m, nil
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	style := infoStyle
	if m.choices.Level == catalog.LevelWarning {
		style = warningStyle
	}
	s.WriteString(style.Render(m.choices.Message) + "\n")
	if m.choices.SubMessage != "" {
		s.WriteString(subStyle.Render(m.choices.SubMessage) + "\n")
	}
	s.WriteString("\n")

	for i, choice := range m.choices.Choices {
		if m.cursor == i {
			s.WriteString(cursorStyle.Render("> "+choice.Label) + "\n")
		} else {
			s.WriteString("  " + choice.Label + "\n")
		}
	}

	s.WriteString("\n" + helpStyle.Render("Enter to select, arrows to move, q to quit"))

	return s.String()
}

// selectActionBubbleTea runs the Bubble Tea program for action selection.
func selectActionBubbleTea(choices catalog.Choices) (*catalog.StateAction, error) {
	p := tea.NewProgram(initialSelectModel(choices))

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := finalModel.(selectModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}

	// Quit without selecting and cancel choices both mean cancel.
	if model.selected == nil || model.selected.Action == nil {
		return nil, ErrCancelled
	}

	return model.selected.Action, nil
}
