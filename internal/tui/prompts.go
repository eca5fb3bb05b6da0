package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via GITWRAP_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = errors.New("interactive prompts are disabled (GITWRAP_TEST_NO_INTERACTIVE is set)")

// ErrCanceled is returned when the user backs out of a prompt
var ErrCanceled = errors.New("canceled")

// checkInteractiveAllowed returns an error if interactive mode is disabled for testing
func checkInteractiveAllowed() error {
	if os.Getenv("GITWRAP_TEST_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// InteractiveAllowed reports whether prompts may be shown
func InteractiveAllowed() bool {
	return checkInteractiveAllowed() == nil && IsTTY()
}

// PromptCommitMessage asks for a commit message. Empty messages are rejected.
func PromptCommitMessage() (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	var message string
	prompt := &survey.Input{
		Message: "Commit message:",
	}
	if err := survey.AskOne(prompt, &message, survey.WithValidator(survey.Required)); err != nil {
		return "", ErrCanceled
	}
	return strings.TrimSpace(message), nil
}

// BranchChoice represents a branch option in a selection prompt
type BranchChoice struct {
	Display string // What to show
	Value   string // Actual branch name
}

type branchChoices []BranchChoice

func (c branchChoices) String(i int) string { return c[i].Value }
func (c branchChoices) Len() int            { return len(c) }

// BranchSelectModel is a branch selection prompt model with fuzzy filtering
type BranchSelectModel struct {
	Choices  []BranchChoice
	Filtered []BranchChoice
	Filter   textinput.Model
	Cursor   int
	Selected string
	Done     bool
	Err      error
	Message  string
}

// NewBranchSelectModel creates a picker over choices with the cursor on initialIndex
func NewBranchSelectModel(message string, choices []BranchChoice, initialIndex int) BranchSelectModel {
	filter := textinput.New()
	filter.Prompt = "Filter: "
	filter.Placeholder = "type to filter"
	filter.Focus()

	m := BranchSelectModel{
		Choices: choices,
		Filter:  filter,
		Message: message,
	}
	m.updateFiltered()
	if initialIndex >= 0 && initialIndex < len(m.Filtered) {
		m.Cursor = initialIndex
	}
	return m
}

// Init initializes the bubbletea model
func (m BranchSelectModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles message updates for the bubbletea model
func (m BranchSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			if m.Cursor >= 0 && m.Cursor < len(m.Filtered) {
				m.Selected = m.Filtered[m.Cursor].Value
				m.Done = true
				return m, tea.Quit
			}
			return m, nil
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Err = ErrCanceled
			m.Done = true
			return m, tea.Quit
		case tea.KeyUp:
			if m.Cursor > 0 {
				m.Cursor--
			} else {
				m.Cursor = len(m.Filtered) - 1
			}
			return m, nil
		case tea.KeyDown:
			if m.Cursor < len(m.Filtered)-1 {
				m.Cursor++
			} else {
				m.Cursor = 0
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	previous := m.Filter.Value()
	m.Filter, cmd = m.Filter.Update(msg)
	if m.Filter.Value() != previous {
		m.updateFiltered()
		m.Cursor = 0
	}
	return m, cmd
}

// updateFiltered ranks choices against the filter, best match first
func (m *BranchSelectModel) updateFiltered() {
	pattern := m.Filter.Value()
	if pattern == "" {
		m.Filtered = m.Choices
		return
	}

	matches := fuzzy.FindFrom(pattern, branchChoices(m.Choices))
	m.Filtered = make([]BranchChoice, 0, len(matches))
	for _, match := range matches {
		m.Filtered = append(m.Filtered, m.Choices[match.Index])
	}
}

// View renders the TUI
func (m BranchSelectModel) View() string {
	if m.Done {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.Message))
	b.WriteString("\n")
	b.WriteString(m.Filter.View())
	b.WriteString("\n\n")

	if len(m.Filtered) == 0 {
		b.WriteString("No branches match the filter.\n")
	} else {
		for i, choice := range m.Filtered {
			cursor := " "
			if i == m.Cursor {
				cursor = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(">")
			}
			b.WriteString(fmt.Sprintf("%s %s\n", cursor, choice.Display))
		}
	}

	b.WriteString(ColorDim("\n(Press Enter to select, Ctrl+C to cancel, type to filter)"))

	return lipgloss.NewStyle().Margin(1, 0).Render(b.String())
}

// PromptBranchSelection prompts the user to select a branch
func PromptBranchSelection(message string, choices []BranchChoice, initialIndex int) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}
	if len(choices) == 0 {
		return "", errors.New("no branches to choose from")
	}

	m := NewBranchSelectModel(message, choices, initialIndex)
	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := p.Run()
	if err != nil {
		return "", err
	}

	if finalModel, ok := model.(BranchSelectModel); ok {
		if finalModel.Err != nil {
			return "", finalModel.Err
		}
		return finalModel.Selected, nil
	}

	return "", fmt.Errorf("unexpected model type")
}
