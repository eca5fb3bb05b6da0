package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func typeInto(m BranchSelectModel, text string) BranchSelectModel {
	for _, r := range text {
		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = model.(BranchSelectModel)
	}
	return m
}

func press(m BranchSelectModel, key tea.KeyType) BranchSelectModel {
	model, _ := m.Update(tea.KeyMsg{Type: key})
	return model.(BranchSelectModel)
}

func TestBranchSelectModel(t *testing.T) {
	choices := []BranchChoice{
		{Display: "main", Value: "main"},
		{Display: "feature/login", Value: "feature/login"},
		{Display: "feature/logout", Value: "feature/logout"},
		{Display: "release-1.0", Value: "release-1.0"},
	}

	t.Run("starts on the initial index", func(t *testing.T) {
		m := NewBranchSelectModel("Checkout a branch", choices, 2)
		require.Len(t, m.Filtered, 4)
		require.Equal(t, 2, m.Cursor)

		m = press(m, tea.KeyEnter)
		require.True(t, m.Done)
		require.Equal(t, "feature/logout", m.Selected)
	})

	t.Run("cursor wraps", func(t *testing.T) {
		m := NewBranchSelectModel("Checkout a branch", choices, 0)
		m = press(m, tea.KeyUp)
		require.Equal(t, 3, m.Cursor)
		m = press(m, tea.KeyDown)
		require.Equal(t, 0, m.Cursor)
	})

	t.Run("fuzzy filter narrows choices", func(t *testing.T) {
		m := NewBranchSelectModel("Checkout a branch", choices, 0)
		m = typeInto(m, "flgi")
		require.Equal(t, "flgi", m.Filter.Value())
		require.Len(t, m.Filtered, 1)
		require.Equal(t, "feature/login", m.Filtered[0].Value)

		m = press(m, tea.KeyEnter)
		require.Equal(t, "feature/login", m.Selected)
	})

	t.Run("no match does not select", func(t *testing.T) {
		m := NewBranchSelectModel("Checkout a branch", choices, 0)
		m = typeInto(m, "zzz")
		require.Empty(t, m.Filtered)
		require.Contains(t, m.View(), "No branches match")

		m = press(m, tea.KeyEnter)
		require.False(t, m.Done)
	})

	t.Run("escape cancels", func(t *testing.T) {
		m := NewBranchSelectModel("Checkout a branch", choices, 0)
		m = press(m, tea.KeyEsc)
		require.True(t, m.Done)
		require.ErrorIs(t, m.Err, ErrCanceled)
		require.Empty(t, m.View())
	})
}

func TestPromptsHonorNoInteractive(t *testing.T) {
	t.Setenv("GITWRAP_TEST_NO_INTERACTIVE", "1")

	_, err := PromptCommitMessage()
	require.ErrorIs(t, err, ErrInteractiveDisabled)

	_, err = PromptBranchSelection("pick", []BranchChoice{{Display: "main", Value: "main"}}, 0)
	require.ErrorIs(t, err, ErrInteractiveDisabled)
	require.False(t, InteractiveAllowed())
}
