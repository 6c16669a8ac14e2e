package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/pickli/internal/selection"
	"github.com/studiowebux/pickli/internal/types"
)

// CreateTestModel creates a dialog model over the given items with a
// realistic terminal size applied
func CreateTestModel(t *testing.T, items []types.Item, mode types.SelectionMode) *Model {
	t.Helper()

	sess, err := selection.New(items, mode)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	m := New(sess, "Test Dialog")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return &m
}

// PressKey sends a single named key (enter, esc, space, up, down) to the model
func PressKey(t *testing.T, m *Model, key tea.KeyType) {
	t.Helper()
	m.Update(tea.KeyMsg{Type: key})
}

// PressRune sends a single character key to the model
func PressRune(t *testing.T, m *Model, r rune) {
	t.Helper()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// TypeString sends each character of s as a key press
func TypeString(t *testing.T, m *Model, s string) {
	t.Helper()
	for _, r := range s {
		PressRune(t, m, r)
	}
}
