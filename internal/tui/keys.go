package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/pickli/internal/types"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// ctrl+c cancels from any mode
	if msg.String() == "ctrl+c" {
		return m.cancel()
	}

	switch m.mode {
	case ModeList:
		return m.handleListKeys(msg)
	case ModeFilter:
		return m.handleFilterKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	}

	return nil
}

// handleListKeys handles keyboard input while navigating the list
func (m *Model) handleListKeys(msg tea.KeyMsg) tea.Cmd {
	entries := m.session.Visible()

	switch msg.String() {
	case "q", "esc":
		return m.cancel()

	case "enter":
		return m.confirm()

	case " ":
		if m.cursor >= 0 && m.cursor < len(entries) {
			if err := m.session.Toggle(entries[m.cursor].ID); err != nil {
				m.errorMsg = err.Error()
				return nil
			}
			m.errorMsg = ""
		}

	case "j", "down":
		if len(entries) > 0 {
			m.cursor = (m.cursor + 1) % len(entries)
			m.adjustScrollOffset()
		}

	case "k", "up":
		if len(entries) > 0 {
			m.cursor = (m.cursor - 1 + len(entries)) % len(entries)
			m.adjustScrollOffset()
		}

	case "g":
		// Go to top on 'gg'
		if m.gPressed {
			m.cursor = 0
			m.offset = 0
			m.gPressed = false
		} else {
			m.gPressed = true
		}
		return nil

	case "G":
		if len(entries) > 0 {
			m.cursor = len(entries) - 1
			m.adjustScrollOffset()
		}

	case "a":
		if err := m.session.SelectAll(); err != nil {
			m.errorMsg = err.Error()
			return nil
		}
		m.errorMsg = ""
		m.statusMsg = fmt.Sprintf("Checked %d visible items", len(entries))

	case "n":
		if err := m.session.SelectNone(); err != nil {
			m.errorMsg = err.Error()
			return nil
		}
		m.errorMsg = ""
		m.statusMsg = fmt.Sprintf("Unchecked %d visible items", len(entries))

	case "/":
		m.mode = ModeFilter
		m.filterInput.Focus()
		m.errorMsg = ""

	case "c":
		if m.session.Filter() != "" {
			m.setFilter("")
			m.filterInput.SetValue("")
			m.statusMsg = "Filter cleared"
		}

	case "y":
		checked := m.session.Checked()
		if len(checked) == 0 {
			m.statusMsg = "Nothing checked to copy"
			return nil
		}
		if err := clipboard.WriteAll(strings.Join(checked, "\n")); err != nil {
			m.errorMsg = fmt.Sprintf("Failed to copy: %v", err)
			return nil
		}
		m.statusMsg = fmt.Sprintf("Copied %d ids to clipboard", len(checked))

	case "?":
		m.mode = ModeHelp
		m.updateHelpView()
	}

	// Reset 'g' press on any other key
	if msg.String() != "g" {
		m.gPressed = false
	}

	return nil
}

// handleFilterKeys handles keyboard input while the filter box is focused
func (m *Model) handleFilterKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		// Abandon the filter entirely
		m.filterInput.SetValue("")
		m.filterInput.Blur()
		m.setFilter("")
		m.mode = ModeList
		return nil

	case "enter":
		// Keep the filter, back to list navigation
		m.filterInput.Blur()
		m.mode = ModeList
		return nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.setFilter(m.filterInput.Value())
	return cmd
}

// handleHelpKeys handles keyboard input in the help overlay
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "?":
		m.mode = ModeList
		return nil
	}

	var cmd tea.Cmd
	m.helpView, cmd = m.helpView.Update(msg)
	return cmd
}

// setFilter applies the filter and keeps the cursor inside the new
// visible subset
func (m *Model) setFilter(text string) {
	if err := m.session.SetFilter(text); err != nil {
		m.errorMsg = err.Error()
		return
	}
	m.errorMsg = ""
	m.clampCursor()
}

func (m *Model) clampCursor() {
	visible := len(m.session.Visible())
	if m.cursor >= visible {
		m.cursor = visible - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustScrollOffset()
}

// adjustScrollOffset keeps the cursor row inside the rendered page
func (m *Model) adjustScrollOffset() {
	pageSize := m.listPageSize()
	if pageSize < 1 {
		pageSize = 1
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+pageSize {
		m.offset = m.cursor - pageSize + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// confirm ends the session. In single mode, enter on an unchecked cursor
// row selects it first, mirroring plain single-selection lists.
func (m *Model) confirm() tea.Cmd {
	if m.session.Mode() == types.ModeSingle {
		entries := m.session.Visible()
		if m.cursor >= 0 && m.cursor < len(entries) && !entries[m.cursor].Checked {
			if err := m.session.Toggle(entries[m.cursor].ID); err != nil {
				m.errorMsg = err.Error()
				return nil
			}
		}
	}

	res, err := m.session.Confirm()
	if err != nil {
		m.errorMsg = err.Error()
		return nil
	}
	m.result = &res
	return tea.Quit
}

func (m *Model) cancel() tea.Cmd {
	res, err := m.session.Cancel()
	if err != nil {
		m.errorMsg = err.Error()
		return nil
	}
	m.result = &res
	return tea.Quit
}
