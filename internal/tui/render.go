package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/pickli/internal/types"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed   = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorBlue  = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#0000ff"} // Dark blue / Blue
	colorGray  = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan  = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleChecked = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// Checkbox and radio glyphs
const (
	boxChecked   = "☑"
	boxUnchecked = "☐"
	dotChecked   = "(•)"
	dotUnchecked = "( )"
)

// Layout constants
const (
	dialogWidthMargin  = 6 // horizontal margin around the dialog box
	dialogHeightMargin = 2 // vertical margin around the dialog box
	listOverheadLines  = 8 // title, filter line, separators, footer, status
)

// listPageSize returns how many item rows fit in the current terminal
func (m *Model) listPageSize() int {
	pageSize := m.height - dialogHeightMargin - listOverheadLines
	if pageSize < 1 {
		pageSize = 1
	}
	return pageSize
}

// renderDialog renders the selection dialog
func (m *Model) renderDialog() string {
	entries := m.session.Visible()
	pageSize := m.listPageSize()

	var b strings.Builder

	// Filter line: focused input in filter mode, otherwise the stored text
	switch {
	case m.mode == ModeFilter:
		b.WriteString(m.filterInput.View())
	case m.session.Filter() != "":
		b.WriteString(styleSubtle.Render("/ " + m.session.Filter()))
	default:
		b.WriteString(styleSubtle.Render("/ (no filter)"))
	}
	b.WriteString("\n\n")

	// Visible page of the list
	endIdx := m.offset + pageSize
	if endIdx > len(entries) {
		endIdx = len(entries)
	}

	if len(entries) == 0 {
		b.WriteString(styleSubtle.Render("  no items match the filter") + "\n")
	}

	for i := m.offset; i < endIdx; i++ {
		e := entries[i]

		box := boxUnchecked
		checkedBox := boxChecked
		if m.session.Mode() == types.ModeSingle {
			box = dotUnchecked
			checkedBox = dotChecked
		}

		var line string
		if e.Checked {
			line = styleChecked.Render(checkedBox) + " " + e.Name
		} else {
			line = styleSubtle.Render(box) + " " + e.Name
		}

		if i == m.cursor && m.mode == ModeList {
			b.WriteString(styleSelected.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	// Scroll indicator for long lists
	if len(entries) > pageSize {
		b.WriteString(styleSubtle.Render(fmt.Sprintf("\n  [%d-%d of %d]", m.offset+1, endIdx, len(entries))))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	content := styleTitle.Render(m.title) + "\n\n" + b.String()

	dialogBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(m.width - dialogWidthMargin).
		Height(m.height - dialogHeightMargin - 1).
		Padding(0, 1).
		Render(content)

	full := lipgloss.JoinVertical(lipgloss.Left, dialogBox, m.renderStatusBar())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		full,
	)
}

// renderFooter renders the key hints for the current mode
func (m *Model) renderFooter() string {
	if m.mode == ModeFilter {
		return styleSubtle.Render("[enter] apply [esc] clear filter")
	}
	if m.session.Mode() == types.ModeSingle {
		return styleSubtle.Render("[↑/↓ j/k] move [space] pick [/] filter [enter] confirm [esc/q] cancel [?] help")
	}
	return styleSubtle.Render("[↑/↓ j/k] move [space] toggle [a] all [n] none [/] filter [enter] confirm [esc/q] cancel [?] help")
}

// renderStatusBar renders checked/visible counts plus transient messages
func (m *Model) renderStatusBar() string {
	counts := fmt.Sprintf(" %d checked · %d visible / %d total",
		m.session.CheckedCount(),
		len(m.session.Visible()),
		m.session.Len(),
	)

	bar := styleSubtle.Render(counts)
	if m.errorMsg != "" {
		bar += "  " + styleError.Render(m.errorMsg)
	} else if m.statusMsg != "" {
		bar += "  " + m.statusMsg
	}
	return bar
}

// renderHelp renders the help overlay
func (m *Model) renderHelp() string {
	title := styleTitle.Render("Keyboard Shortcuts")
	footer := styleSubtle.Render("↑/↓ j/k: scroll | ESC/?: close")

	fullContent := title + "\n\n" + m.helpView.View() + "\n\n" + footer

	helpBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(m.width - dialogWidthMargin).
		Height(m.height - dialogHeightMargin - 1).
		Padding(1, 2).
		Render(fullContent)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox,
	)
}

// updateHelpView fills the help viewport
func (m *Model) updateHelpView() {
	var b strings.Builder

	b.WriteString("Navigation\n")
	b.WriteString("  ↑/k, ↓/j      move cursor\n")
	b.WriteString("  gg, G          first / last item\n\n")

	b.WriteString("Selection\n")
	b.WriteString("  space          toggle item\n")
	b.WriteString("  a              check all visible (multiple mode)\n")
	b.WriteString("  n              uncheck all visible (multiple mode)\n")
	b.WriteString("  y              copy checked ids to clipboard\n\n")

	b.WriteString("Filter\n")
	b.WriteString("  /              edit filter\n")
	b.WriteString("  c              clear filter\n")
	b.WriteString("  esc (in box)   clear and close filter\n\n")

	b.WriteString("Session\n")
	b.WriteString("  enter          confirm selection\n")
	b.WriteString("  esc, q, ctrl+c cancel\n\n")

	b.WriteString("Filtering only changes what is visible. Checked items\n")
	b.WriteString("hidden by the filter stay checked and are included in\n")
	b.WriteString("the confirmed result.\n")

	m.helpView.Width = m.width - dialogWidthMargin - 6
	m.helpView.Height = m.height - dialogHeightMargin - 8
	if m.helpView.Height < 1 {
		m.helpView.Height = 1
	}
	m.helpView.SetContent(b.String())
}
