package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/pickli/internal/selection"
	"github.com/studiowebux/pickli/internal/types"
)

// Mode represents the current dialog input mode
type Mode int

const (
	ModeList   Mode = iota // navigating the checkbox list
	ModeFilter             // filter text box focused
	ModeHelp               // help overlay
)

// Model is the bubbletea model for one selection dialog session. All
// selection semantics live in the Session; the model only maps key
// presses to operations and draws the render feed.
type Model struct {
	session *selection.Session
	title   string
	mode    Mode

	// Filter input
	filterInput textinput.Model

	// List navigation
	cursor int // index into the visible entries
	offset int // scroll offset for long lists

	// UI state
	width     int
	height    int
	statusMsg string
	errorMsg  string
	gPressed  bool // track 'g' for the 'gg' vim motion

	// Help overlay
	helpView viewport.Model

	// Terminal result, set when the session ends
	result *types.Result
}

// New creates a dialog model over an open session
func New(sess *selection.Session, title string) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "type to filter..."
	ti.CharLimit = 200

	return Model{
		session:     sess,
		title:       title,
		mode:        ModeList,
		filterInput: ti,
		helpView:    viewport.New(80, 20),
	}
}

// Result returns the terminal outcome, or nil while the dialog is open
func (m *Model) Result() *types.Result {
	return m.result
}

// Init initializes the dialog
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)

	case tea.MouseMsg:
		// Discard mouse events so terminal scrolling doesn't leak through;
		// navigation is keyboard-only

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filterInput.Width = msg.Width - 10
		m.adjustScrollOffset()
	}

	return m, nil
}

// View renders the dialog
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	if m.mode == ModeHelp {
		return m.renderHelp()
	}
	return m.renderDialog()
}

// RunOptions controls how the dialog program is started
type RunOptions struct {
	// Input/Output override the program's terminal streams. Leave nil for
	// the defaults. Used when stdin carries the item list and stdout must
	// stay clean for the result.
	Input  io.Reader
	Output io.Writer

	// InitialFilter pre-fills the filter box before the first render
	InitialFilter string
}

// Run drives a dialog session to completion and returns its result
func Run(sess *selection.Session, title string, opts RunOptions) (types.Result, error) {
	m := New(sess, title)
	if opts.InitialFilter != "" {
		if err := sess.SetFilter(opts.InitialFilter); err != nil {
			return types.Result{}, err
		}
		m.filterInput.SetValue(opts.InitialFilter)
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(&m, progOpts...)
	final, err := p.Run()
	if err != nil {
		return types.Result{}, err
	}

	fm, ok := final.(*Model)
	if !ok || fm.result == nil {
		// The program ended without a terminal transition (e.g. killed);
		// treat it as a cancellation
		return types.Result{Outcome: types.OutcomeCancelled}, nil
	}
	return *fm.result, nil
}
