package selection

import (
	"github.com/studiowebux/pickli/internal/types"
)

// state tracks the session lifecycle: operations are only valid while
// open, Confirm/Cancel are terminal
type state int

const (
	stateOpen state = iota
	stateConfirmed
	stateCancelled
)

// Session owns the selection state for one dialog invocation: the fixed
// candidate set, the transient filter text, and per-item checked state
// keyed by id. It has no knowledge of rendering; the view layer reads
// Visible() and subscribes to change notifications.
type Session struct {
	items    []types.Item // original candidate order, never mutated
	checked  map[string]bool
	known    map[string]bool
	filter   string
	mode     types.SelectionMode
	state    state
	matcher  Matcher
	onChange func()
}

// Option configures a Session at construction
type Option func(*Session)

// WithMatcher replaces the default substring visibility predicate
func WithMatcher(m Matcher) Option {
	return func(s *Session) {
		if m != nil {
			s.matcher = m
		}
	}
}

// WithOnChange registers a callback invoked after every successful
// mutation. The view layer uses it as an explicit "refresh needed"
// signal instead of implicit data binding.
func WithOnChange(fn func()) Option {
	return func(s *Session) {
		s.onChange = fn
	}
}

// New builds a session over the given candidate set. Initial checked
// state comes from each item's Checked field. In single mode only the
// first pre-checked item is kept. Duplicate ids are rejected.
func New(items []types.Item, mode types.SelectionMode, opts ...Option) (*Session, error) {
	s := &Session{
		items:   make([]types.Item, len(items)),
		checked: make(map[string]bool, len(items)),
		known:   make(map[string]bool, len(items)),
		mode:    mode,
		matcher: SubstringMatcher{},
	}
	copy(s.items, items)

	for _, it := range s.items {
		if s.known[it.ID] {
			return nil, &DuplicateIDError{ID: it.ID}
		}
		s.known[it.ID] = true
		if it.Checked {
			if mode == types.ModeSingle && len(s.checkedIDs()) > 0 {
				continue
			}
			s.checked[it.ID] = true
		}
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Mode returns the selection mode the session was built with
func (s *Session) Mode() types.SelectionMode {
	return s.mode
}

// Filter returns the current filter text
func (s *Session) Filter() string {
	return s.filter
}

// Open reports whether the session is still accepting operations
func (s *Session) Open() bool {
	return s.state == stateOpen
}

// SetFilter stores the filter text and recomputes visibility. Checked
// state is never touched; any string (including empty) is valid.
func (s *Session) SetFilter(text string) error {
	if s.state != stateOpen {
		return &ClosedSessionError{Op: "SetFilter"}
	}
	s.filter = text
	s.notify()
	return nil
}

// Toggle flips the checked state of one item. In single mode, checking
// an item clears every other item; unchecking the sole checked item
// leaves none checked.
func (s *Session) Toggle(id string) error {
	if s.state != stateOpen {
		return &ClosedSessionError{Op: "Toggle"}
	}
	if !s.known[id] {
		return &NotFoundError{ID: id}
	}

	if s.checked[id] {
		delete(s.checked, id)
	} else {
		if s.mode == types.ModeSingle {
			clear(s.checked)
		}
		s.checked[id] = true
	}
	s.notify()
	return nil
}

// SelectAll checks every item currently visible under the active filter.
// Items hidden by the filter keep their state: bulk actions operate on
// what the user currently sees.
func (s *Session) SelectAll() error {
	return s.bulkSet("SelectAll", true)
}

// SelectNone unchecks every item currently visible under the active
// filter, with the same visibility scoping as SelectAll.
func (s *Session) SelectNone() error {
	return s.bulkSet("SelectNone", false)
}

func (s *Session) bulkSet(op string, value bool) error {
	if s.state != stateOpen {
		return &ClosedSessionError{Op: op}
	}
	if s.mode != types.ModeMultiple {
		return &InvalidModeError{Op: op}
	}
	for _, it := range s.items {
		if !s.matcher.Match(it.Name, s.filter) {
			continue
		}
		if value {
			s.checked[it.ID] = true
		} else {
			delete(s.checked, it.ID)
		}
	}
	s.notify()
	return nil
}

// Visible returns the render feed for the current filter: one entry per
// visible item, in original candidate order
func (s *Session) Visible() []types.Entry {
	entries := make([]types.Entry, 0, len(s.items))
	for _, it := range s.items {
		if !s.matcher.Match(it.Name, s.filter) {
			continue
		}
		entries = append(entries, types.Entry{
			ID:      it.ID,
			Name:    it.Name,
			Checked: s.checked[it.ID],
		})
	}
	return entries
}

// CheckedCount returns how many items are currently checked, filtered or
// not
func (s *Session) CheckedCount() int {
	return len(s.checked)
}

// Checked returns the ids currently checked, in original candidate
// order, without ending the session
func (s *Session) Checked() []string {
	return s.checkedIDs()
}

// Len returns the size of the candidate set
func (s *Session) Len() int {
	return len(s.items)
}

// Confirm ends the session and returns the checked ids in original
// candidate order. An empty selection is a valid confirmed result.
func (s *Session) Confirm() (types.Result, error) {
	if s.state != stateOpen {
		return types.Result{}, &ClosedSessionError{Op: "Confirm"}
	}
	s.state = stateConfirmed
	return types.Result{
		Outcome:     types.OutcomeConfirmed,
		SelectedIDs: s.checkedIDs(),
	}, nil
}

// Cancel ends the session discarding all in-progress checked changes
func (s *Session) Cancel() (types.Result, error) {
	if s.state != stateOpen {
		return types.Result{}, &ClosedSessionError{Op: "Cancel"}
	}
	s.state = stateCancelled
	return types.Result{Outcome: types.OutcomeCancelled}, nil
}

// checkedIDs walks the original order so the result order never depends
// on toggle order or on the filtered view
func (s *Session) checkedIDs() []string {
	ids := make([]string, 0, len(s.checked))
	for _, it := range s.items {
		if s.checked[it.ID] {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

func (s *Session) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
