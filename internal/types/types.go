package types

// SelectionMode controls how many items a dialog session may end up with
type SelectionMode string

const (
	// ModeSingle allows at most one checked item; checking an item clears the rest
	ModeSingle SelectionMode = "single"
	// ModeMultiple allows any number of checked items and enables bulk actions
	ModeMultiple SelectionMode = "multiple"
)

// Valid reports whether the mode is one of the two known values
func (m SelectionMode) Valid() bool {
	return m == ModeSingle || m == ModeMultiple
}

// Item is one candidate entry in a dialog session.
// The candidate set is fixed for the lifetime of a session; only the
// checked flag changes.
type Item struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Checked bool   `json:"checked,omitempty" yaml:"checked,omitempty"`
}

// Entry is one row of the render feed: what the view layer needs to draw
// an item under the current filter
type Entry struct {
	ID      string
	Name    string
	Checked bool
}

// Outcome is the terminal state of a dialog session
type Outcome string

const (
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeCancelled Outcome = "cancelled"
)

// Result is the sole data returned to the invoking application.
// SelectedIDs is nil when the session was cancelled; an empty (non-nil)
// slice means the user confirmed with nothing checked, which is a valid
// and distinct outcome.
type Result struct {
	Outcome     Outcome  `json:"outcome" yaml:"outcome"`
	SelectedIDs []string `json:"selectedIds" yaml:"selectedIds"`
}

// Confirmed reports whether the session ended with a confirmation
func (r Result) Confirmed() bool {
	return r.Outcome == OutcomeConfirmed
}

// HistoryEntry is one logged dialog invocation
type HistoryEntry struct {
	ID            int64    `json:"id"`
	Timestamp     string   `json:"timestamp"`
	Title         string   `json:"title"`
	Source        string   `json:"source"`
	Mode          string   `json:"mode"`
	ItemCount     int      `json:"itemCount"`
	SelectedCount int      `json:"selectedCount"`
	SelectedIDs   []string `json:"selectedIds"`
	Outcome       string   `json:"outcome"`
}
