package selection

import "fmt"

// NotFoundError is returned when an operation references an item id that
// is not part of the candidate set. The session stays open.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item %q not found in candidate set", e.ID)
}

// InvalidModeError is returned when a bulk action is invoked on a
// single-selection session. The session stays open.
type InvalidModeError struct {
	Op string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("%s requires multiple selection mode", e.Op)
}

// ClosedSessionError is returned when any operation is invoked after the
// session reached a terminal state. This is a caller usage bug, not a
// recoverable condition.
type ClosedSessionError struct {
	Op string
}

func (e *ClosedSessionError) Error() string {
	return fmt.Sprintf("%s invoked on a closed session", e.Op)
}

// DuplicateIDError is returned by New when the candidate set contains the
// same id twice
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate item id %q in candidate set", e.ID)
}
