package history

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/studiowebux/pickli/internal/types"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	m, err := NewManager(dbPath)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	t.Cleanup(func() {
		m.Close()
	})
	return m
}

func TestSaveAndLoad(t *testing.T) {
	m := newTestManager(t)

	result := types.Result{
		Outcome:     types.OutcomeConfirmed,
		SelectedIDs: []string{"1", "3"},
	}
	if err := m.Save("Select Views", "views.json", types.ModeMultiple, 10, result); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Title != "Select Views" {
		t.Errorf("expected title 'Select Views', got %q", e.Title)
	}
	if e.Source != "views.json" {
		t.Errorf("expected source 'views.json', got %q", e.Source)
	}
	if e.Mode != string(types.ModeMultiple) {
		t.Errorf("expected mode 'multiple', got %q", e.Mode)
	}
	if e.ItemCount != 10 || e.SelectedCount != 2 {
		t.Errorf("unexpected counts: items=%d selected=%d", e.ItemCount, e.SelectedCount)
	}
	if !reflect.DeepEqual(e.SelectedIDs, []string{"1", "3"}) {
		t.Errorf("expected ids [1 3], got %v", e.SelectedIDs)
	}
	if e.Outcome != string(types.OutcomeConfirmed) {
		t.Errorf("expected confirmed outcome, got %q", e.Outcome)
	}
}

func TestSave_CancelledSession(t *testing.T) {
	m := newTestManager(t)

	result := types.Result{Outcome: types.OutcomeCancelled}
	if err := m.Save("Pick", "-", types.ModeSingle, 3, result); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if entries[0].SelectedCount != 0 {
		t.Errorf("cancelled session must log 0 selected, got %d", entries[0].SelectedCount)
	}
	if entries[0].Outcome != string(types.OutcomeCancelled) {
		t.Errorf("expected cancelled outcome, got %q", entries[0].Outcome)
	}
}

func TestClear(t *testing.T) {
	m := newTestManager(t)

	result := types.Result{Outcome: types.OutcomeConfirmed, SelectedIDs: []string{"a"}}
	m.Save("one", "-", types.ModeMultiple, 1, result)
	m.Save("two", "-", types.ModeMultiple, 1, result)

	if err := m.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	entries, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty history after Clear, got %d entries", len(entries))
	}
}
