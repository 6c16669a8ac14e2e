package tui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/pickli/internal/types"
)

func buildingItems() []types.Item {
	return []types.Item{
		{ID: "1", Name: "Wall"},
		{ID: "2", Name: "Door"},
		{ID: "3", Name: "Window"},
	}
}

func TestNew_InitialState(t *testing.T) {
	m := CreateTestModel(t, buildingItems(), types.ModeMultiple)

	if m.mode != ModeList {
		t.Errorf("expected ModeList, got %v", m.mode)
	}
	if m.cursor != 0 {
		t.Errorf("expected cursor 0, got %d", m.cursor)
	}
	if m.Result() != nil {
		t.Error("expected no result while dialog is open")
	}
}

func TestSpace_TogglesCursorItem(t *testing.T) {
	m := CreateTestModel(t, buildingItems(), types.ModeMultiple)

	PressKey(t, m, tea.KeySpace)
	if m.session.CheckedCount() != 1 {
		t.Fatalf("space should check the cursor item, count = %d", m.session.CheckedCount())
	}

	PressKey(t, m, tea.KeySpace)
	if m.session.CheckedCount() != 0 {
		t.Fatalf("second space should uncheck, count = %d", m.session.CheckedCount())
	}
}

func TestNavigation_WrapsAround(t *testing.T) {
	m := CreateTestModel(t, buildingItems(), types.ModeMultiple)

	PressRune(t, m, 'k')
	if m.cursor != 2 {
		t.Errorf("up from top should wrap to bottom, cursor = %d", m.cursor)
	}
	PressRune(t, m, 'j')
	if m.cursor != 0 {
		t.Errorf("down from bottom should wrap to top, cursor = %d", m.cursor)
	}
}

func TestVimMotions_TopAndBottom(t *testing.T) {
	m := CreateTestModel(t, buildingItems(), types.ModeMultiple)

	PressRune(t, m, 'G')
	if m.cursor != 2 {
		t.Errorf("G should jump to last item, cursor = %d", m.cursor)
	}

	PressRune(t, m, 'g')
	if m.cursor != 2 {
		t.Errorf("single g must not move yet, cursor = %d", m.cursor)
	}
	PressRune(t, m, 'g')
	if m.cursor != 0 {
		t.Errorf("gg should jump to first item, cursor = %d", m.cursor)
	}
}

func TestSelectAllAndNone(t *testing.T) {
	m := CreateTestModel(t, buildingItems(), types.ModeMultiple)

	PressRune(t, m, 'a')
	if m.session.CheckedCount() != 3 {
		t.Fatalf("'a' should check all visible, count = %d", m.session.CheckedCount())
	}

	PressRune(t, m, 'n')
	if m.session.CheckedCount() != 0 {
		t.Fatalf("'n' should uncheck all visible, count = %d", m.session.CheckedCount())
	}
}

func TestBulkActions_SingleModeShowError(t *testing.T) {
	m := CreateTestModel(t, buildingItems(), types.ModeSingle)

	PressRune(t, m, 'a')
	if m.errorMsg == "" {
		t.Error("'a' in single mode should surface the mode error")
	}
	if m.Result() != nil {
		t.Error("mode error must not end the session")
	}
}

func TestFilter_NarrowsListAndClampsCursor(t *testing.T) {
	m := CreateTestModel(t, buildingItems(), types.ModeMultiple)

	PressRune(t, m, 'G') // cursor on Window (index 2)
	PressRune(t, m, '/')
	if m.mode != ModeFilter {
		t.Fatalf("'/' should enter filter mode, got %v", m.mode)
	}

	TypeString(t, m, "door")
	entries := m.session.Visible()
	if len(entries) != 1 || entries[0].Name != "Door" {
		t.Fatalf("expected only Door visible, got %v", entries)
	}
	if m.cursor != 0 {
		t.Errorf("cursor must be clamped into the visible subset, got %d", m.cursor)
	}

	PressKey(t, m, tea.KeyEnter)
	if m.mode != ModeList {
		t.Errorf("enter should return to list mode, got %v", m.mode)
	}
	if m.session.Filter() != "door" {
		t.Errorf("enter should keep the filter, got %q", m.session.Filter())
	}
}

func TestFilter_EscClears(t *testing.T) {
	m := CreateTestModel(t, buildingItems(), types.ModeMultiple)

	PressRune(t, m, '/')
	TypeString(t, m, "win")
	PressKey(t, m, tea.KeyEsc)

	if m.mode != ModeList {
		t.Errorf("esc should return to list mode, got %v", m.mode)
	}
	if m.session.Filter() != "" {
		t.Errorf("esc should clear the filter, got %q", m.session.Filter())
	}
	if len(m.session.Visible()) != 3 {
		t.Errorf("all items should be visible again, got %d", len(m.session.Visible()))
	}
}

func TestFilteredBulkSelect_LeavesHiddenUntouched(t *testing.T) {
	m := CreateTestModel(t, buildingItems(), types.ModeMultiple)

	PressRune(t, m, '/')
	TypeString(t, m, "win")
	PressKey(t, m, tea.KeyEnter)
	PressRune(t, m, 'a') // only Window visible

	PressRune(t, m, 'c') // clear filter
	if m.session.Filter() != "" {
		t.Fatalf("'c' should clear the filter, got %q", m.session.Filter())
	}

	PressKey(t, m, tea.KeySpace) // toggle Wall at cursor 0
	PressKey(t, m, tea.KeyEnter)

	res := m.Result()
	if res == nil || !res.Confirmed() {
		t.Fatal("expected confirmed result")
	}
	want := []string{"1", "3"}
	if !reflect.DeepEqual(res.SelectedIDs, want) {
		t.Errorf("expected %v in original order, got %v", want, res.SelectedIDs)
	}
}

func TestEnter_ConfirmsEmptySelection(t *testing.T) {
	m := CreateTestModel(t, buildingItems(), types.ModeMultiple)

	PressKey(t, m, tea.KeyEnter)
	res := m.Result()
	if res == nil {
		t.Fatal("expected a result after enter")
	}
	if !res.Confirmed() {
		t.Error("expected confirmed outcome")
	}
	if len(res.SelectedIDs) != 0 {
		t.Errorf("expected empty selection, got %v", res.SelectedIDs)
	}
}

func TestEsc_Cancels(t *testing.T) {
	m := CreateTestModel(t, buildingItems(), types.ModeMultiple)

	PressKey(t, m, tea.KeySpace)
	PressKey(t, m, tea.KeyEsc)

	res := m.Result()
	if res == nil {
		t.Fatal("expected a result after esc")
	}
	if res.Outcome != types.OutcomeCancelled {
		t.Errorf("expected cancelled outcome, got %s", res.Outcome)
	}
	if res.SelectedIDs != nil {
		t.Errorf("cancelled result must carry no ids, got %v", res.SelectedIDs)
	}
}

func TestSingleMode_EnterPicksCursorRow(t *testing.T) {
	items := []types.Item{
		{ID: "1", Name: "A"},
		{ID: "2", Name: "B"},
	}
	m := CreateTestModel(t, items, types.ModeSingle)

	PressRune(t, m, 'j') // cursor on B
	PressKey(t, m, tea.KeyEnter)

	res := m.Result()
	if res == nil || !res.Confirmed() {
		t.Fatal("expected confirmed result")
	}
	if !reflect.DeepEqual(res.SelectedIDs, []string{"2"}) {
		t.Errorf("enter should pick the cursor row in single mode, got %v", res.SelectedIDs)
	}
}

func TestSingleMode_SpaceMovesSelection(t *testing.T) {
	items := []types.Item{
		{ID: "1", Name: "A"},
		{ID: "2", Name: "B"},
	}
	m := CreateTestModel(t, items, types.ModeSingle)

	PressKey(t, m, tea.KeySpace) // check A
	PressRune(t, m, 'j')
	PressKey(t, m, tea.KeySpace) // check B, A auto-clears
	PressKey(t, m, tea.KeyEnter)

	res := m.Result()
	if !reflect.DeepEqual(res.SelectedIDs, []string{"2"}) {
		t.Errorf("expected [2] with 1 auto-cleared, got %v", res.SelectedIDs)
	}
}

func TestScrollOffset_FollowsCursor(t *testing.T) {
	items := make([]types.Item, 50)
	for i := range items {
		items[i] = types.Item{ID: string(rune('a' + i%26)) + string(rune('0'+i/26)), Name: "Item"}
	}
	m := CreateTestModel(t, items, types.ModeMultiple)

	PressRune(t, m, 'G')
	pageSize := m.listPageSize()
	if m.offset != len(items)-pageSize {
		t.Errorf("expected offset %d after G, got %d", len(items)-pageSize, m.offset)
	}

	PressRune(t, m, 'g')
	PressRune(t, m, 'g')
	if m.offset != 0 {
		t.Errorf("expected offset 0 after gg, got %d", m.offset)
	}
}

func TestView_RendersWithoutSize(t *testing.T) {
	m := CreateTestModel(t, buildingItems(), types.ModeMultiple)
	m.width = 0

	if got := m.View(); got != "Initializing..." {
		t.Errorf("zero-width view should show init placeholder, got %q", got)
	}
}

func TestHelpOverlay_OpenAndClose(t *testing.T) {
	m := CreateTestModel(t, buildingItems(), types.ModeMultiple)

	PressRune(t, m, '?')
	if m.mode != ModeHelp {
		t.Fatalf("'?' should open help, got %v", m.mode)
	}

	PressKey(t, m, tea.KeyEsc)
	if m.mode != ModeList {
		t.Errorf("esc should close help, got %v", m.mode)
	}
}
