package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvoggen/grove/pkg/forest"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{}
}

func update(t *testing.T, m ExploreModel, keys ...string) ExploreModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(ExploreModel)
		if !ok {
			t.Fatalf("Update returned %T, want ExploreModel", next)
		}
	}
	return m
}

func TestExploreModelStartsExpanded(t *testing.T) {
	m := NewExploreModel(forest.Parse("a, b(c, d(e))"))

	// a, b, c, d, e all visible.
	if len(m.visible) != 5 {
		t.Errorf("visible rows = %d, want 5", len(m.visible))
	}
}

func TestExploreModelCollapse(t *testing.T) {
	m := NewExploreModel(forest.Parse("a, b(c, d)"))

	// Move to b and collapse it.
	m = update(t, m, "down", "enter")

	if len(m.visible) != 2 {
		t.Errorf("visible rows after collapse = %d, want 2", len(m.visible))
	}

	// Toggle again re-expands.
	m = update(t, m, "enter")
	if len(m.visible) != 4 {
		t.Errorf("visible rows after re-expand = %d, want 4", len(m.visible))
	}
}

func TestExploreModelCollapseAll(t *testing.T) {
	m := NewExploreModel(forest.Parse("a(b(c)), d(e)"))

	m = update(t, m, "c")
	if len(m.visible) != 2 {
		t.Errorf("visible rows after collapse all = %d, want 2", len(m.visible))
	}

	m = update(t, m, "e")
	if len(m.visible) != 5 {
		t.Errorf("visible rows after expand all = %d, want 5", len(m.visible))
	}
}

func TestExploreModelCursorBounds(t *testing.T) {
	m := NewExploreModel(forest.Parse("a, b"))

	m = update(t, m, "up")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 (no wrap above top)", m.cursor)
	}

	m = update(t, m, "down", "down", "down")
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (no wrap below bottom)", m.cursor)
	}
}

func TestExploreModelCursorClampedAfterCollapse(t *testing.T) {
	m := NewExploreModel(forest.Parse("a(b, c, d)"))

	// Cursor on the last child, then collapse everything.
	m = update(t, m, "down", "down", "down", "c")

	if m.cursor >= len(m.visible) {
		t.Errorf("cursor %d out of range (%d visible rows)", m.cursor, len(m.visible))
	}
}

func TestExploreModelLeafToggleIsNoop(t *testing.T) {
	m := NewExploreModel(forest.Parse("a, b(c)"))

	before := len(m.visible)
	m = update(t, m, "enter") // cursor on leaf a
	if len(m.visible) != before {
		t.Error("toggling a leaf changed the visible rows")
	}
}

func TestExploreModelView(t *testing.T) {
	m := NewExploreModel(forest.Parse("a, b(c)"))

	view := m.View()
	for _, want := range []string{"Forest Explorer", "a", "b", "c"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
