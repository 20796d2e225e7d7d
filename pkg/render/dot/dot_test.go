package dot

import (
	"strings"
	"testing"

	"github.com/mvoggen/grove/pkg/forest"
)

func TestToDOT_Basic(t *testing.T) {
	items := forest.Parse("a, b(c)")

	out := ToDOT(items)

	if !strings.Contains(out, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	for _, label := range []string{`label="a"`, `label="b"`, `label="c"`} {
		if !strings.Contains(out, label) {
			t.Errorf("ToDOT() output missing %s", label)
		}
	}
	// b is n1, its child c is n2.
	if !strings.Contains(out, "n1 -> n2") {
		t.Error("ToDOT() output missing parent edge")
	}
}

func TestToDOT_RootsHaveNoIncomingEdges(t *testing.T) {
	out := ToDOT(forest.Parse("a, b"))

	if strings.Contains(out, "->") {
		t.Errorf("forest of leaves must have no edges:\n%s", out)
	}
}

func TestToDOT_DuplicateNames(t *testing.T) {
	// Duplicate names must yield distinct graph nodes.
	out := ToDOT(forest.Parse("a(id), b(id)"))

	if got := strings.Count(out, `label="id"`); got != 2 {
		t.Errorf("expected 2 id nodes, got %d:\n%s", got, out)
	}
}

func TestToDOT_NodeStyling(t *testing.T) {
	out := ToDOT(forest.Parse("group(leaf)"))

	if !strings.Contains(out, "lightgrey") {
		t.Error("nodes with children should be grey-filled")
	}
}

func TestToDOT_Deterministic(t *testing.T) {
	items := forest.Parse("a, b(c, d(e)), f")
	if ToDOT(items) != ToDOT(items) {
		t.Error("ToDOT() is not deterministic")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	svg := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00"><g/></svg>`)

	out := string(normalizeViewBox(svg))

	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="100"`) {
		t.Errorf("pixel width missing: %s", out)
	}
}

func TestNormalizeViewBox_NoViewBox(t *testing.T) {
	svg := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(svg); string(got) != string(svg) {
		t.Errorf("svg without viewBox must pass through unchanged")
	}
}
