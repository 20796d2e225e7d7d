package forest

import (
	"reflect"
	"testing"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func TestSortRecursive(t *testing.T) {
	items := []*Item{
		Node("b", Leaf("z"), Leaf("a")),
		Leaf("a"),
	}

	Sort(items)

	want := []*Item{
		Leaf("a"),
		Node("b", Leaf("a"), Leaf("z")),
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Sort =\n%v\nwant\n%v", Sprint(items), Sprint(want))
	}
}

func TestSortIdempotent(t *testing.T) {
	items := Parse("d, b(z, a, y(q, p)), c, a")
	Sort(items)
	once := Sprint(items)

	Sort(items)
	if twice := Sprint(items); twice != once {
		t.Errorf("second Sort changed the forest:\n%s\nwant\n%s", twice, once)
	}
}

func TestSortStableWithDuplicates(t *testing.T) {
	// Duplicate names must keep their relative order: the node tagged
	// by its children stays between the two plain leaves.
	items := []*Item{
		Leaf("x"),
		Node("x", Leaf("first")),
		Leaf("x"),
		Leaf("a"),
	}

	Sort(items)

	if items[0].Name != "a" {
		t.Fatalf("items[0] = %q, want a", items[0].Name)
	}
	if items[1].Kind != KindLeaf || items[2].Kind != KindNode || items[3].Kind != KindLeaf {
		t.Errorf("duplicate x items reordered: kinds %v %v %v",
			items[1].Kind, items[2].Kind, items[3].Kind)
	}
}

func TestSortEmpty(t *testing.T) {
	Sort(nil) // must not panic
	var items []*Item
	Sort(items)
	if items != nil {
		t.Errorf("Sort(nil slice) = %v, want nil", items)
	}
}

func TestSortCollatedLocaleAware(t *testing.T) {
	// The Unicode default collation places "ä" between "a" and "b",
	// unlike a byte-wise comparison which would put it last.
	items := []*Item{Leaf("b"), Leaf("ä"), Leaf("a")}

	SortCollated(items, collate.New(language.Und))

	got := []string{items[0].Name, items[1].Name, items[2].Name}
	want := []string{"a", "ä", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortCollated = %v, want %v", got, want)
	}
}
