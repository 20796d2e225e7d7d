package forest

// Kind distinguishes leaf items from items that carry a child list.
type Kind int

const (
	// KindLeaf is a bare name with no child list.
	KindLeaf Kind = iota
	// KindNode is a named item followed by a parenthesized child list.
	// The list may be empty.
	KindNode
)

// Item is one named entry in a forest. An ordered []*Item slice
// represents siblings at one nesting level; order is insertion order
// as parsed until [Sort] is applied.
//
// Items form pure value trees: no back references, no shared
// ownership. Only [Sort] mutates them, and only by reordering child
// slices in place.
type Item struct {
	Name     string
	Kind     Kind
	Children []*Item // nil for leaves
}

// Leaf returns a new leaf item with the given name.
func Leaf(name string) *Item {
	return &Item{Name: name, Kind: KindLeaf}
}

// Node returns a new node item with the given name and children.
// A nil children slice is normalized to an empty one so that nodes
// and leaves stay distinguishable.
func Node(name string, children ...*Item) *Item {
	if children == nil {
		children = []*Item{}
	}
	return &Item{Name: name, Kind: KindNode, Children: children}
}

// IsLeaf reports whether the item has no child list.
func (it *Item) IsLeaf() bool { return it.Kind == KindLeaf }

// Count returns the total number of items in the subtree rooted at it,
// including itself.
func (it *Item) Count() int {
	n := 1
	for _, c := range it.Children {
		n += c.Count()
	}
	return n
}

// CountAll returns the total number of items across all depths of the
// given forest.
func CountAll(items []*Item) int {
	n := 0
	for _, it := range items {
		n += it.Count()
	}
	return n
}

// Depth returns the maximum nesting depth of the forest. An empty
// forest has depth 0, a forest of leaves has depth 1.
func Depth(items []*Item) int {
	max := 0
	for _, it := range items {
		if d := 1 + Depth(it.Children); d > max {
			max = d
		}
	}
	return max
}
