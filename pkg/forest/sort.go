package forest

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort reorders items alphabetically by name, in place, at every
// depth. Siblings are compared with the Unicode default collation;
// use [SortCollated] for a specific locale. The sort is stable, so
// duplicate names keep their relative order and sorting an already
// sorted forest is a no-op.
func Sort(items []*Item) {
	SortCollated(items, collate.New(language.Und))
}

// SortCollated is [Sort] with an explicit collator. Each sibling slice
// is ordered before its nodes' child slices are visited; leaves are
// not recursed into.
func SortCollated(items []*Item, c *collate.Collator) {
	slices.SortStableFunc(items, func(a, b *Item) int {
		return c.CompareString(a.Name, b.Name)
	})
	for _, it := range items {
		if len(it.Children) > 0 {
			SortCollated(it.Children, c)
		}
	}
}
