package forest_test

import (
	"os"

	"github.com/mvoggen/grove/pkg/forest"
)

func ExampleParse() {
	items := forest.Parse("a, b(c, d), e")
	forest.Fprint(os.Stdout, items)
	// Output:
	// - a
	// - b
	//   - c
	//   - d
	// - e
}

func ExampleSort() {
	items := forest.Parse("banana, apple(seeds, skin), cherry")
	forest.Sort(items)
	forest.Fprint(os.Stdout, items)
	// Output:
	// - apple
	//   - seeds
	//   - skin
	// - banana
	// - cherry
}

func ExampleParse_outerParentheses() {
	// A parenthesized group with no preceding name replaces the
	// sequence parsed so far, so a fully wrapped input parses as if
	// the wrapper were not there.
	items := forest.Parse("(id, name, type(id))")
	forest.Fprint(os.Stdout, items)
	// Output:
	// - id
	// - name
	// - type
	//   - id
}
