package forest

import (
	"fmt"
	"io"
	"strings"
)

// indentUnit is the fixed indentation step for one nesting level.
const indentUnit = "  "

// Fprint writes the forest to w as an indented hierarchy, one line per
// item: two spaces per nesting level, a "- " marker, then the name.
// Node children follow their node's line immediately, one level
// deeper, before the next sibling.
func Fprint(w io.Writer, items []*Item) {
	FprintIndent(w, items, 0)
}

// FprintIndent is [Fprint] starting at the given indentation level.
func FprintIndent(w io.Writer, items []*Item, indent int) {
	for _, it := range items {
		fmt.Fprintf(w, "%s- %s\n", strings.Repeat(indentUnit, indent), it.Name)
		FprintIndent(w, it.Children, indent+1)
	}
}

// Sprint returns the indented hierarchy as a string.
func Sprint(items []*Item) string {
	var b strings.Builder
	Fprint(&b, items)
	return b.String()
}
