// Package forest parses the flat grove notation into an ordered forest
// of named items, and provides alphabetic sorting and hierarchical
// printing of the result.
//
// # Notation
//
// A forest is written as a comma-separated list of entries. Each entry
// is either a bare name or a name immediately followed by a
// parenthesized child list of the same form:
//
//	forest := entry (',' entry)*
//	entry  := name ('(' forest ')')?
//	name   := any run of characters excluding ',' '(' ')'
//
// Whitespace around names and delimiters is insignificant. Empty
// entries produced by stray commas are dropped rather than rejected.
//
// # Usage
//
//	items := forest.Parse("a, b(c, d), e")
//	forest.Sort(items)
//	forest.Fprint(os.Stdout, items)
//
// Output:
//
//	- a
//	- b
//	  - c
//	  - d
//	- e
//
// Parse never fails: unbalanced parentheses yield a best-effort,
// possibly partial forest instead of an error. Callers that need
// stricter guarantees must validate input shape themselves.
package forest
