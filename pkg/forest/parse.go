package forest

import "strings"

// Parse converts grove notation into an ordered forest.
//
// The scan is a single left-to-right pass over the input, tracking a
// pending text buffer and the current parenthesis nesting depth. Only
// depth-0 delimiters are structural: a comma flushes the buffer as a
// leaf, an opening parenthesis turns the buffer into a node
// placeholder, and the matching close hands the accumulated group text
// to a recursive Parse call whose result becomes the placeholder's
// children. Deeper delimiters are kept as literal text for that
// recursive call, so correctness below depth 1 rests entirely on the
// depth counter, not on structural pair matching.
//
// Malformed input is never rejected. A close with no preceding named
// placeholder replaces the whole sequence built so far with the
// recursively parsed group contents; this matters in practice when the
// entire input is wrapped in one outer parenthesis pair, which then
// parses as if the wrapper were absent. Surplus closing parentheses
// drive the depth negative and degrade to partial structure.
//
// Recursion depth equals the nesting depth of the input, so
// pathologically deep input can exhaust the call stack.
func Parse(input string) []*Item {
	var (
		items []*Item
		buf   strings.Builder
		depth int
		open  = -1 // index of the most recently emitted node placeholder
	)

	flush := func() {
		if name := strings.TrimSpace(buf.String()); name != "" {
			items = append(items, Leaf(name))
		}
		buf.Reset()
	}

	for _, r := range input {
		switch {
		case r == '(':
			if depth == 0 {
				if name := strings.TrimSpace(buf.String()); name != "" {
					items = append(items, Node(name))
					open = len(items) - 1
					buf.Reset()
				}
			}
			buf.WriteRune('(')
			depth++
		case r == ')':
			depth--
			buf.WriteRune(')')
			if depth == 0 {
				children := Parse(stripParens(strings.TrimSpace(buf.String())))
				if open >= 0 {
					if children == nil {
						children = []*Item{}
					}
					items[open].Children = children
				} else {
					items = children
				}
				buf.Reset()
			}
		case r == ',' && depth == 0:
			flush()
		default:
			buf.WriteRune(r)
		}
	}
	flush()

	return items
}

// stripParens removes one outermost surrounding parenthesis pair.
func stripParens(s string) string {
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		return s[1 : len(s)-1]
	}
	return s
}
