// Package io provides JSON import and export for parsed forests.
//
// The format is a JSON array of items. A leaf carries only its name;
// a node additionally carries a "children" array, which is kept even
// when empty so the leaf/node distinction survives a round trip:
//
//	[
//	  {"name": "a"},
//	  {"name": "b", "children": [{"name": "c"}, {"name": "d"}]},
//	  {"name": "empty", "children": []}
//	]
//
// Use [WriteJSON]/[ReadJSON] with streams, or [ExportJSON]/[ImportJSON]
// with file paths. Exported JSON re-imports to a structurally identical
// forest.
package io
