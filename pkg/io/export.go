package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mvoggen/grove/pkg/forest"
)

// item is the wire representation of a forest.Item. The children
// pointer is nil for leaves and non-nil (possibly empty) for nodes.
type item struct {
	Name     string  `json:"name"`
	Children *[]item `json:"children,omitempty"`
}

func toWire(items []*forest.Item) []item {
	out := make([]item, len(items))
	for i, it := range items {
		w := item{Name: it.Name}
		if !it.IsLeaf() {
			children := toWire(it.Children)
			w.Children = &children
		}
		out[i] = w
	}
	return out
}

// WriteJSON encodes a forest as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip
// processing. WriteJSON does not close w.
func WriteJSON(items []*forest.Item, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toWire(items)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a forest to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(items []*forest.Item, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteJSON(items, f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
