package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mvoggen/grove/pkg/forest"
)

func fromWire(items []item) []*forest.Item {
	if len(items) == 0 {
		return nil
	}
	out := make([]*forest.Item, len(items))
	for i, w := range items {
		if w.Children == nil {
			out[i] = forest.Leaf(w.Name)
			continue
		}
		out[i] = forest.Node(w.Name, fromWire(*w.Children)...)
	}
	return out
}

// ReadJSON decodes a JSON forest from r.
//
// The input must be a JSON array of items, each with a "name" field
// and an optional "children" array. An item with a "children" key is
// a node, even when the array is empty; an item without one is a leaf.
//
// The returned forest is independent of r and can be modified safely
// after ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) ([]*forest.Item, error) {
	var data []item
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return fromWire(data), nil
}

// ImportJSON reads a JSON file at path and returns the decoded forest.
func ImportJSON(path string) ([]*forest.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
