package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/mvoggen/grove/pkg/forest"
)

// ToDOT converts a forest to Graphviz DOT format. The resulting DOT
// string can be rendered with [RenderSVG] or [RenderPNG].
//
// Leaves are drawn as plain boxes, nodes with a grey fill so groups
// stand out. Roots of the forest have no incoming edges.
func ToDOT(items []*forest.Item) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	next := 0
	writeItems(&buf, items, -1, &next)

	buf.WriteString("}\n")
	return buf.String()
}

// writeItems emits one statement per item and an edge from parent (a
// synthetic ID counter value, -1 for roots). IDs are allocated in
// pre-order so output is deterministic for a given forest.
func writeItems(buf *bytes.Buffer, items []*forest.Item, parent int, next *int) {
	for _, it := range items {
		id := *next
		*next++

		attrs := fmt.Sprintf("label=%q", it.Name)
		if !it.IsLeaf() {
			attrs += ", fillcolor=lightgrey"
		}
		fmt.Fprintf(buf, "  n%d [%s];\n", id, attrs)
		if parent >= 0 {
			fmt.Fprintf(buf, "  n%d -> n%d;\n", parent, id)
		}

		writeItems(buf, it.Children, id, next)
	}
}

// RenderSVG renders a DOT graph to SVG using the embedded Graphviz engine.
func RenderSVG(dotSrc string) ([]byte, error) {
	out, err := render(dotSrc, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using the embedded Graphviz engine.
func RenderPNG(dotSrc string) ([]byte, error) {
	return render(dotSrc, graphviz.PNG)
}

func render(dotSrc string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dotSrc))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the opening svg tag so the viewBox starts
// at the origin and explicit pixel dimensions are present. Graphviz
// emits point-based sizes that scale poorly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
