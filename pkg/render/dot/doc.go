// Package dot renders parsed forests as Graphviz node-link diagrams.
//
// [ToDOT] converts a forest into DOT source with one box per item and
// an edge from every node to each of its children. Item names are not
// unique within a forest, so graph node identifiers are synthetic and
// names appear only as labels.
//
// [RenderSVG] and [RenderPNG] rasterize DOT source with the embedded
// Graphviz engine (goccy/go-graphviz); no external graphviz
// installation is required.
package dot
