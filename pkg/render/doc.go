// Package render converts graphs to Graphviz DOT and rendered images.
//
// [ToDOT] emits DOT text directly; [SVG] and [PNG] run the Graphviz layout
// engine (via goccy/go-graphviz, no external binary required) over a DOT
// string. When the graph is cyclic, the edges of the detected cycle can be
// highlighted in the output.
//
// Typical usage:
//
//	dot := render.ToDOT(g, render.Options{HighlightCycle: true})
//	svg, err := render.SVG(dot)
package render
