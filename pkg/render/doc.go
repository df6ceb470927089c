// Package render draws STP instances and their SGMWCS translation.
//
// # Overview
//
// [ToDOT] produces Graphviz DOT source for an instance. Terminals are
// highlighted, every node is labelled with the signals attached to it, and
// every arc carries the signal it was mapped to:
//
//   - arcs into non-terminals show their fresh edge signal
//   - arcs into a terminal t show S<t> dashed, since the solver sees them as
//     node signals of the source rather than edge signals
//
// # Rendering
//
// [RenderSVG] lays the DOT out in-process with go-graphviz. When the
// instance carries coordinates and [Options.UseCoords] is set, nodes are
// pinned to them and the neato engine is used instead of dot.
//
//	dot := render.ToDOT(inst, res, render.Options{Weights: true})
//	svg, err := render.RenderSVG(dot, render.Options{})
//
// [ToPDF] and [ToPNG] convert the SVG further using rsvg-convert.
package render
