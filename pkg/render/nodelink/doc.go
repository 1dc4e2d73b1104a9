// Package nodelink renders resolved dependency trees as node-link diagrams.
//
// # Usage
//
// Convert a tree returned by [resolver.Resolver.Resolve] to DOT, then
// optionally render it to SVG:
//
//	dot := nodelink.ToDOT(root, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// # DOT Format
//
// Each package appears once, labelled with its name and chosen version, even
// when several parents depend on it. An edge back to a package that was
// still being resolved (a dependency cycle) is drawn dashed.
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with rounded box
// nodes and can be processed with external Graphviz tools as well.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is required.
package nodelink
