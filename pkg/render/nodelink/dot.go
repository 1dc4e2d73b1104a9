package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/DimShadoWWW/npm2ebuild/pkg/resolver"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the recipe path and write status to node labels.
	// When false, labels show the package name and chosen version.
	Detailed bool
}

type node struct {
	pkg      *resolver.Package
	resolved bool
}

type edge struct {
	from, to string
	cycle    bool
}

// ToDOT converts a resolved dependency tree to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Packages reached along several paths appear once. Edges that close a
// dependency cycle are drawn dashed.
func ToDOT(root *resolver.Package, opts Options) string {
	var (
		order []string
		nodes = make(map[string]*node)
		edges []edge
		seen  = make(map[edge]bool)
	)

	root.Walk(func(p *resolver.Package, _ int) bool {
		n, ok := nodes[p.Name]
		if !ok {
			n = &node{pkg: p}
			nodes[p.Name] = n
			order = append(order, p.Name)
		}
		if !p.Cycle && !n.resolved {
			n.pkg, n.resolved = p, true
		}
		for _, c := range p.Dependencies {
			e := edge{from: p.Name, to: c.Name, cycle: c.Cycle}
			if !seen[e] {
				seen[e] = true
				edges = append(edges, e)
			}
		}
		return true
	})

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, name := range order {
		n := nodes[name]
		attrs := fmtAttrs(n, fmtLabel(n.pkg, opts.Detailed))
		fmt.Fprintf(&buf, "  %q [%s];\n", name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range edges {
		if e.cycle {
			fmt.Fprintf(&buf, "  %q -> %q [style=dashed];\n", e.from, e.to)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.from, e.to)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(p *resolver.Package, detailed bool) string {
	if p.Cycle {
		return p.Name
	}
	label := p.Name + "\n" + p.Version
	if !detailed {
		return label
	}

	status := "skipped"
	if p.Written {
		status = "written"
	}
	return label + "\n" + p.Path + "\n" + status
}

func fmtAttrs(n *node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if !n.resolved {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

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
