package report

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mainseq/pkg/analysis"
	"github.com/matzehuels/mainseq/pkg/statistic"
)

// Zone fill colours.
const (
	colorNeutral     = "white"
	colorPain        = "#f4cccc"
	colorUselessness = "#fff2cc"
	colorBoth        = "#d9d2e9"
	colorViolation   = "#cc0000"
)

// DOTOptions configures graph diagrams.
type DOTOptions struct {
	// Detailed adds instability, abstractness and distance to node labels.
	Detailed bool
}

// ToDOT converts an analysis result to Graphviz DOT. Nodes are filled by
// zone of exclusion. Edges whose source is more stable than their target
// are drawn red. Dependencies naming no component appear as dashed nodes.
func ToDOT(res *analysis.Result, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=16, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	if res == nil || res.Skipped || res.Graph == nil {
		buf.WriteString("}\n")
		return buf.String()
	}

	g := res.Graph
	unresolved := map[string]bool{}
	for _, p := range res.Points {
		fmt.Fprintf(&buf, "  %q [%s];\n", p.Component, strings.Join(nodeAttrs(p, opts.Detailed), ", "))
		for _, dep := range g.Dependencies(p.Component) {
			if !g.Resolve(dep) {
				unresolved[dep] = true
			}
		}
	}
	for _, dep := range sortedKeys(unresolved) {
		fmt.Fprintf(&buf, "  %q [style=\"rounded,dashed\", fontcolor=grey40];\n", dep)
	}

	buf.WriteString("\n")
	for _, p := range res.Points {
		for _, dep := range g.Dependencies(p.Component) {
			if g.Resolve(dep) && res.Instability[p.Component] < res.Instability[dep] {
				fmt.Fprintf(&buf, "  %q -> %q [color=%q, penwidth=2];\n", p.Component, dep, colorViolation)
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q;\n", p.Component, dep)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(p statistic.Point, detailed bool) []string {
	label := p.DisplayName()
	if detailed {
		label += fmt.Sprintf("\nI=%.2f A=%.2f D=%.2f", p.Instability, p.Abstractness, p.Distance())
	}
	return []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("fillcolor=%q", zoneColor(p)),
	}
}

func zoneColor(p statistic.Point) string {
	pain, useless := p.InZoneOfPain(), p.InZoneOfUselessness()
	switch {
	case pain && useless:
		return colorBoth
	case pain:
		return colorPain
	case useless:
		return colorUselessness
	default:
		return colorNeutral
	}
}

func sortedKeys(m map[string]bool) []string {
	return slices.Sorted(maps.Keys(m))
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

// normalizeViewBox rewrites the root element so the diagram scales from
// the origin.
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

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
