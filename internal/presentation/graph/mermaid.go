package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/aretw0/bitlab/pkg/logic"
)

const (
	colorHigh = "#4ade80"
	colorLow  = "#4b5563"
)

// ConstructionMermaid produces a Mermaid flowchart of a universal-gate circuit.
// It applies semantic styling:
// - Inputs and output: ((Circle))
// - Basis gates: [Rectangle] labelled with the basis
// - Tied inputs (both pins on one wire): a single edge labelled "tied"
// If trace is non-nil, wires carrying 1 are styled high and wires carrying 0 low.
func ConstructionMermaid(c *logic.Circuit, trace logic.Trace) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", logic.WireA.Name(), logic.WireA.Name()))
	if !c.Kind.Unary() {
		sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", logic.WireB.Name(), logic.WireB.Name()))
	}
	for _, g := range c.Gates {
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", g.Out.Name(), c.Basis))
	}
	sb.WriteString(fmt.Sprintf("    out((\"%s\"))\n", c.Kind))

	// Edges, remembering which carry a high signal for linkStyle.
	var highEdges []string
	edge := 0
	addEdge := func(from logic.Wire, line string) {
		sb.WriteString(line)
		if trace != nil && trace.Value(from) {
			highEdges = append(highEdges, strconv.Itoa(edge))
		}
		edge++
	}

	for _, g := range c.Gates {
		if g.In0 == g.In1 {
			addEdge(g.In0, fmt.Sprintf("    %s -- \"tied\" --> %s\n", g.In0.Name(), g.Out.Name()))
			continue
		}
		addEdge(g.In0, fmt.Sprintf("    %s --> %s\n", g.In0.Name(), g.Out.Name()))
		addEdge(g.In1, fmt.Sprintf("    %s --> %s\n", g.In1.Name(), g.Out.Name()))
	}
	addEdge(c.Output, fmt.Sprintf("    %s --> out\n", c.Output.Name()))

	if trace != nil {
		sb.WriteString("\n    %% Signal Styles\n")
		sb.WriteString(fmt.Sprintf("    classDef high fill:%s,stroke:%s,color:#000;\n", colorHigh, colorHigh))
		sb.WriteString(fmt.Sprintf("    classDef low fill:#1f2937,stroke:%s,color:#fff;\n", colorLow))

		for w := 0; w < c.NumWires(); w++ {
			wire := logic.Wire(w)
			if wire == logic.WireB && c.Kind.Unary() {
				continue
			}
			sb.WriteString(fmt.Sprintf("    class %s %s;\n", wire.Name(), level(trace.Value(wire))))
		}
		sb.WriteString(fmt.Sprintf("    class out %s;\n", level(trace.Value(c.Output))))

		if len(highEdges) > 0 {
			sb.WriteString(fmt.Sprintf("    linkStyle %s stroke:%s,stroke-width:3px;\n", strings.Join(highEdges, ","), colorHigh))
		}
	}

	return sb.String()
}

// UnavailableMermaid renders the placeholder shown for pairs without a construction.
func UnavailableMermaid(kind domain.GateKind, basis domain.Basis) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	sb.WriteString(fmt.Sprintf("    placeholder[\"%s from %s gates: coming soon\"]\n", kind, basis))
	sb.WriteString("    classDef pending fill:#374151,stroke-dasharray:5 5,color:#fff;\n")
	sb.WriteString("    class placeholder pending;\n")
	return sb.String()
}

func level(v bool) string {
	if v {
		return "high"
	}
	return "low"
}
