package graph

import (
	"strings"
)

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// escape escapes a string for use inside a quoted DOT identifier
func escape(value string) string {
	return dotEscaper.Replace(value)
}

// Render returns the graph in the DOT language
func (g *Graph) Render() string {
	var builder strings.Builder

	builder.WriteString("digraph {\n")
	builder.WriteString("  node [shape=rectangle];\n")
	builder.WriteString("  rankdir = LR;\n")
	for _, node := range g.Nodes() {
		writeNode(&builder, node)
		for _, edge := range node.Edges {
			writeEdge(&builder, edge)
		}
	}
	builder.WriteString("}\n")
	return builder.String()
}

func writeNode(builder *strings.Builder, node *Node) {
	builder.WriteString(`  "`)
	builder.WriteString(escape(node.ID))
	builder.WriteString(`"`)
	if node.Label != "" {
		builder.WriteString(` [label="`)
		builder.WriteString(escape(node.Label))
		builder.WriteString(`"]`)
	}
	builder.WriteString(";\n")
}

func writeEdge(builder *strings.Builder, edge Edge) {
	builder.WriteString(`  "`)
	builder.WriteString(escape(edge.Source))
	builder.WriteString(`" -> "`)
	builder.WriteString(escape(edge.Target))
	builder.WriteString(`"`)
	if edge.Label != "" {
		builder.WriteString(` [label="`)
		builder.WriteString(escape(edge.Label))
		builder.WriteString(`"]`)
	}
	builder.WriteString(";\n")
}
