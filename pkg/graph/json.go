package graph

import (
	jsoniter "github.com/json-iterator/go"
)

type jsonGraph struct {
	Nodes []jsonNode `json:"nodes"`
}

type jsonNode struct {
	ID    string     `json:"id"`
	Label string     `json:"label,omitempty"`
	Edges []jsonEdge `json:"edges,omitempty"`
}

type jsonEdge struct {
	Target string `json:"target"`
	Label  string `json:"label,omitempty"`
}

// JSON returns the graph as a JSON document with the same ordering as Render
func (g *Graph) JSON() ([]byte, error) {
	out := jsonGraph{Nodes: make([]jsonNode, 0, g.store.Len())}
	for _, node := range g.Nodes() {
		item := jsonNode{ID: node.ID, Label: node.Label}
		for _, edge := range node.Edges {
			item.Edges = append(item.Edges, jsonEdge{Target: edge.Target, Label: edge.Label})
		}
		out.Nodes = append(out.Nodes, item)
	}
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(out)
}
