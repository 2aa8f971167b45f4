package graph

import (
	"github.com/projectdiscovery/zonegraph/pkg/record"
)

// ExcludedType is the record type left out of the graph.
// TXT records carry free-form data and never point anywhere.
const ExcludedType = "TXT"

// Graph is a directed graph of record sets
type Graph struct {
	store *nodeStore
}

// Stats contains counters about a built graph
type Stats struct {
	Nodes int
	Edges int
}

// New builds a graph from the records in a single pass, in input order.
func New(records []record.Record) *Graph {
	g := &Graph{store: newNodeStore()}
	for _, r := range records {
		g.add(r)
	}
	return g
}

// Excluded reports whether records of recordType are skipped
func Excluded(recordType string) bool {
	return recordType == ExcludedType
}

// add adds a record and its outgoing edges to the graph
func (g *Graph) add(r record.Record) {
	if Excluded(r.Type) {
		return
	}

	src := g.getOrCreateNamed(r.Name, r.Type)
	if r.Alias {
		// The alias target takes the type of the aliasing record
		dst := g.getOrCreateNamed(r.AliasTarget, r.Type)
		src.addEdge(dst.ID, r.RoutingDescriptor)
		return
	}
	for _, value := range r.ResourceValues {
		dst := g.store.GetOrCreate(value, value)
		src.addEdge(dst.ID, r.RoutingDescriptor)
	}
}

func (g *Graph) getOrCreateNamed(name, recordType string) *Node {
	return g.store.GetOrCreate(NodeID(name, recordType), NodeLabel(name, recordType))
}

// NodeID returns the identity of the node for a name and type
func NodeID(name, recordType string) string {
	return name + ":" + recordType
}

// NodeLabel returns the display label of the node for a name and type
func NodeLabel(name, recordType string) string {
	return name + " (" + recordType + ")"
}

// Nodes returns the nodes of the graph sorted by id
func (g *Graph) Nodes() []*Node {
	return g.store.Sorted()
}

// Stats returns the number of nodes and edges in the graph
func (g *Graph) Stats() Stats {
	stats := Stats{Nodes: g.store.Len()}
	for _, node := range g.store.nodes {
		stats.Edges += len(node.Edges)
	}
	return stats
}
