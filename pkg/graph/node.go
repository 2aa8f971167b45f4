package graph

import "sort"

// Node is a vertex of the graph
type Node struct {
	// ID is the unique identity of the node, ex. "example.com.:A"
	ID string
	// Label is the human readable name of the node
	Label string
	// Edges are the outgoing edges in insertion order
	Edges []Edge
}

// Edge is a directed edge owned by its source node.
// Only the id of the target is kept, nodes never reference each other.
type Edge struct {
	Source string
	Target string
	// Label is the routing descriptor of the record that created the edge
	Label string
}

// addEdge appends an edge from the node to target
func (n *Node) addEdge(target, label string) {
	n.Edges = append(n.Edges, Edge{Source: n.ID, Target: target, Label: label})
}

// nodeStore is a get-or-create index of nodes by id
type nodeStore struct {
	nodes map[string]*Node
}

// newNodeStore creates a new empty node store
func newNodeStore() *nodeStore {
	return &nodeStore{
		nodes: make(map[string]*Node),
	}
}

// GetOrCreate returns the node for id, creating it with label if it
// doesn't exist. An existing node is returned untouched.
func (s *nodeStore) GetOrCreate(id, label string) *Node {
	if node, ok := s.nodes[id]; ok {
		return node
	}
	node := &Node{ID: id, Label: label}
	s.nodes[id] = node
	return node
}

// Exists indicates if a node exists in the store
func (s *nodeStore) Exists(id string) bool {
	_, ok := s.nodes[id]
	return ok
}

// Len returns the number of nodes in the store
func (s *nodeStore) Len() int {
	return len(s.nodes)
}

// Sorted returns all nodes sorted ascending by id
func (s *nodeStore) Sorted() []*Node {
	nodes := make([]*Node, 0, len(s.nodes))
	for _, node := range s.nodes {
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].ID < nodes[j].ID
	})
	return nodes
}
