// Package graph builds a directed graph out of normalized record sets
// and renders it in the Graphviz DOT language.
//
// Every (name, type) pair becomes a single node no matter how many
// record sets declare it, so routing policy variants of a name collapse
// onto one node with one edge per variant. Aliases point to a node with
// the type of the aliasing record, plain values point to an untyped node
// labelled with the value itself.
//
// Nodes are rendered sorted by id, each followed by its own edges in the
// order they were added, which keeps the output stable across runs.
package graph
