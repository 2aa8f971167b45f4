package graph

import (
	"testing"

	"github.com/projectdiscovery/zonegraph/pkg/record"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64    { return &v }
func stringPtr(v string) *string { return &v }

func build(raws ...record.RawRecord) *Graph {
	return New(record.NormalizeAll(raws))
}

func nodeIDs(g *Graph) []string {
	var ids []string
	for _, node := range g.Nodes() {
		ids = append(ids, node.ID)
	}
	return ids
}

func TestGraphRenderExample(t *testing.T) {
	g := build(
		record.RawRecord{Name: "a.com", Type: "A", ResourceRecords: []record.ResourceRecord{{Value: "1.2.3.4"}}},
		record.RawRecord{Name: "b.com", Type: "CNAME", AliasTarget: &record.AliasTarget{DNSName: "a.com"}, Weight: int64Ptr(5)},
	)

	expected := `digraph {
  node [shape=rectangle];
  rankdir = LR;
  "1.2.3.4" [label="1.2.3.4"];
  "a.com:A" [label="a.com (A)"];
  "a.com:A" -> "1.2.3.4";
  "a.com:CNAME" [label="a.com (CNAME)"];
  "b.com:CNAME" [label="b.com (CNAME)"];
  "b.com:CNAME" -> "a.com:CNAME" [label="w:5"];
}
`
	require.Equal(t, expected, g.Render())
}

func TestGraphDeterministic(t *testing.T) {
	g := build(
		record.RawRecord{Name: "z.com", Type: "A", ResourceRecords: []record.ResourceRecord{{Value: "10.0.0.1"}, {Value: "10.0.0.2"}}},
		record.RawRecord{Name: "m.com", Type: "CNAME", AliasTarget: &record.AliasTarget{DNSName: "z.com"}, Region: stringPtr("us-east-1")},
	)
	require.Equal(t, g.Render(), g.Render(), "render output should be stable")
}

func TestGraphDeduplicatesSetIdentifiers(t *testing.T) {
	g := build(
		record.RawRecord{Name: "www.com", Type: "A", SetIdentifier: "one", AliasTarget: &record.AliasTarget{DNSName: "lb1.com"}, Weight: int64Ptr(10)},
		record.RawRecord{Name: "www.com", Type: "A", SetIdentifier: "two", AliasTarget: &record.AliasTarget{DNSName: "lb2.com"}, Weight: int64Ptr(20)},
	)

	require.Equal(t, []string{"lb1.com:A", "lb2.com:A", "www.com:A"}, nodeIDs(g))

	node := g.store.GetOrCreate("www.com:A", "unused")
	require.Equal(t, "www.com (A)", node.Label, "existing node label must not be overwritten")
	require.Equal(t, []Edge{
		{Source: "www.com:A", Target: "lb1.com:A", Label: "w:10"},
		{Source: "www.com:A", Target: "lb2.com:A", Label: "w:20"},
	}, node.Edges)
}

func TestGraphExcludesTXT(t *testing.T) {
	g := build(
		record.RawRecord{Name: "a.com", Type: ExcludedType, ResourceRecords: []record.ResourceRecord{{Value: `"v=spf1 -all"`}}, Weight: int64Ptr(1)},
	)
	require.Empty(t, g.Nodes())
	require.Equal(t, Stats{}, g.Stats())
	require.True(t, Excluded("TXT"))
	require.False(t, Excluded("A"))
}

func TestGraphAliasIgnoresResourceValues(t *testing.T) {
	g := New([]record.Record{{
		Name:           "b.com",
		Type:           "A",
		Alias:          true,
		AliasTarget:    "a.com",
		ResourceValues: []string{"1.1.1.1"},
	}})
	require.Equal(t, []string{"a.com:A", "b.com:A"}, nodeIDs(g))
	require.Equal(t, Stats{Nodes: 2, Edges: 1}, g.Stats())
}

func TestGraphRecordWithoutValues(t *testing.T) {
	g := build(record.RawRecord{Name: "empty.com", Type: "A"})
	require.Equal(t, []string{"empty.com:A"}, nodeIDs(g))
	require.Equal(t, Stats{Nodes: 1}, g.Stats())
}

func TestGraphEdgeTargetsExist(t *testing.T) {
	g := build(
		record.RawRecord{Name: "a.com", Type: "MX", ResourceRecords: []record.ResourceRecord{{Value: "10 mx1.a.com"}, {Value: "20 mx2.a.com"}}},
		record.RawRecord{Name: "c.com", Type: "A", AliasTarget: &record.AliasTarget{DNSName: "c.com"}},
		record.RawRecord{Name: "d.com", Type: "CNAME", ResourceRecords: []record.ResourceRecord{{Value: "a.com"}}},
	)
	for _, node := range g.Nodes() {
		for _, edge := range node.Edges {
			require.True(t, g.store.Exists(edge.Target), "edge target %s should exist", edge.Target)
		}
	}
	require.Equal(t, Stats{Nodes: 6, Edges: 4}, g.Stats())
}

func TestGraphOrderIndependence(t *testing.T) {
	first := record.RawRecord{Name: "x.com", Type: "A", SetIdentifier: "1", ResourceRecords: []record.ResourceRecord{{Value: "1.1.1.1"}}}
	second := record.RawRecord{Name: "x.com", Type: "A", SetIdentifier: "2", ResourceRecords: []record.ResourceRecord{{Value: "2.2.2.2"}}}
	other := record.RawRecord{Name: "a.com", Type: "CNAME", ResourceRecords: []record.ResourceRecord{{Value: "x.com"}}}

	forward := build(first, other, second)
	backward := build(second, other, first)

	require.Equal(t, nodeIDs(forward), nodeIDs(backward), "node order must not depend on input order")

	forwardNode := forward.store.GetOrCreate("x.com:A", "")
	backwardNode := backward.store.GetOrCreate("x.com:A", "")
	require.Equal(t, "1.1.1.1", forwardNode.Edges[0].Target)
	require.Equal(t, "2.2.2.2", backwardNode.Edges[0].Target)
	require.ElementsMatch(t, forwardNode.Edges, backwardNode.Edges)
}
