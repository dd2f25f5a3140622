package rdfclosure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphAddIsIdempotent(t *testing.T) {
	g := NewGraph("")
	alice := NewResource("http://example.org/alice")
	knows := NewResource("http://example.org/knows")
	bob := NewResource("http://example.org/bob")

	assert.True(t, g.Add(alice, knows, bob))
	assert.False(t, g.Add(alice, knows, bob))
	assert.Equal(t, 1, g.Len())
}

func TestGraphAddDropsTriplesWithNilPosition(t *testing.T) {
	g := NewGraph("")
	added := g.Add(NewResource("http://example.org/a"), nil, NewResource("http://example.org/b"))
	assert.False(t, added)
	assert.Equal(t, 0, g.Len())
}

func TestGraphTriplesPatternMatching(t *testing.T) {
	g := NewGraph("")
	a, p1, p2, x, y := NewResource("a"), NewResource("p1"), NewResource("p2"), NewResource("x"), NewResource("y")
	g.Add(a, p1, x)
	g.Add(a, p2, y)
	g.Add(x, p1, y)

	require.Len(t, g.Triples(a, nil, nil), 2)
	require.Len(t, g.Triples(nil, p1, nil), 2)
	require.Len(t, g.Triples(nil, nil, y), 2)
	require.Len(t, g.Triples(a, p1, x), 1)
	require.Len(t, g.Triples(a, p1, y), 0)
}

func TestGraphRemove(t *testing.T) {
	g := NewGraph("")
	a, p, o := NewResource("a"), NewResource("p"), NewResource("o")
	g.Add(a, p, o)
	g.Remove(a, p, o)
	assert.Equal(t, 0, g.Len())
	assert.False(t, g.Contains(a, p, o))
}

func TestGraphItemsWalksRDFList(t *testing.T) {
	g := NewGraph("")
	head := NewBlankNode("l0")
	mid := NewBlankNode("l1")
	one := NewLiteral("1")
	two := NewLiteral("2")

	g.Add(head, RDFFirst, one)
	g.Add(head, RDFRest, mid)
	g.Add(mid, RDFFirst, two)
	g.Add(mid, RDFRest, RDFNil)

	items := g.Items(head)
	require.Len(t, items, 2)
	assert.True(t, items[0].Equal(one))
	assert.True(t, items[1].Equal(two))
}

func TestGraphItemsGuardsAgainstCycles(t *testing.T) {
	g := NewGraph("")
	a := NewBlankNode("cyc")
	g.Add(a, RDFFirst, NewLiteral("x"))
	g.Add(a, RDFRest, a)

	items := g.Items(a)
	assert.Len(t, items, 1)
}
