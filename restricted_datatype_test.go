package rdfclosure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRestrictedDatatypes(t *testing.T) {
	g := NewGraph("")
	dt := NewResource("http://example.org/Percentage")
	facetList := NewBlankNode("facets")
	facetNode := NewBlankNode("facet0")

	g.Add(dt, RDFType, RDFSDatatype)
	g.Add(dt, OWLOnDatatype, XSDInteger)
	g.Add(dt, OWLWithRestrictions, facetList)
	g.Add(facetList, RDFFirst, facetNode)
	g.Add(facetList, RDFRest, RDFNil)
	g.Add(facetNode, XSDMinInclusive, NewLiteral("0"))
	g.Add(facetNode, XSDMaxInclusive, NewLiteral("100"))

	restricted := ExtractRestrictedDatatypes(g)
	require.Len(t, restricted, 1)
	assert.True(t, restricted[0].IRI.Equal(dt))
	assert.True(t, restricted[0].Base.Equal(XSDInteger))
	assert.True(t, restricted[0].Admits("50"))
	assert.False(t, restricted[0].Admits("150"))
	assert.False(t, restricted[0].Admits("-1"))
}

func TestRestrictedDatatypeLengthFacets(t *testing.T) {
	rt := &RestrictedDatatype{
		IRI:  NewResource("http://example.org/ShortCode"),
		Base: XSDString,
		Facets: []Facet{
			{Name: XSDMinLength, Value: "2"},
			{Name: XSDMaxLength, Value: "4"},
		},
	}
	assert.True(t, rt.Admits("abc"))
	assert.False(t, rt.Admits("a"))
	assert.False(t, rt.Admits("abcde"))
}
