package rdfclosure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario tests: the end-to-end input/outcome pairs of spec.md §8, S1-S7.

func TestScenarioS1DisjointClassesCommonIndividual(t *testing.T) {
	g := NewGraph("")
	c1 := NewResource("http://test.org/c1")
	c2 := NewResource("http://test.org/c2")
	x := NewResource("http://test.org/x")

	g.Add(c1, OWLDisjointWith, c2)
	g.Add(x, RDFType, c1)
	g.Add(x, RDFType, c2)

	result, err := Expand(g, Options{OWLRL: true})
	require.NoError(t, err)

	want := "Disjoint classes http://test.org/c1 and http://test.org/c2 have a common individual http://test.org/x"
	found := false
	for _, e := range result.Errors {
		if e.Kind == KindInconsistency && e.Message == want {
			found = true
		}
	}
	assert.True(t, found, "expected error %q, got %+v", want, result.Errors)
}

func TestScenarioS2MaxCardinalityOneCollapsesFillers(t *testing.T) {
	g := NewGraph("")
	x := NewResource("http://test.org/x")
	p := NewResource("http://test.org/p")
	u := NewResource("http://test.org/u")
	y1 := NewResource("http://test.org/y1")
	y2 := NewResource("http://test.org/y2")

	g.Add(x, OWLMaxCardinality, NewLiteral("1"))
	g.Add(x, OWLOnProperty, p)
	g.Add(u, RDFType, x)
	g.Add(u, p, y1)
	g.Add(u, p, y2)

	_, err := Expand(g, Options{OWLRL: true})
	require.NoError(t, err)

	assert.True(t, g.Contains(y1, OWLSameAs, y2) || g.Contains(y2, OWLSameAs, y1))
}

func TestScenarioS3MaxQualifiedCardinalityZeroViolation(t *testing.T) {
	g := NewGraph("")
	x := NewResource("http://test.org/x")
	p := NewResource("http://test.org/p")
	c := NewResource("http://test.org/C")
	u := NewResource("http://test.org/u")
	y := NewResource("http://test.org/y")

	g.Add(x, OWLMaxQualifiedCardinality, NewLiteral("0"))
	g.Add(x, OWLOnProperty, p)
	g.Add(x, OWLOnClass, c)
	g.Add(u, RDFType, x)
	g.Add(u, p, y)
	g.Add(y, RDFType, c)

	result, err := Expand(g, Options{OWLRL: true})
	require.NoError(t, err)

	want := "Erroneous usage of maximum qualified cardinality with http://test.org/x, http://test.org/C and http://test.org/y"
	found := false
	for _, e := range result.Errors {
		if e.Kind == KindInconsistency && e.Message == want {
			found = true
		}
	}
	assert.True(t, found, "expected error %q, got %+v", want, result.Errors)
}

func TestScenarioS4SameAsDifferentFromClash(t *testing.T) {
	g := NewGraph("")
	x := NewResource("http://test.org/x")
	y := NewResource("http://test.org/y")

	g.Add(x, OWLSameAs, y)
	g.Add(x, OWLDifferentFrom, y)

	result, err := Expand(g, Options{OWLRL: true})
	require.NoError(t, err)

	const prefix = "'sameAs' and 'differentFrom' cannot be used on the same subject-object pair:"
	found := false
	for _, e := range result.Errors {
		if e.Kind == KindInconsistency && strings.HasPrefix(e.Message, prefix) {
			found = true
		}
	}
	assert.True(t, found, "expected an error beginning %q, got %+v", prefix, result.Errors)
}

func TestScenarioS5DatatypeAxiomsRDFSRegime(t *testing.T) {
	g := NewGraph("")

	_, err := Expand(g, Options{RDFS: true, Axioms: true, DatatypeAxioms: true})
	require.NoError(t, err)

	assert.True(t, g.Contains(XSDInteger, RDFType, RDFSDatatype))
	assert.True(t, g.Contains(XSDInt, RDFSSubClassOf, XSDLong))
}

func TestScenarioS6RestrictedDatatypeFacetTyping(t *testing.T) {
	// The proxy typing this scenario checks for is, by design, one of the
	// triples InstallLiteralProxies's restore step discards (any triple
	// whose subject is a literal proxy is an inference by-product, per
	// Literals.py's restore — spec.md §9), so it is only observable between
	// the one-time pass and restore. Drive that stage directly rather than
	// through the full Expand/Restore round trip.
	g := NewGraph("")
	a := NewResource("http://test.org/a")
	p := NewResource("http://test.org/p")
	tt := NewResource("http://test.org/T")
	facetList := NewBlankNode("facets")
	facets2 := NewBlankNode("facets2")
	minFacet := NewBlankNode("f0")
	maxFacet := NewBlankNode("f1")

	g.Add(tt, RDFType, RDFSDatatype)
	g.Add(tt, OWLOnDatatype, XSDInteger)
	g.Add(tt, OWLWithRestrictions, facetList)
	g.Add(facetList, RDFFirst, minFacet)
	g.Add(facetList, RDFRest, facets2)
	g.Add(minFacet, XSDMinInclusive, NewLiteral("1"))
	g.Add(facets2, RDFFirst, maxFacet)
	g.Add(facets2, RDFRest, RDFNil)
	g.Add(maxFacet, XSDMaxInclusive, NewLiteral("6"))

	g.Add(a, p, NewTypedLiteral("2", XSDInteger))

	handler := NewDatatypeHandler(false)
	errLog := NewErrorLog()
	restricted := ExtractRestrictedDatatypes(g)
	require.Len(t, restricted, 1)

	proxies := InstallLiteralProxies(g, handler, errLog)
	e := &Engine{
		workGraph:   g,
		handler:     handler,
		proxies:     proxies,
		restricted:  restricted,
		errLog:      errLog,
		pendingSeen: make(map[string]bool),
	}

	owlRestrictedDatatypeTypingRules(e)
	e.flush()

	two, ok := proxies.ProxyFor(NewTypedLiteral("2", XSDInteger))
	require.True(t, ok)
	assert.True(t, g.Contains(two, RDFType, tt))
}

func TestScenarioS7PropertyChainGrandparents(t *testing.T) {
	g := NewGraph("")
	hasParent := NewResource("http://test.org/hasParent")
	hasGrandparent := NewResource("http://test.org/hasGrandparent")
	person := NewResource("http://test.org/Person")
	chain := NewBlankNode("chain")
	chainRest := NewBlankNode("chainRest")

	g.Add(hasGrandparent, OWLPropertyChainAxiom, chain)
	g.Add(chain, RDFFirst, hasParent)
	g.Add(chain, RDFRest, chainRest)
	g.Add(chainRest, RDFFirst, hasParent)
	g.Add(chainRest, RDFRest, RDFNil)
	g.Add(hasParent, RDFSDomain, person)
	g.Add(hasParent, RDFSRange, person)

	// Seven disjoint three-generation families (grandparent_i, parent_i,
	// child_i), each pre-typed Person except the first family's child, left
	// untyped so rdfs2 (via hasParent's domain) infers its Person membership
	// — the "one new Child inferred" of spec.md §8 S7.
	var newChild Term
	for i := 0; i < 7; i++ {
		grandparent := NewResource("http://test.org/grandparent" + string(rune('a'+i)))
		parent := NewResource("http://test.org/parent" + string(rune('a'+i)))
		child := NewResource("http://test.org/child" + string(rune('a'+i)))
		g.Add(grandparent, RDFType, person)
		g.Add(parent, RDFType, person)
		g.Add(parent, hasParent, grandparent)
		if i == 0 {
			newChild = child
		} else {
			g.Add(child, RDFType, person)
		}
		g.Add(child, hasParent, parent)
	}

	_, err := Expand(g, Options{RDFS: true, OWLRL: true})
	require.NoError(t, err)

	assert.Equal(t, 7, len(g.Triples(nil, hasGrandparent, nil)),
		"expected exactly seven inferred hasGrandparent assertions")
	assert.True(t, g.Contains(newChild, RDFType, person),
		"expected the untyped grandchild to be inferred a Person via hasParent's domain")
}

// Universal invariants, spec.md §8 items 1-6.

func TestInvariantMonotonicity(t *testing.T) {
	g := NewGraph("")
	worksAt := NewResource("http://example.org/worksAt")
	person := NewResource("http://example.org/Person")
	alice := NewResource("http://example.org/alice")
	acme := NewResource("http://example.org/acme")

	g.Add(worksAt, RDFSDomain, person)
	g.Add(alice, worksAt, acme)

	before := g.Snapshot()
	_, err := Expand(g, Options{RDFS: true})
	require.NoError(t, err)

	for _, tr := range before {
		assert.True(t, g.Contains(tr.Subject, tr.Predicate, tr.Object))
	}
}

func TestInvariantIdempotence(t *testing.T) {
	g1 := NewGraph("")
	worksAt := NewResource("http://example.org/worksAt")
	person := NewResource("http://example.org/Person")
	alice := NewResource("http://example.org/alice")
	acme := NewResource("http://example.org/acme")

	g1.Add(worksAt, RDFSDomain, person)
	g1.Add(alice, worksAt, acme)

	_, err := Expand(g1, Options{RDFS: true})
	require.NoError(t, err)
	firstPass := g1.Snapshot()

	_, err = Expand(g1, Options{RDFS: true})
	require.NoError(t, err)
	secondPass := g1.Snapshot()

	assert.Equal(t, len(firstPass), len(secondPass))
	for _, tr := range firstPass {
		assert.True(t, g1.Contains(tr.Subject, tr.Predicate, tr.Object))
	}
}

func TestInvariantLiteralRoundTrip(t *testing.T) {
	g := NewGraph("")
	s, p := NewResource("s"), NewResource("p")
	g.Add(s, p, NewTypedLiteral("42", XSDInteger))

	before := g.Snapshot()

	handler := NewDatatypeHandler(false)
	errLog := NewErrorLog()
	proxies := InstallLiteralProxies(g, handler, errLog)
	proxies.Restore()

	require.Equal(t, len(before), g.Len())
	for _, tr := range before {
		assert.True(t, g.Contains(tr.Subject, tr.Predicate, tr.Object))
	}
}

func TestInvariantSubsumptionSoundness(t *testing.T) {
	// Like S6, the typing this invariant checks only exists between the
	// one-time datatype pass and restore — a literal can never legally sit
	// in subject position, so restore discards it (spec.md §9). Drive the
	// datatype one-time rule directly instead of through a full Expand.
	g := NewGraph("")
	s, p := NewResource("s"), NewResource("p")
	g.Add(s, p, NewTypedLiteral("7", XSDInt))

	handler := NewDatatypeHandler(false)
	errLog := NewErrorLog()
	proxies := InstallLiteralProxies(g, handler, errLog)
	e := &Engine{
		workGraph:   g,
		handler:     handler,
		proxies:     proxies,
		errLog:      errLog,
		pendingSeen: make(map[string]bool),
	}

	owlOneTimeDatatypeRules(e)
	e.flush()

	proxyTriples := g.Triples(s, p, nil)
	require.Len(t, proxyTriples, 1)
	proxy := proxyTriples[0].Object

	assert.True(t, g.Contains(proxy, RDFType, XSDInt))
	assert.True(t, g.Contains(proxy, RDFType, XSDLong))
	assert.True(t, g.Contains(proxy, RDFType, XSDInteger))
}

func TestInvariantPropertyChainEndToEnd(t *testing.T) {
	g := NewGraph("")
	p1 := NewResource("http://example.org/p1")
	p2 := NewResource("http://example.org/p2")
	chainProp := NewResource("http://example.org/chain")
	chain := NewBlankNode("chain")
	rest := NewBlankNode("chainRest")
	u0, u1, u2 := NewResource("u0"), NewResource("u1"), NewResource("u2")

	g.Add(chainProp, OWLPropertyChainAxiom, chain)
	g.Add(chain, RDFFirst, p1)
	g.Add(chain, RDFRest, rest)
	g.Add(rest, RDFFirst, p2)
	g.Add(rest, RDFRest, RDFNil)
	g.Add(u0, p1, u1)
	g.Add(u1, p2, u2)

	_, err := Expand(g, Options{OWLRL: true})
	require.NoError(t, err)

	assert.True(t, g.Contains(u0, chainProp, u2))
}

func TestInvariantSameAsIsEquivalence(t *testing.T) {
	g := NewGraph("")
	x := NewResource("http://example.org/x")
	y := NewResource("http://example.org/y")
	g.Add(x, OWLSameAs, y)

	_, err := Expand(g, Options{OWLRL: true})
	require.NoError(t, err)

	// reflexive
	assert.True(t, g.Contains(x, OWLSameAs, x))
	assert.True(t, g.Contains(y, OWLSameAs, y))
	// symmetric
	assert.True(t, g.Contains(y, OWLSameAs, x))
	// transitive (via x sameAs x, x sameAs y already give nothing new, so
	// extend the chain to a third term)
	z := NewResource("http://example.org/z")
	g2 := NewGraph("")
	g2.Add(x, OWLSameAs, y)
	g2.Add(y, OWLSameAs, z)
	_, err = Expand(g2, Options{OWLRL: true})
	require.NoError(t, err)
	assert.True(t, g2.Contains(x, OWLSameAs, z))
}
