package rdfclosure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandRDFSDomainRangeInference(t *testing.T) {
	g := NewGraph("")
	worksAt := NewResource("http://example.org/worksAt")
	person := NewResource("http://example.org/Person")
	org := NewResource("http://example.org/Organization")
	alice := NewResource("http://example.org/alice")
	acme := NewResource("http://example.org/acme")

	g.Add(worksAt, RDFSDomain, person)
	g.Add(worksAt, RDFSRange, org)
	g.Add(alice, worksAt, acme)

	_, err := Expand(g, Options{RDFS: true})
	assert.NoError(t, err)
	assert.True(t, g.Contains(alice, RDFType, person))
	assert.True(t, g.Contains(acme, RDFType, org))
}

func TestExpandOWLTransitiveProperty(t *testing.T) {
	g := NewGraph("")
	ancestorOf := NewResource("http://example.org/ancestorOf")
	a, b, c := NewResource("a"), NewResource("b"), NewResource("c")

	g.Add(ancestorOf, RDFType, OWLTransitiveProperty)
	g.Add(a, ancestorOf, b)
	g.Add(b, ancestorOf, c)

	_, err := Expand(g, Options{OWLRL: true})
	assert.NoError(t, err)
	assert.True(t, g.Contains(a, ancestorOf, c))
}

func TestExpandOWLFunctionalPropertyInfersSameAs(t *testing.T) {
	g := NewGraph("")
	hasMother := NewResource("http://example.org/hasMother")
	x, m1, m2 := NewResource("x"), NewResource("m1"), NewResource("m2")

	g.Add(hasMother, RDFType, OWLFunctionalProperty)
	g.Add(x, hasMother, m1)
	g.Add(x, hasMother, m2)

	_, err := Expand(g, Options{OWLRL: true})
	assert.NoError(t, err)
	assert.True(t, g.Contains(m1, OWLSameAs, m2) || g.Contains(m2, OWLSameAs, m1))
}

func TestExpandDestinationLeavesSourceGraphUntouched(t *testing.T) {
	g := NewGraph("")
	worksAt := NewResource("http://example.org/worksAt")
	person := NewResource("http://example.org/Person")
	alice := NewResource("http://example.org/alice")
	acme := NewResource("http://example.org/acme")

	g.Add(worksAt, RDFSDomain, person)
	g.Add(alice, worksAt, acme)

	dest := NewGraph("")
	_, err := Expand(g, Options{RDFS: true, Destination: dest})
	assert.NoError(t, err)

	assert.False(t, g.Contains(alice, RDFType, person))
	assert.True(t, dest.Contains(alice, RDFType, person))
}

func TestExpandDisjointClassesProducesInconsistency(t *testing.T) {
	g := NewGraph("")
	catClass := NewResource("http://example.org/Cat")
	dogClass := NewResource("http://example.org/Dog")
	felix := NewResource("http://example.org/felix")

	g.Add(catClass, OWLDisjointWith, dogClass)
	g.Add(felix, RDFType, catClass)
	g.Add(felix, RDFType, dogClass)

	result, err := Expand(g, Options{OWLRL: true})
	assert.NoError(t, err)
	found := false
	for _, e := range result.Errors {
		if e.Kind == KindInconsistency {
			found = true
		}
	}
	assert.True(t, found)
}

func TestExpandMaximalRegimeCombinesRDFSAndOWLRL(t *testing.T) {
	g := NewGraph("")
	manager := NewResource("http://example.org/Manager")
	employee := NewResource("http://example.org/Employee")
	alice := NewResource("http://example.org/alice")

	g.Add(manager, RDFSSubClassOf, employee)
	g.Add(alice, RDFType, manager)

	_, err := Expand(g, Options{RDFS: true, OWLRL: true, Extras: true, Trimming: true})
	assert.NoError(t, err)
	assert.True(t, g.Contains(alice, RDFType, employee))
}
