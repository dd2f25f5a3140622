package rdfclosure

import (
	"regexp"
	"strconv"
)

// Facet is one constraint on a restricted datatype's value space (spec.md
// §3 "Restricted datatype").
type Facet struct {
	Name  Term
	Value string
}

// RestrictedDatatype is a datatype built by restricting a base datatype with
// one or more facets, found via owl:onDatatype/owl:withRestrictions (spec.md
// §4.3, C4).
type RestrictedDatatype struct {
	IRI    Term
	Base   Term
	Facets []Facet
}

// Admits reports whether the lexical value v (already known to be a
// lexically valid member of Base) satisfies every facet.
func (rt *RestrictedDatatype) Admits(v string) bool {
	for _, f := range rt.Facets {
		if !admitsFacet(f, v) {
			return false
		}
	}
	return true
}

func admitsFacet(f Facet, v string) bool {
	switch {
	case f.Name.Equal(XSDPattern):
		re, err := regexp.Compile(f.Value)
		return err == nil && re.MatchString(v)
	case f.Name.Equal(XSDLength):
		n, err := strconv.Atoi(f.Value)
		return err == nil && len(v) == n
	case f.Name.Equal(XSDMinLength):
		n, err := strconv.Atoi(f.Value)
		return err == nil && len(v) >= n
	case f.Name.Equal(XSDMaxLength):
		n, err := strconv.Atoi(f.Value)
		return err == nil && len(v) <= n
	case f.Name.Equal(XSDMinInclusive):
		return compareNumeric(v, f.Value) >= 0
	case f.Name.Equal(XSDMaxInclusive):
		c := compareNumeric(v, f.Value)
		return c != -2 && c <= 0
	case f.Name.Equal(XSDMinExclusive):
		return compareNumeric(v, f.Value) > 0
	case f.Name.Equal(XSDMaxExclusive):
		c := compareNumeric(v, f.Value)
		return c != -2 && c < 0
	default:
		// Unknown facet kinds do not constrain the value (conservative).
		return true
	}
}

// restrictedDatatypeByIRI returns the restricted datatype named iri, if any.
func restrictedDatatypeByIRI(restricted []*RestrictedDatatype, iri Term) *RestrictedDatatype {
	for _, rt := range restricted {
		if rt.IRI.Equal(iri) {
			return rt
		}
	}
	return nil
}

// compareNumeric compares two numeric lexical forms, returning -1/0/1, or -2
// when either side is not numeric (0 on parse failure would wrongly admit;
// admitsFacet treats -2 as failing every bound).
func compareNumeric(a, b string) int {
	af, aerr := strconv.ParseFloat(a, 64)
	bf, berr := strconv.ParseFloat(b, 64)
	if aerr != nil || berr != nil {
		return -2
	}
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}

// ExtractRestrictedDatatypes scans g for nodes D such that
// (D, rdf:type, rdfs:Datatype), (D, owl:onDatatype, B),
// (D, owl:withRestrictions, list), and builds a RestrictedDatatype per such
// node (spec.md §4.3).
func ExtractRestrictedDatatypes(g *Graph) []*RestrictedDatatype {
	var out []*RestrictedDatatype
	for _, t := range g.Triples(nil, RDFType, RDFSDatatype) {
		d := t.Subject
		bases := g.Objects(d, OWLOnDatatype)
		if len(bases) == 0 {
			continue
		}
		lists := g.Objects(d, OWLWithRestrictions)
		if len(lists) == 0 {
			continue
		}
		var facets []Facet
		for _, facetNode := range g.Items(lists[0]) {
			for _, po := range g.PredicateObjects(facetNode) {
				lit, ok := po.Object.(*Literal)
				if !ok {
					continue
				}
				facets = append(facets, Facet{Name: po.Predicate, Value: lit.Value})
			}
		}
		out = append(out, &RestrictedDatatype{IRI: d, Base: bases[0], Facets: facets})
	}
	return out
}
