package rdfclosure

// rdfsRuleBody implements the RDFS entailment rules of spec.md §4.5 (C7):
// rdf1, rdfs2-rdfs13, and the "hidden literal sameAs" one-time rule.
// Grounded on RDFSClosure.py's RDFS_Semantics.rules/one_time_rules.
type rdfsRuleBody struct{}

func (rdfsRuleBody) addAxioms(e *Engine) {
	for _, t := range RDFSAxiomaticTriples {
		e.addDirect(t[0], t[1], t[2])
	}
}

func (rdfsRuleBody) addDAxioms(e *Engine) {
	for _, lit := range e.literalRecords() {
		if lit.Datatype != nil {
			proxy, _ := e.proxies.ProxyFor(lit)
			e.addDirect(proxy, RDFType, lit.Datatype)
		}
	}
	for _, t := range RDFSDAxiomaticTriples {
		e.addDirect(t[0], t[1], t[2])
	}
}

// oneTimeRules implements RDFSClosure.py's "hidden" literal sameAs rule: for
// every pair of literal proxies whose underlying literals are datatype-value
// -equal, every triple pointing at one is replicated to point at the other
// (spec.md §4.5 "One-time (RDFS)").
func (rdfsRuleBody) oneTimeRules(e *Engine) {
	literals := e.literalRecords()
	for i, lt1 := range literals {
		for j, lt2 := range literals {
			if i == j {
				continue
			}
			if !literalValueEqual(lt1, lt2, e.handler) {
				continue
			}
			p1, _ := e.proxies.ProxyFor(lt1)
			p2, _ := e.proxies.ProxyFor(lt2)
			for _, t := range e.workGraph.Triples(nil, nil, p1) {
				e.storeTriple(t.Subject, t.Predicate, p2)
			}
		}
	}
}

func literalValueEqual(a, b *Literal, h *DatatypeHandler) bool {
	if a.Equal(b) {
		return true
	}
	if a.Datatype == nil || b.Datatype == nil || !a.Datatype.Equal(b.Datatype) {
		return false
	}
	va, erra := h.Parse(a.Value, a.Datatype)
	vb, errb := h.Parse(b.Value, b.Datatype)
	if erra != nil || errb != nil {
		return false
	}
	return va == vb
}

func (rdfsRuleBody) perTriple(e *Engine, t *Triple, cycle int) {
	s, p, o := t.Subject, t.Predicate, t.Object

	// rdf1
	e.storeTriple(p, RDFType, RDFProperty)

	// rdfs4a / rdfs4b, cycle 1 only
	if cycle == 1 {
		e.storeTriple(s, RDFType, RDFSResource)
		e.storeTriple(o, RDFType, RDFSResource)
	}

	// rdfs2
	if p.Equal(RDFSDomain) {
		for _, u := range e.workGraph.Triples(nil, s, nil) {
			e.storeTriple(u.Subject, RDFType, o)
		}
	}
	// rdfs3
	if p.Equal(RDFSRange) {
		for _, u := range e.workGraph.Triples(nil, s, nil) {
			e.storeTriple(u.Object, RDFType, o)
		}
	}
	// rdfs5, rdfs7
	if p.Equal(RDFSSubPropertyOf) {
		for _, x := range e.workGraph.Triples(o, RDFSSubPropertyOf, nil) {
			e.storeTriple(s, RDFSSubPropertyOf, x.Object)
		}
		for _, z := range e.workGraph.Triples(nil, s, nil) {
			e.storeTriple(z.Subject, o, z.Object)
		}
	}
	// rdfs6
	if p.Equal(RDFType) && o.Equal(RDFProperty) {
		e.storeTriple(s, RDFSSubPropertyOf, s)
	}
	// rdfs8, rdfs10
	if p.Equal(RDFType) && o.Equal(RDFSClass) {
		e.storeTriple(s, RDFSSubClassOf, RDFSResource)
		e.storeTriple(s, RDFSSubClassOf, s)
	}
	// rdfs9, rdfs11
	if p.Equal(RDFSSubClassOf) {
		for _, v := range e.workGraph.Triples(nil, RDFType, s) {
			e.storeTriple(v.Subject, RDFType, o)
		}
		for _, x := range e.workGraph.Triples(o, RDFSSubClassOf, nil) {
			e.storeTriple(s, RDFSSubClassOf, x.Object)
		}
	}
	// rdfs12
	if p.Equal(RDFType) && o.Equal(RDFSContainerMembershipProp) {
		e.storeTriple(s, RDFSSubPropertyOf, RDFSMember)
	}
	// rdfs13
	if p.Equal(RDFType) && o.Equal(RDFSDatatype) {
		e.storeTriple(s, RDFSSubClassOf, RDFSLiteral)
	}
}

func (rdfsRuleBody) postProcess(e *Engine) {}
