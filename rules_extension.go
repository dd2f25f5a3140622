package rdfclosure

// combinedRuleBody runs the OWL 2 RL rules and the RDFS rules over every
// triple, matching spec.md §4.6 "Combined regime": both rule sets see every
// triple of a cycle's snapshot, and each sees the other's conclusions from
// the next cycle on. Grounded on CombinedClosure.py's CombinedClosure, which simply
// concatenates the two rule sets' `rules` methods.
type combinedRuleBody struct{}

func (combinedRuleBody) addAxioms(e *Engine) {
	owlrlRuleBody{}.addAxioms(e)
	rdfsRuleBody{}.addAxioms(e)
}

func (combinedRuleBody) addDAxioms(e *Engine) {
	owlrlRuleBody{}.addDAxioms(e)
	rdfsRuleBody{}.addDAxioms(e)
}

func (combinedRuleBody) oneTimeRules(e *Engine) {
	owlrlRuleBody{}.oneTimeRules(e)
	rdfsRuleBody{}.oneTimeRules(e)
}

func (combinedRuleBody) perTriple(e *Engine, t *Triple, cycle int) {
	owlrlRuleBody{}.perTriple(e, t, cycle)
	rdfsRuleBody{}.perTriple(e, t, cycle)
}

func (combinedRuleBody) postProcess(e *Engine) {
	stripBnodePredicates(e)
}

// extensionRuleBody adds the owl:hasSelf rules, owl:rational/restricted-
// datatype support (already wired in by Expand before rules run) and the
// Thing/Class/DataRange full-binding axioms to the combined regime (spec.md
// §4.7 "Extension regime", §10 supplemented features). When rdfs is false,
// RDFS rules are skipped, matching OWLRLExtras.py's RDFS_OWLRL_Semantics
// constructor flag.
type extensionRuleBody struct {
	rdfs bool
}

func (b extensionRuleBody) addAxioms(e *Engine) {
	owlrlRuleBody{}.addAxioms(e)
	if b.rdfs {
		rdfsRuleBody{}.addAxioms(e)
	}
	e.addDirect(OWLThing, OWLEquivalentClass, RDFSResource)
	e.addDirect(OWLClass, OWLEquivalentClass, RDFSClass)
	e.addDirect(OWLDataRange, OWLEquivalentClass, RDFSDatatype)
}

func (b extensionRuleBody) addDAxioms(e *Engine) {
	owlrlRuleBody{}.addDAxioms(e)
	if b.rdfs {
		rdfsRuleBody{}.addDAxioms(e)
	}
}

func (b extensionRuleBody) oneTimeRules(e *Engine) {
	owlrlRuleBody{}.oneTimeRules(e)
	if b.rdfs {
		rdfsRuleBody{}.oneTimeRules(e)
	}
	owlRestrictedDatatypeTypingRules(e)
}

// owlRestrictedDatatypeTypingRules implements spec.md §4.7's one-time
// restricted-datatype pass: every literal proxy whose literal's declared
// datatype is exactly a restricted datatype's base gets typed under that
// restricted datatype
// when its value admits the facets (OWLRLExtras.py's RDFS_OWLRL_Semantics
// one_time_rules, restricted-datatype branch).
func owlRestrictedDatatypeTypingRules(e *Engine) {
	for _, lit := range e.literalRecords() {
		if lit.Datatype == nil {
			continue
		}
		proxy, ok := e.proxies.ProxyFor(lit)
		if !ok {
			continue
		}
		for _, rt := range e.restricted {
			if !lit.Datatype.Equal(rt.Base) {
				continue
			}
			if rt.Admits(lit.Value) {
				e.storeTriple(proxy, RDFType, rt.IRI)
			}
		}
	}
}

func (b extensionRuleBody) perTriple(e *Engine, t *Triple, cycle int) {
	owlrlRuleBody{}.perTriple(e, t, cycle)
	if b.rdfs {
		rdfsRuleBody{}.perTriple(e, t, cycle)
	}
	owlHasSelfRules(e, t)
}

// owlHasSelfRules implements the extension's two owl:hasSelf rules: a
// restriction (_:r owl:onProperty p; owl:hasSelf "true") is satisfied by any
// x with (x p x), and conversely typing x under such a restriction entails
// (x p x) (spec.md §10).
func owlHasSelfRules(e *Engine, t *Triple) {
	g := e.workGraph
	s, p := t.Subject, t.Predicate

	if p.Equal(OWLHasSelf) {
		for _, op := range g.Triples(s, OWLOnProperty, nil) {
			prop := op.Object
			for _, u := range g.Triples(nil, prop, nil) {
				if u.Subject.Equal(u.Object) {
					e.storeTriple(u.Subject, RDFType, s)
				}
			}
			for _, u := range g.Subjects(RDFType, s) {
				e.storeTriple(u, prop, u)
			}
		}
	}
}

func (extensionRuleBody) postProcess(e *Engine) {
	stripBnodePredicates(e)
}
