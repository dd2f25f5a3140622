package rdfclosure

// owlrlRuleBody implements the OWL 2 RL entailment rules of spec.md §4.6
// (C8): the property (prp-*), equality (eq-*), class (cls-*), class-axiom
// (cax-*) and a core subset of the schema-vocabulary (scm-*) rules,
// together with the one-time rules (cls-thing, cls-nothing, prp-ap,
// dt-type1/2, dt-not-type) and the post-process bnode-predicate cleanup.
// Grounded on OWLRL.py's OWLRL_Semantics.rules/one_time_rules/post_process.
type owlrlRuleBody struct{}

func (owlrlRuleBody) addAxioms(e *Engine) {
	for _, t := range OWLRLAxiomaticTriples {
		e.addDirect(t[0], t[1], t[2])
	}
}

func (owlrlRuleBody) addDAxioms(e *Engine) {
	for _, t := range OWLRLDAxiomaticTriples {
		e.addDirect(t[0], t[1], t[2])
	}
	emitDatatypeDisjointness(e)
}

// emitDatatypeDisjointness adds the pairwise datatype disjointness axioms,
// restricted to datatypes actually mentioned by a literal in the graph
// (spec.md §4.6 dt-type1: disjointness is only asserted among datatypes the
// graph exercises, to avoid flooding unrelated closures with O(n^2) noise).
func emitDatatypeDisjointness(e *Engine) {
	used := make(map[string]bool)
	for _, lit := range e.literalRecords() {
		if lit.Datatype != nil {
			used[lit.Datatype.key()] = true
		}
	}
	for _, t := range OWLRLDatatypesDisjointness {
		if used[t[0].key()] && used[t[2].key()] {
			e.addDirect(t[0], t[1], t[2])
		}
	}
}

func (owlrlRuleBody) oneTimeRules(e *Engine) {
	owlOneTimeRulesMisc(e)
	owlOneTimeDatatypeRules(e)
}

// owlOneTimeRulesMisc implements cls-thing, cls-nothing1, and prp-ap: facts
// that hold unconditionally under OWL RL and so only need asserting once,
// regardless of whether static axioms were requested (spec.md §10
// supplemented features).
func owlOneTimeRulesMisc(e *Engine) {
	e.storeTriple(OWLThing, RDFType, OWLClass)
	e.storeTriple(OWLNothing, RDFType, OWLClass)
	for _, ap := range OWLRLAnnotationProperties {
		e.storeTriple(ap, RDFType, OWLAnnotationProperty)
	}
}

// owlOneTimeDatatypeRules implements dt-type1/dt-type2/dt-not-type: every
// literal proxy gets typed by its datatype (and every ancestor datatype in
// the subsumption lattice), and lexically invalid literals are flagged
// rather than typed (spec.md §4.6, §9 design note on strict vs. lax
// validation).
func owlOneTimeDatatypeRules(e *Engine) {
	for _, lit := range e.literalRecords() {
		if lit.Datatype == nil {
			continue
		}
		proxy, ok := e.proxies.ProxyFor(lit)
		if !ok {
			continue
		}
		if _, err := e.handler.Parse(lit.Value, lit.Datatype); err != nil {
			e.errLog.Add(KindLexicalInvalid,
				"Lexical value '%s' is not valid for datatype %s", lit.Value, lit.Datatype.String())
			continue
		}
		e.storeTriple(proxy, RDFType, lit.Datatype)
		for _, super := range e.handler.Supers(lit.Datatype) {
			e.storeTriple(proxy, RDFType, NewResource(super))
		}
	}
}

func (b owlrlRuleBody) perTriple(e *Engine, t *Triple, cycle int) {
	owlPropertyRules(e, t)
	owlEqualityRules(e, t, cycle)
	owlClassRules(e, t)
	owlClassAxiomRules(e, t)
	owlSchemaRules(e, t)
}

func (owlrlRuleBody) postProcess(e *Engine) {
	stripBnodePredicates(e)
}

// stripBnodePredicates removes every triple whose predicate position is a
// blank node collected during the first cycle: such triples only exist to
// let e.g. property-chain bodies reference an anonymous restriction and are
// not meant to be entailed facts (spec.md §10).
func stripBnodePredicates(e *Engine) {
	if len(e.bnodePreds) == 0 {
		return
	}
	for _, t := range e.workGraph.Snapshot() {
		if e.bnodePreds[t.Predicate.key()] {
			e.workGraph.RemoveTriple(t)
		}
	}
}

// owlPropertyRules implements prp-dom, prp-rng, prp-fp, prp-ifp, prp-irp,
// prp-symp, prp-asyp, prp-trp, prp-spo1, prp-spo2, prp-eqp1/2, prp-pdw,
// prp-inv1/2, prp-npa1/2 and prp-key.
func owlPropertyRules(e *Engine, t *Triple) {
	g := e.workGraph
	s, p, o := t.Subject, t.Predicate, t.Object

	// prp-dom / prp-rng
	for _, d := range g.Triples(p, RDFSDomain, nil) {
		e.storeTriple(s, RDFType, d.Object)
	}
	for _, r := range g.Triples(p, RDFSRange, nil) {
		e.storeTriple(o, RDFType, r.Object)
	}

	if p.Equal(RDFType) {
		switch {
		case o.Equal(OWLFunctionalProperty):
			for _, u := range g.Triples(nil, s, nil) {
				for _, v := range g.Triples(u.Subject, s, nil) {
					if !u.Object.Equal(v.Object) {
						e.storeTriple(u.Object, OWLSameAs, v.Object)
					}
				}
			}
		case o.Equal(OWLInverseFunctionalProperty):
			byObj := g.Triples(nil, s, nil)
			for _, u := range byObj {
				for _, v := range byObj {
					if u.Object.Equal(v.Object) && !u.Subject.Equal(v.Subject) {
						e.storeTriple(u.Subject, OWLSameAs, v.Subject)
					}
				}
			}
		case o.Equal(OWLIrreflexiveProperty):
			for _, u := range g.Triples(nil, s, nil) {
				if u.Subject.Equal(u.Object) {
					e.errLog.Add(KindInconsistency, "irreflexive property %s holds of %s", s.String(), u.Subject.String())
				}
			}
		case o.Equal(OWLSymmetricProperty):
			for _, u := range g.Triples(nil, s, nil) {
				e.storeTriple(u.Object, s, u.Subject)
			}
		case o.Equal(OWLAsymmetricProperty):
			for _, u := range g.Triples(nil, s, nil) {
				if g.Contains(u.Object, s, u.Subject) {
					e.errLog.Add(KindInconsistency, "asymmetric property %s holds both ways between %s and %s", s.String(), u.Subject.String(), u.Object.String())
				}
			}
		case o.Equal(OWLTransitiveProperty):
			for _, u := range g.Triples(nil, s, nil) {
				for _, v := range g.Triples(u.Object, s, nil) {
					e.storeTriple(u.Subject, s, v.Object)
				}
			}
		}
	}

	// prp-spo1
	for _, sp := range g.Triples(p, RDFSSubPropertyOf, nil) {
		e.storeTriple(s, sp.Object, o)
	}
	// prp-spo2: property chain
	for _, ch := range g.Triples(nil, OWLPropertyChainAxiom, nil) {
		chain := g.Items(ch.Object)
		if len(chain) == 0 {
			continue
		}
		matchPropertyChain(e, ch.Subject, chain, s)
	}
	// prp-eqp1/2
	for _, eq := range g.Triples(p, OWLEquivalentProperty, nil) {
		e.storeTriple(s, eq.Object, o)
	}
	for _, eq := range g.Triples(nil, OWLEquivalentProperty, p) {
		e.storeTriple(s, eq.Subject, o)
	}
	// prp-pdw
	for _, dw := range g.Triples(p, OWLPropertyDisjointWith, nil) {
		if g.Contains(s, dw.Object, o) {
			e.errLog.Add(KindInconsistency, "disjoint properties %s and %s both hold between %s and %s", p.String(), dw.Object.String(), s.String(), o.String())
		}
	}
	// prp-inv1/2
	for _, inv := range g.Triples(p, OWLInverseOf, nil) {
		e.storeTriple(o, inv.Object, s)
	}
	for _, inv := range g.Triples(nil, OWLInverseOf, p) {
		e.storeTriple(o, inv.Subject, s)
	}

	// prp-npa1/2: negative property assertions
	if p.Equal(OWLAssertionProperty) {
		for _, np := range npaCandidates(g, s) {
			checkNegativePropertyAssertion(e, np)
		}
	}

	// prp-key
	if p.Equal(OWLHasKey) {
		checkHasKey(e, s, g.Items(o))
	}
}

type negativeAssertion struct {
	npa      Term
	source   Term
	property Term
	target   Term
	isValue  bool
}

func npaCandidates(g *Graph, npa Term) []negativeAssertion {
	props := g.Objects(npa, OWLAssertionProperty)
	sources := g.Objects(npa, OWLSourceIndividual)
	if len(props) == 0 || len(sources) == 0 {
		return nil
	}
	var out []negativeAssertion
	for _, tv := range g.Objects(npa, OWLTargetValue) {
		out = append(out, negativeAssertion{npa, sources[0], props[0], tv, true})
	}
	for _, ti := range g.Objects(npa, OWLTargetIndividual) {
		out = append(out, negativeAssertion{npa, sources[0], props[0], ti, false})
	}
	return out
}

func checkNegativePropertyAssertion(e *Engine, na negativeAssertion) {
	if e.workGraph.Contains(na.source, na.property, na.target) {
		e.errLog.Add(KindInconsistency, "negative property assertion violated: %s %s %s", na.source.String(), na.property.String(), na.target.String())
	}
}

// matchPropertyChain checks whether s begins a chain of the given property
// sequence and, if a full match is found ending at some z, asserts (s chain
// z). A straightforward recursive join, adequate for the chain lengths OWL
// RL ontologies use in practice.
func matchPropertyChain(e *Engine, chainProp Term, props []Term, s Term) {
	ends := chainWalk(e.workGraph, s, props)
	for _, z := range ends {
		e.storeTriple(s, chainProp, z)
	}
}

func chainWalk(g *Graph, s Term, props []Term) []Term {
	if len(props) == 0 {
		return []Term{s}
	}
	var out []Term
	for _, t := range g.Triples(s, props[0], nil) {
		out = append(out, chainWalk(g, t.Object, props[1:])...)
	}
	return out
}

// checkHasKey implements a pragmatic prp-key: two individuals of the keyed
// class that agree on every key property's value are inferred sameAs. This
// covers the common single- and multi-key cases without the full N-ary
// distinctness bookkeeping of the OWL 2 RL specification's literal
// rendering of the rule.
func checkHasKey(e *Engine, class Term, keyProps []Term) {
	if len(keyProps) == 0 {
		return
	}
	individuals := e.workGraph.Subjects(RDFType, class)
	for i, x := range individuals {
		for _, y := range individuals[i+1:] {
			if x.Equal(y) {
				continue
			}
			if keysMatch(e.workGraph, x, y, keyProps) {
				e.storeTriple(x, OWLSameAs, y)
			}
		}
	}
}

func keysMatch(g *Graph, x, y Term, keyProps []Term) bool {
	for _, p := range keyProps {
		xs := g.Objects(x, p)
		ys := g.Objects(y, p)
		if len(xs) == 0 || len(ys) == 0 {
			return false
		}
		found := false
		for _, xv := range xs {
			for _, yv := range ys {
				if xv.Equal(yv) {
					found = true
				}
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// owlEqualityRules implements eq-ref, eq-sym, eq-trans, eq-rep-s/p/o,
// eq-diff1/2/3.
func owlEqualityRules(e *Engine, t *Triple, cycle int) {
	g := e.workGraph
	s, p, o := t.Subject, t.Predicate, t.Object

	if cycle == 1 {
		e.storeTriple(s, OWLSameAs, s)
		e.storeTriple(p, OWLSameAs, p)
		e.storeTriple(o, OWLSameAs, o)
	}

	if p.Equal(OWLSameAs) {
		e.storeTriple(o, OWLSameAs, s)
		for _, x := range g.Triples(o, OWLSameAs, nil) {
			e.storeTriple(s, OWLSameAs, x.Object)
		}
		for _, z := range g.Triples(nil, nil, s) {
			e.storeTriple(z.Subject, z.Predicate, o)
		}
		for _, z := range g.Triples(s, nil, nil) {
			e.storeTriple(o, z.Predicate, z.Object)
		}
		for _, z := range g.Triples(nil, s, nil) {
			e.storeTriple(z.Subject, o, z.Object)
		}
		if g.Contains(s, OWLDifferentFrom, o) || g.Contains(o, OWLDifferentFrom, s) {
			e.errLog.Add(KindInconsistency, "'sameAs' and 'differentFrom' cannot be used on the same subject-object pair: (%s, %s)", s.String(), o.String())
		}
	}

	if p.Equal(OWLDifferentFrom) && g.Contains(s, OWLSameAs, o) {
		e.errLog.Add(KindInconsistency, "'sameAs' and 'differentFrom' cannot be used on the same subject-object pair: (%s, %s)", s.String(), o.String())
	}

	if p.Equal(OWLMembers) || p.Equal(OWLDistinctMembers) {
		for _, ad := range g.Triples(nil, RDFType, OWLAllDifferent) {
			if !ad.Subject.Equal(s) {
				continue
			}
			members := g.Items(o)
			for i, a := range members {
				for _, b := range members[i+1:] {
					if g.Contains(a, OWLSameAs, b) || g.Contains(b, OWLSameAs, a) {
						e.errLog.Add(KindInconsistency, "'sameAs' and 'AllDifferent' cannot be used on the same subject-object pair: (%s, %s)", a.String(), b.String())
					}
				}
			}
		}
	}
}

// owlClassRules implements cls-nothing2, cls-int1/2, cls-uni, cls-com (the
// spec's "comm"), cls-svf1/2, cls-avf, cls-hv1/2, cls-maxc1/2,
// cls-maxqc1-4 and cls-oo.
func owlClassRules(e *Engine, t *Triple) {
	g := e.workGraph
	s, p, o := t.Subject, t.Predicate, t.Object

	if p.Equal(RDFType) && o.Equal(OWLNothing) {
		e.errLog.Add(KindNothingTyping, "%s is typed owl:Nothing", s.String())
	}

	if p.Equal(OWLIntersectionOf) {
		members := g.Items(o)
		for _, x := range subjectsOfAny(g, members) {
			allMatch := true
			for _, ci := range members {
				if !g.Contains(x, RDFType, ci) {
					allMatch = false
					break
				}
			}
			if allMatch {
				e.storeTriple(x, RDFType, s)
			}
		}
		for _, x := range g.Subjects(RDFType, s) {
			for _, ci := range members {
				e.storeTriple(x, RDFType, ci)
			}
		}
	}

	if p.Equal(OWLUnionOf) {
		members := g.Items(o)
		for _, ci := range members {
			for _, x := range g.Subjects(RDFType, ci) {
				e.storeTriple(x, RDFType, s)
			}
		}
	}

	if p.Equal(OWLComplementOf) {
		for _, x := range g.Subjects(RDFType, s) {
			if g.Contains(x, RDFType, o) {
				e.errLog.Add(KindInconsistency, "Violation of complementarity for classes %s and %s on element %s", s.String(), o.String(), x.String())
			}
		}
	}

	if p.Equal(OWLOneOf) {
		for _, x := range g.Items(o) {
			e.storeTriple(x, RDFType, s)
		}
	}

	if p.Equal(OWLOnProperty) {
		restriction := s
		prop := o
		for _, sv := range g.Triples(restriction, OWLSomeValuesFrom, nil) {
			cls := sv.Object
			for _, u := range g.Triples(nil, prop, nil) {
				if cls.Equal(OWLThing) || g.Contains(u.Object, RDFType, cls) {
					e.storeTriple(u.Subject, RDFType, restriction)
				}
			}
		}
		for _, av := range g.Triples(restriction, OWLAllValuesFrom, nil) {
			cls := av.Object
			for _, u := range g.Triples(nil, prop, nil) {
				if g.Contains(u.Subject, RDFType, restriction) {
					if e.restrictionTypingCheck(u.Object, cls) {
						e.storeTriple(u.Object, RDFType, cls)
					} else {
						e.errLog.Add(KindRestrictionViolation,
							"Violation of type restriction for allValuesFrom in %s for datatype %s on value %s",
							prop.String(), cls.String(), u.Object.String())
					}
				}
			}
		}
		for _, hv := range g.Triples(restriction, OWLHasValue, nil) {
			val := hv.Object
			for _, u := range g.Subjects(RDFType, restriction) {
				e.storeTriple(u, prop, val)
			}
			for _, u := range g.Triples(nil, prop, val) {
				e.storeTriple(u.Subject, RDFType, restriction)
			}
		}
		checkMaxCardinality(e, restriction, prop)
	}
}

// subjectsOfAny returns every distinct x such that (x, rdf:type, c) holds
// for at least one c in classes.
func subjectsOfAny(g *Graph, classes []Term) []Term {
	seen := make(map[string]bool)
	var out []Term
	for _, c := range classes {
		for _, x := range g.Subjects(RDFType, c) {
			if !seen[x.key()] {
				seen[x.key()] = true
				out = append(out, x)
			}
		}
	}
	return out
}

func checkMaxCardinality(e *Engine, restriction, prop Term) {
	g := e.workGraph
	// While rules run, the cardinality literal sits behind its proxy.
	cardinality := func(t Term) int {
		if lit, ok := e.proxies.LiteralFor(t); ok {
			return literalInt(lit)
		}
		return literalInt(t)
	}
	for _, mc := range g.Triples(restriction, OWLMaxCardinality, nil) {
		n := cardinality(mc.Object)
		for _, u := range g.Subjects(RDFType, restriction) {
			vals := g.Objects(u, prop)
			applyMaxCardinality(e, restriction, u, vals, n)
		}
	}
	for _, mqc := range g.Triples(restriction, OWLMaxQualifiedCardinality, nil) {
		n := cardinality(mqc.Object)
		onClasses := g.Objects(restriction, OWLOnClass)
		var onClass Term
		if len(onClasses) > 0 {
			onClass = onClasses[0]
		}
		for _, u := range g.Subjects(RDFType, restriction) {
			var vals []Term
			for _, v := range g.Objects(u, prop) {
				if onClass == nil || onClass.Equal(OWLThing) || g.Contains(v, RDFType, onClass) {
					vals = append(vals, v)
				}
			}
			applyMaxQualifiedCardinality(e, restriction, onClass, vals, n)
		}
	}
}

// applyMaxCardinality implements cls-maxc1/cls-maxc2: a plain maxCardinality
// 0 restriction with any filler is an error; maxCardinality 1 with two or
// more fillers collapses them via owl:sameAs.
func applyMaxCardinality(e *Engine, restriction, u Term, vals []Term, n int) {
	if n == 0 && len(vals) > 0 {
		e.errLog.Add(KindInconsistency, "Erroneous usage of maximum cardinality with %s and %s", restriction.String(), vals[0].String())
		return
	}
	if n == 1 && len(vals) > 1 {
		for i := 1; i < len(vals); i++ {
			e.storeTriple(vals[0], OWLSameAs, vals[i])
		}
	}
}

// applyMaxQualifiedCardinality implements cls-maxqc1-4, naming the
// restriction, the qualifying onClass and the offending filler in the error
// message exactly, matching OWLRL.py's wording.
func applyMaxQualifiedCardinality(e *Engine, restriction, onClass Term, vals []Term, n int) {
	if n == 0 && len(vals) > 0 {
		cls := onClass
		if cls == nil {
			cls = OWLThing
		}
		for _, v := range vals {
			e.errLog.Add(KindInconsistency,
				"Erroneous usage of maximum qualified cardinality with %s, %s and %s",
				messageTerm(restriction), messageTerm(cls), messageTerm(v))
		}
		return
	}
	if n == 1 && len(vals) > 1 {
		for i := 1; i < len(vals); i++ {
			e.storeTriple(vals[0], OWLSameAs, vals[i])
		}
	}
}

// messageTerm renders t for an error message: IRIs appear bare, without the
// angle brackets of Term.String.
func messageTerm(t Term) string {
	if r, ok := t.(*Resource); ok {
		return r.URI
	}
	return t.String()
}

func literalInt(t Term) int {
	lit, ok := t.(*Literal)
	if !ok {
		return -1
	}
	n := 0
	for _, c := range lit.Value {
		if c < '0' || c > '9' {
			return -1
		}
		n = n*10 + int(c-'0')
	}
	return n
}

// owlClassAxiomRules implements cax-sco, cax-eqc1/2, cax-dw, cax-adc.
func owlClassAxiomRules(e *Engine, t *Triple) {
	g := e.workGraph
	s, p, o := t.Subject, t.Predicate, t.Object

	if p.Equal(RDFSSubClassOf) {
		for _, x := range g.Subjects(RDFType, s) {
			e.storeTriple(x, RDFType, o)
		}
	}

	if p.Equal(OWLEquivalentClass) {
		for _, x := range g.Subjects(RDFType, s) {
			e.storeTriple(x, RDFType, o)
		}
		for _, x := range g.Subjects(RDFType, o) {
			e.storeTriple(x, RDFType, s)
		}
	}

	if p.Equal(OWLDisjointWith) {
		for _, x := range g.Subjects(RDFType, s) {
			if g.Contains(x, RDFType, o) {
				e.errLog.Add(KindInconsistency, "Disjoint classes %s and %s have a common individual %s", messageTerm(s), messageTerm(o), messageTerm(x))
			}
		}
	}

	if p.Equal(RDFType) && (o.Equal(OWLAllDisjointClasses) || o.Equal(OWLAllDisjointProperties)) {
		for _, m := range g.Triples(s, OWLMembers, nil) {
			members := g.Items(m.Object)
			for i, a := range members {
				for _, b := range members[i+1:] {
					if o.Equal(OWLAllDisjointProperties) {
						for _, u := range g.Triples(nil, a, nil) {
							if g.Contains(u.Subject, b, u.Object) {
								e.errLog.Add(KindInconsistency, "disjoint properties %s and %s both hold between %s and %s", a.String(), b.String(), u.Subject.String(), u.Object.String())
							}
						}
						continue
					}
					for _, x := range g.Subjects(RDFType, a) {
						if g.Contains(x, RDFType, b) {
							e.errLog.Add(KindInconsistency, "Disjoint classes %s and %s have a common individual %s", a.String(), b.String(), x.String())
						}
					}
				}
			}
		}
	}
}

// owlSchemaRules implements the subset of schema-vocabulary (scm-*) rules
// most ontologies exercise: scm-cls, scm-sco, scm-eqc1/2, scm-op, scm-dp, scm-dom1/2,
// scm-rng1/2. The remaining scm-* rules (scm-hv, scm-svf1/2, scm-avf1/2,
// scm-int, scm-uni) describe entailments between restriction *descriptions*
// rather than between individuals, and are left unimplemented; see
// DESIGN.md.
func owlSchemaRules(e *Engine, t *Triple) {
	g := e.workGraph
	s, p, o := t.Subject, t.Predicate, t.Object

	if p.Equal(RDFType) && o.Equal(OWLClass) {
		e.storeTriple(s, RDFSSubClassOf, s)
		e.storeTriple(s, OWLEquivalentClass, s)
		e.storeTriple(s, RDFSSubClassOf, OWLThing)
		e.storeTriple(OWLNothing, RDFSSubClassOf, s)
	}

	if p.Equal(OWLEquivalentClass) {
		e.storeTriple(s, RDFSSubClassOf, o)
		e.storeTriple(o, RDFSSubClassOf, s)
	}
	if p.Equal(RDFSSubClassOf) {
		for _, x := range g.Triples(o, RDFSSubClassOf, nil) {
			e.storeTriple(s, RDFSSubClassOf, x.Object)
		}
	}
	if p.Equal(RDFSSubClassOf) && g.Contains(o, RDFSSubClassOf, s) {
		e.storeTriple(s, OWLEquivalentClass, o)
	}

	if p.Equal(RDFType) && (o.Equal(OWLObjectProperty) || o.Equal(OWLDatatypeProperty)) {
		e.storeTriple(s, RDFSSubPropertyOf, s)
		e.storeTriple(s, OWLEquivalentProperty, s)
	}

	if p.Equal(OWLEquivalentProperty) {
		e.storeTriple(s, RDFSSubPropertyOf, o)
		e.storeTriple(o, RDFSSubPropertyOf, s)
	}
	if p.Equal(RDFSSubPropertyOf) && g.Contains(o, RDFSSubPropertyOf, s) {
		e.storeTriple(s, OWLEquivalentProperty, o)
	}

	if p.Equal(RDFSSubPropertyOf) {
		for _, d := range g.Triples(o, RDFSDomain, nil) {
			e.storeTriple(s, RDFSDomain, d.Object)
		}
		for _, r := range g.Triples(o, RDFSRange, nil) {
			e.storeTriple(s, RDFSRange, r.Object)
		}
	}
	if p.Equal(RDFSDomain) {
		for _, sc := range g.Triples(o, RDFSSubClassOf, nil) {
			e.storeTriple(s, RDFSDomain, sc.Object)
		}
	}
	if p.Equal(RDFSRange) {
		for _, sc := range g.Triples(o, RDFSSubClassOf, nil) {
			e.storeTriple(s, RDFSRange, sc.Object)
		}
	}
}
