package rdfclosure

// LiteralProxies implements the literal-proxy layer (spec.md §4.4, C5).
// While installed, no Literal appears in object position of any triple in
// graph; each is replaced by a fresh blank node "proxy", tagged
// (proxy, rdf:type, rdfs:Literal). This lets RDFS/OWL rules quantify over
// literal values in subject position (spec.md §9 design note).
type LiteralProxies struct {
	graph      *Graph
	litToBNode map[string]Term
	bnodeToLit map[string]*Literal
}

// InstallLiteralProxies replaces every literal object in g with its proxy
// blank node, validating each literal's lexical form against handler and
// recording mismatches (non-fatally) in errLog. The twin rule of spec.md
// §4.4 is applied: implicit xsd:string literals also get a string-typed
// twin proxy, and explicit xsd:string literals get a plain-literal twin.
func InstallLiteralProxies(g *Graph, handler *DatatypeHandler, errLog *ErrorLog) *LiteralProxies {
	p := &LiteralProxies{
		graph:      g,
		litToBNode: make(map[string]Term),
		bnodeToLit: make(map[string]*Literal),
	}

	toRemove := make([]*Triple, 0)
	toAdd := make([]*Triple, 0)

	for _, t := range g.Snapshot() {
		lit, ok := t.Object.(*Literal)
		if !ok {
			continue
		}
		toRemove = append(toRemove, t)

		if lit.Datatype != nil {
			if _, err := handler.Parse(lit.Value, lit.Datatype); err != nil {
				errLog.Add(KindLexicalInvalid,
					"Lexical value of the literal '%s' does not match its datatype (%s)",
					lit.Value, lit.Datatype.String())
			}
		}

		proxy := p.proxyFor(lit, &toAdd)
		toAdd = append(toAdd, NewTriple(t.Subject, t.Predicate, proxy))

		switch {
		case lit.Datatype == nil && lit.Language == "":
			twin := &Literal{Value: lit.Value, Datatype: XSDString}
			twinProxy := p.proxyFor(twin, &toAdd)
			toAdd = append(toAdd, NewTriple(t.Subject, t.Predicate, twinProxy))
		case lit.Datatype != nil && lit.Datatype.Equal(XSDString):
			twin := &Literal{Value: lit.Value}
			twinProxy := p.proxyFor(twin, &toAdd)
			toAdd = append(toAdd, NewTriple(t.Subject, t.Predicate, twinProxy))
		}
	}

	for _, t := range toRemove {
		g.RemoveTriple(t)
	}
	for _, t := range toAdd {
		g.AddTriple(t)
	}

	return p
}

// proxyFor returns the existing proxy blank for lit, or mints a fresh one
// and appends its typing triple to pending.
func (p *LiteralProxies) proxyFor(lit *Literal, pending *[]*Triple) Term {
	k := lit.key()
	if b, ok := p.litToBNode[k]; ok {
		return b
	}
	b := NewBlankNode("")
	p.litToBNode[k] = b
	p.bnodeToLit[b.key()] = lit
	*pending = append(*pending, NewTriple(b, RDFType, RDFSLiteral))
	return b
}

// ProxyFor returns the proxy blank node standing in for lit, if one exists.
func (p *LiteralProxies) ProxyFor(lit *Literal) (Term, bool) {
	b, ok := p.litToBNode[lit.key()]
	return b, ok
}

// LiteralFor returns the literal a proxy term stands in for, if term is a
// known proxy.
func (p *LiteralProxies) LiteralFor(term Term) (*Literal, bool) {
	lit, ok := p.bnodeToLit[term.key()]
	return lit, ok
}

// Literals returns every literal currently tracked by a proxy.
func (p *LiteralProxies) Literals() []*Literal {
	out := make([]*Literal, 0, len(p.bnodeToLit))
	for _, lit := range p.bnodeToLit {
		out = append(out, lit)
	}
	return out
}

// Proxies returns every (literal, proxy) pair currently registered.
func (p *LiteralProxies) Proxies() map[string]Term {
	out := make(map[string]Term, len(p.litToBNode))
	for k, v := range p.litToBNode {
		out[k] = v
	}
	return out
}

// Restore is the inverse of InstallLiteralProxies (spec.md §4.4): triples
// whose subject is a proxy are discarded outright (they are inference
// by-products); triples whose object is a proxy have the original literal
// re-emitted in its place, with an xsd:string datatype normalised back to a
// plain literal per the RDF 1.1 serialisation convention (spec.md §9 open
// question: "both forms are semantically equivalent").
func (p *LiteralProxies) Restore() {
	toRemove := make([]*Triple, 0)
	toAdd := make([]*Triple, 0)

	for _, t := range p.graph.Snapshot() {
		if _, isProxy := p.bnodeToLit[t.Subject.key()]; isProxy {
			toRemove = append(toRemove, t)
			continue
		}
		if lit, isProxy := p.bnodeToLit[t.Object.key()]; isProxy {
			toRemove = append(toRemove, t)
			restored := lit
			if lit.Datatype != nil && lit.Datatype.Equal(XSDString) {
				restored = &Literal{Value: lit.Value}
			}
			toAdd = append(toAdd, NewTriple(t.Subject, t.Predicate, restored))
		}
	}

	for _, t := range toRemove {
		p.graph.RemoveTriple(t)
	}
	for _, t := range toAdd {
		p.graph.AddTriple(t)
	}
}
