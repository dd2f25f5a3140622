package rdfclosure

import "go.uber.org/zap"

// Options configures one Expand call (spec.md §4 "Configuration").
type Options struct {
	RDFS               bool
	OWLRL              bool
	Extras             bool
	Trimming           bool
	Axioms             bool
	DatatypeAxioms     bool
	ImprovedDatatypes  bool
	Destination        *Graph
	Logger             *zap.Logger
	// IMaxNum bounds the rdf:_n container-membership axioms injected when
	// DatatypeAxioms is set (spec.md §10 supplemented features). Defaults to
	// 1 when zero.
	IMaxNum int
}

// Result reports the outcome of one Expand call (spec.md §4.1 step 6).
type Result struct {
	Errors []EngineError
}

// ruleBody is the dispatch surface every regime (RDFS, OWL 2 RL, combined,
// extension) implements. perTriple is invoked once per triple observed in a
// cycle's snapshot; cycle is 1-based so rules that only fire on the first
// pass (rdfs4a/b, bnode-predicate collection) can detect it.
type ruleBody interface {
	addAxioms(e *Engine)
	addDAxioms(e *Engine)
	oneTimeRules(e *Engine)
	perTriple(e *Engine, t *Triple, cycle int)
	postProcess(e *Engine)
}

// Engine holds the mutable state of one closure computation (spec.md §4.1,
// C6). It is never exposed directly; callers only see Expand and Result.
type Engine struct {
	workGraph  *Graph
	handler    *DatatypeHandler
	proxies    *LiteralProxies
	restricted []*RestrictedDatatype
	errLog     *ErrorLog
	logger     *zap.Logger
	opts       Options
	body       ruleBody

	pending     []*Triple
	pendingSeen map[string]bool
	bnodePreds  map[string]bool

	// restrictionCheck overrides restrictionTypingCheck; nil means "always
	// true" (spec.md §4.6 cls-avf default). Only the extension regime sets
	// this, to enforce restricted-datatype facets (spec.md §4.7).
	restrictionCheck func(v, t Term) bool
}

// restrictionTypingCheck gates whether cls-avf may type v under t. Under the
// plain OWL RL regime every candidate passes; the extension regime rejects a
// literal proxy whose value fails a restricted datatype's facets.
func (e *Engine) restrictionTypingCheck(v, t Term) bool {
	if e.restrictionCheck == nil {
		return true
	}
	return e.restrictionCheck(v, t)
}

// Expand computes the deductive closure of graph under the regime selected
// by opts and returns the non-fatal errors accumulated along the way
// (spec.md §4.1). When opts.Destination is nil, graph is mutated in place;
// otherwise graph is left untouched and only the newly derived triples are
// copied into opts.Destination, so the engine still evaluates rules against
// the full (graph + derivations) state internally (open question resolved
// in DESIGN.md under "Destination-graph semantics").
func Expand(graph *Graph, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.IMaxNum == 0 {
		opts.IMaxNum = 1
	}

	separateDest := opts.Destination != nil
	work := graph
	if separateDest {
		work = cloneGraph(graph)
	}

	e := &Engine{
		workGraph:   work,
		handler:     NewDatatypeHandler(opts.ImprovedDatatypes),
		errLog:      NewErrorLog(),
		logger:      logger,
		opts:        opts,
		pendingSeen: make(map[string]bool),
		bnodePreds:  make(map[string]bool),
	}
	e.body = selectRuleBody(opts)

	if opts.Extras {
		e.restricted = ExtractRestrictedDatatypes(work)
		e.handler.RegisterDatatype(OWLRational, validateRational)
		for _, rt := range e.restricted {
			rt := rt
			e.handler.RegisterDatatype(rt.IRI, func(lexical string) (interface{}, error) {
				if _, err := e.handler.Parse(lexical, rt.Base); err != nil {
					return nil, err
				}
				if !rt.Admits(lexical) {
					return nil, &ErrLexicalInvalid{Lexical: lexical, Datatype: rt.IRI.String()}
				}
				return lexical, nil
			}, rt.Base)
		}
		e.restrictionCheck = func(v, t Term) bool {
			rt := restrictedDatatypeByIRI(e.restricted, t)
			if rt == nil {
				return true
			}
			lit, ok := e.proxies.LiteralFor(v)
			if !ok {
				return true
			}
			return rt.Admits(lit.Value)
		}
	}

	e.proxies = InstallLiteralProxies(work, e.handler, e.errLog)

	if opts.Axioms {
		e.body.addAxioms(e)
	}
	if opts.DatatypeAxioms {
		e.body.addDAxioms(e)
		for i := 1; i <= opts.IMaxNum; i++ {
			e.addDirect(RDFContainerMember(i), RDFType, RDFSContainerMembershipProp)
			e.addDirect(RDFContainerMember(i), RDFSSubPropertyOf, RDFSMember)
			e.addDirect(RDFContainerMember(i), RDFSDomain, RDFSResource)
			e.addDirect(RDFContainerMember(i), RDFSRange, RDFSResource)
		}
	}

	e.body.oneTimeRules(e)
	e.flush()

	logger.Debug("closure: starting fixed point")
	for cycle := 1; ; cycle++ {
		snapshot := work.Snapshot()
		if cycle == 1 {
			for _, t := range snapshot {
				e.collectBnodePredicates(t)
			}
		}
		for _, t := range snapshot {
			e.body.perTriple(e, t, cycle)
		}
		added := e.flush()
		logger.Debug("closure: cycle complete", zap.Int("cycle", cycle), zap.Int("added", added), zap.Int("size", work.Len()))
		if added == 0 {
			break
		}
	}

	e.body.postProcess(e)
	if opts.Trimming {
		e.trim()
	}

	e.proxies.Restore()

	if separateDest {
		for _, t := range work.Snapshot() {
			if !graph.Contains(t.Subject, t.Predicate, t.Object) {
				opts.Destination.AddTriple(t)
			}
		}
	}

	if e.errLog.Len() > 0 {
		logger.Warn("closure: non-fatal errors recorded", zap.Int("count", e.errLog.Len()))
	}

	return &Result{Errors: e.errLog.Errors()}, nil
}

func selectRuleBody(opts Options) ruleBody {
	switch {
	case opts.Extras:
		return &extensionRuleBody{rdfs: opts.RDFS}
	case opts.OWLRL && opts.RDFS:
		return &combinedRuleBody{}
	case opts.OWLRL:
		return &owlrlRuleBody{}
	default:
		return &rdfsRuleBody{}
	}
}

func cloneGraph(g *Graph) *Graph {
	clone := NewGraph(g.URI())
	for _, t := range g.Snapshot() {
		clone.AddTriple(t)
	}
	return clone
}

// addDirect inserts a triple immediately (used for axioms, which are part of
// the state a cycle is allowed to see from the very first pass).
func (e *Engine) addDirect(s, p, o Term) {
	e.workGraph.Add(s, p, o)
}

// storeTriple buffers a rule conclusion for the current cycle; it only
// becomes visible to perTriple after the next flush (spec.md §5).
func (e *Engine) storeTriple(s, p, o Term) {
	t := NewTriple(s, p, o)
	if !t.valid() {
		return
	}
	if e.workGraph.Contains(s, p, o) {
		return
	}
	k := t.key()
	if e.pendingSeen[k] {
		return
	}
	e.pendingSeen[k] = true
	e.pending = append(e.pending, t)
}

func (e *Engine) flush() int {
	added := 0
	for _, t := range e.pending {
		if e.workGraph.AddTriple(t) {
			added++
		}
	}
	e.pending = e.pending[:0]
	e.pendingSeen = make(map[string]bool)
	return added
}

func (e *Engine) literalRecords() []*Literal {
	return e.proxies.Literals()
}

// collectBnodePredicates records every blank node seen in the first cycle's
// snapshot so the OWL RL post-process step can strip triples that used one
// as a predicate (legal under generalised RDF, but not meant to survive
// closure — spec.md §10 "post_process bnode-predicate cleanup").
func (e *Engine) collectBnodePredicates(t *Triple) {
	for _, term := range []Term{t.Subject, t.Predicate, t.Object} {
		if b, ok := term.(*BlankNode); ok {
			e.bnodePreds[b.key()] = true
		}
	}
}

// trim is the trimming post-pass (spec.md §4.7 "Trimming"). It removes
// reflexive (x, owl:sameAs, x) triples, the owl:AnnotationProperty typings
// of OWLRLAnnotationProperties, and the owl:Class typings of owl:Thing and
// owl:Nothing. The other trimming clauses listed in DESIGN.md are not
// performed.
func (e *Engine) trim() {
	for _, t := range e.workGraph.Snapshot() {
		if t.Predicate.Equal(OWLSameAs) && t.Subject.Equal(t.Object) {
			e.workGraph.RemoveTriple(t)
		}
	}
	for _, ap := range OWLRLAnnotationProperties {
		e.workGraph.Remove(ap, RDFType, OWLAnnotationProperty)
	}
	e.workGraph.Remove(OWLThing, RDFType, OWLClass)
	e.workGraph.Remove(OWLNothing, RDFType, OWLClass)
}
