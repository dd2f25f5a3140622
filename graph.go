package rdfclosure

// Graph is a set of Triples with O(1) membership and index-backed access by
// any combination of (s, p, o) positions (spec.md §3 "Graph", §6
// "Triple-store capability"). Insertion is idempotent; removal is
// exact-match. Graph is not safe for concurrent use; the engine borrows a
// Graph exclusively for the duration of one Expand call (spec.md §5).
type Graph struct {
	uri      string
	byKey    map[string]*Triple
	bySubj   map[string]map[string]*Triple
	byPred   map[string]map[string]*Triple
	byObj    map[string]map[string]*Triple
	prefixes map[string]string
}

// NewGraph returns an empty Graph. uri is an advisory base used only for
// pretty-printing/Bind bookkeeping, mirroring rdf2go's NewGraph(uri).
func NewGraph(uri string) *Graph {
	return &Graph{
		uri:      uri,
		byKey:    make(map[string]*Triple),
		bySubj:   make(map[string]map[string]*Triple),
		byPred:   make(map[string]map[string]*Triple),
		byObj:    make(map[string]map[string]*Triple),
		prefixes: make(map[string]string),
	}
}

// URI returns the Graph's advisory base URI.
func (g *Graph) URI() string { return g.uri }

// Len returns the number of triples in the graph.
func (g *Graph) Len() int { return len(g.byKey) }

// Add inserts a triple, idempotently. Triples with a nil position are
// dropped silently (spec.md §6).
func (g *Graph) Add(s, p, o Term) bool {
	return g.AddTriple(NewTriple(s, p, o))
}

// AddTriple is Add taking a pre-built Triple.
func (g *Graph) AddTriple(t *Triple) bool {
	if t == nil || !t.valid() {
		return false
	}
	k := t.key()
	if _, exists := g.byKey[k]; exists {
		return false
	}
	g.byKey[k] = t
	g.index(t)
	return true
}

func (g *Graph) index(t *Triple) {
	sk, pk, ok := t.Subject.key(), t.Predicate.key(), t.Object.key()
	if g.bySubj[sk] == nil {
		g.bySubj[sk] = make(map[string]*Triple)
	}
	g.bySubj[sk][t.key()] = t
	if g.byPred[pk] == nil {
		g.byPred[pk] = make(map[string]*Triple)
	}
	g.byPred[pk][t.key()] = t
	if g.byObj[ok] == nil {
		g.byObj[ok] = make(map[string]*Triple)
	}
	g.byObj[ok][t.key()] = t
}

func (g *Graph) deindex(t *Triple) {
	sk, pk, ok := t.Subject.key(), t.Predicate.key(), t.Object.key()
	delete(g.bySubj[sk], t.key())
	delete(g.byPred[pk], t.key())
	delete(g.byObj[ok], t.key())
}

// Remove deletes an exact-match triple, if present.
func (g *Graph) Remove(s, p, o Term) {
	t := NewTriple(s, p, o)
	k := t.key()
	existing, ok := g.byKey[k]
	if !ok {
		return
	}
	g.deindex(existing)
	delete(g.byKey, k)
}

// RemoveTriple removes t by identity/equality.
func (g *Graph) RemoveTriple(t *Triple) {
	g.Remove(t.Subject, t.Predicate, t.Object)
}

// Contains reports whether (s, p, o) is in the graph.
func (g *Graph) Contains(s, p, o Term) bool {
	_, ok := g.byKey[NewTriple(s, p, o).key()]
	return ok
}

// Triples iterates triples matching a pattern; nil positions are wildcards.
func (g *Graph) Triples(s, p, o Term) []*Triple {
	switch {
	case s != nil && p != nil && o != nil:
		if t, ok := g.byKey[NewTriple(s, p, o).key()]; ok {
			return []*Triple{t}
		}
		return nil
	case s != nil:
		return filterBucket(g.bySubj[s.key()], func(t *Triple) bool {
			return (p == nil || t.Predicate.Equal(p)) && (o == nil || t.Object.Equal(o))
		})
	case p != nil:
		return filterBucket(g.byPred[p.key()], func(t *Triple) bool {
			return o == nil || t.Object.Equal(o)
		})
	case o != nil:
		return filterBucket(g.byObj[o.key()], func(t *Triple) bool {
			return true
		})
	default:
		all := make([]*Triple, 0, len(g.byKey))
		for _, t := range g.byKey {
			all = append(all, t)
		}
		return all
	}
}

// filterBucket scans a pre-selected index bucket and keeps triples matching
// keep.
func filterBucket(bucket map[string]*Triple, keep func(*Triple) bool) []*Triple {
	out := make([]*Triple, 0, len(bucket))
	for _, t := range bucket {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Subjects returns all distinct subjects x such that (x, p, o) is in the
// graph, for the given (possibly wildcard) p and o.
func (g *Graph) Subjects(p, o Term) []Term {
	seen := make(map[string]Term)
	for _, t := range g.Triples(nil, p, o) {
		seen[t.Subject.key()] = t.Subject
	}
	return values(seen)
}

// Objects returns all distinct objects y such that (s, p, y) is in the
// graph.
func (g *Graph) Objects(s, p Term) []Term {
	seen := make(map[string]Term)
	for _, t := range g.Triples(s, p, nil) {
		seen[t.Object.key()] = t.Object
	}
	return values(seen)
}

// PredicateObject pairs a predicate and object together.
type PredicateObject struct {
	Predicate Term
	Object    Term
}

// SubjectObject pairs a subject and object together.
type SubjectObject struct {
	Subject Term
	Object  Term
}

// SubjectPredicate pairs a subject and predicate together.
type SubjectPredicate struct {
	Subject   Term
	Predicate Term
}

// PredicateObjects returns every (p, o) pair for a fixed subject.
func (g *Graph) PredicateObjects(s Term) []PredicateObject {
	var out []PredicateObject
	for _, t := range g.Triples(s, nil, nil) {
		out = append(out, PredicateObject{t.Predicate, t.Object})
	}
	return out
}

// SubjectObjects returns every (s, o) pair for a fixed predicate.
func (g *Graph) SubjectObjects(p Term) []SubjectObject {
	var out []SubjectObject
	for _, t := range g.Triples(nil, p, nil) {
		out = append(out, SubjectObject{t.Subject, t.Object})
	}
	return out
}

// SubjectPredicates returns every (s, p) pair for a fixed object.
func (g *Graph) SubjectPredicates(o Term) []SubjectPredicate {
	var out []SubjectPredicate
	for _, t := range g.Triples(nil, nil, o) {
		out = append(out, SubjectPredicate{t.Subject, t.Predicate})
	}
	return out
}

// Items walks an rdf:first/rdf:rest list starting at head, returning members
// in order, until rdf:nil terminates the list (spec.md §6 "items").
// The walk stops at the first node lacking an rdf:first or rdf:rest value,
// or at a node already visited; where a node has several rdf:first or
// rdf:rest values, one of them is followed and which one is not defined.
func (g *Graph) Items(head Term) []Term {
	var out []Term
	cur := head
	seen := make(map[string]bool)
	for cur != nil && !cur.Equal(RDFNil) {
		if seen[cur.key()] {
			break // cyclic list guard
		}
		seen[cur.key()] = true
		firsts := g.Objects(cur, RDFFirst)
		rests := g.Objects(cur, RDFRest)
		if len(firsts) == 0 || len(rests) == 0 {
			break
		}
		out = append(out, firsts[0])
		cur = rests[0]
	}
	return out
}

// Bind records a prefix/namespace pretty-printing hint. Advisory only.
func (g *Graph) Bind(prefix, namespace string) {
	g.prefixes[prefix] = namespace
}

// Prefixes returns the advisory prefix table recorded via Bind.
func (g *Graph) Prefixes() map[string]string {
	out := make(map[string]string, len(g.prefixes))
	for k, v := range g.prefixes {
		out[k] = v
	}
	return out
}

// IterTriples returns a buffered channel over all triples, following the
// teacher's channel-based iteration idiom (cf. Dataset.IterQuads).
func (g *Graph) IterTriples() chan *Triple {
	ch := make(chan *Triple, len(g.byKey))
	for _, t := range g.byKey {
		ch <- t
	}
	close(ch)
	return ch
}

// Snapshot returns every triple currently in the graph as a plain slice,
// used by the closure driver to take a read-only view at the start of a
// cycle (spec.md §5 "snapshot + flush").
func (g *Graph) Snapshot() []*Triple {
	out := make([]*Triple, 0, len(g.byKey))
	for _, t := range g.byKey {
		out = append(out, t)
	}
	return out
}

func values(m map[string]Term) []Term {
	out := make([]Term, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}
