package rdfclosure

// Triple is an ordered (subject, predicate, object). The engine operates on
// generalised RDF (spec.md §3): Predicate may be a BlankNode while inference
// is running; such triples are swept up by post-processing in the OWL 2 RL
// regime (spec.md §4.1 step 5, §4.6 post_process).
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// NewTriple returns a new Triple.
func NewTriple(subject, predicate, object Term) *Triple {
	return &Triple{Subject: subject, Predicate: predicate, Object: object}
}

// String returns a Turtle-ish single-line representation.
func (t Triple) String() string {
	return t.Subject.String() + " " + t.Predicate.String() + " " + t.Object.String() + " ."
}

// Equal reports whether other denotes the same triple.
func (t Triple) Equal(other Triple) bool {
	return t.Subject.Equal(other.Subject) &&
		t.Predicate.Equal(other.Predicate) &&
		t.Object.Equal(other.Object)
}

// key returns the canonical index key used for deduplication.
func (t Triple) key() string {
	return t.Subject.key() + "\x01" + t.Predicate.key() + "\x01" + t.Object.key()
}

// valid reports whether none of the three positions is nil. add() silently
// drops triples failing this check (spec.md §6: "silently drops triples
// where any position is null").
func (t Triple) valid() bool {
	return t.Subject != nil && t.Predicate != nil && t.Object != nil
}
