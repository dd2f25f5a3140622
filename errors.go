package rdfclosure

import "fmt"

// ErrorKind classifies a recorded inference-time error (spec.md §7 "Error
// taxonomy"). Errors never halt inference; they are recorded here and
// returned in Result.Errors. They are not written into the graph.
type ErrorKind string

const (
	// KindInconsistency covers sameAs/differentFrom clashes, disjointness
	// violations, AllDisjointProperties co-extension, negative property
	// assertions, asymmetric/irreflexive misuse, and cardinality breaches.
	KindInconsistency ErrorKind = "inconsistency"
	// KindRestrictionViolation covers allValuesFrom assignments that fail a
	// target datatype's facet check.
	KindRestrictionViolation ErrorKind = "restriction-violation"
	// KindLexicalInvalid covers a literal lexical form that does not conform
	// to its declared datatype.
	KindLexicalInvalid ErrorKind = "lexical-invalid"
	// KindNothingTyping covers a term typed owl:Nothing.
	KindNothingTyping ErrorKind = "nothing-typing"
)

// EngineError is one recorded, non-fatal inference error.
type EngineError struct {
	Kind    ErrorKind
	Message string
}

func (e EngineError) String() string { return string(e.Kind) + ": " + e.Message }

// ErrorLog is an append-only list of inference errors (spec.md §3 "Error
// log"). Non-fatal: errors recorded here never stop the fixed-point loop.
type ErrorLog struct {
	entries []EngineError
}

// NewErrorLog returns an empty ErrorLog.
func NewErrorLog() *ErrorLog {
	return &ErrorLog{}
}

// Add appends a formatted error of the given kind.
func (l *ErrorLog) Add(kind ErrorKind, format string, args ...interface{}) {
	l.entries = append(l.entries, EngineError{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// Errors returns the recorded errors in the order they were added.
func (l *ErrorLog) Errors() []EngineError {
	out := make([]EngineError, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports how many errors have been recorded.
func (l *ErrorLog) Len() int { return len(l.entries) }
