package rdfclosure

import "github.com/google/uuid"

// freshBlankID mints an opaque identifier for a new blank node, the same way
// the rest of the pack mints request/entity ids: uuid.New().String().
func freshBlankID() string {
	return uuid.New().String()
}
