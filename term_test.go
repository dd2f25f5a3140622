package rdfclosure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceEqual(t *testing.T) {
	a := NewResource("http://example.org/a")
	b := NewResource("http://example.org/a")
	c := NewResource("http://example.org/b")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, "<http://example.org/a>", a.String())
}

func TestBlankNodeFreshIDsDiffer(t *testing.T) {
	a := NewBlankNode("")
	b := NewBlankNode("")
	assert.False(t, a.Equal(b))
	assert.NotEmpty(t, a.ID)
}

func TestLiteralEqualityByLexicalDatatypeLanguage(t *testing.T) {
	plain := NewLiteral("42")
	typed := NewTypedLiteral("42", XSDInteger)
	langged := NewLiteral("42", "en")

	assert.False(t, plain.Equal(typed))
	assert.False(t, plain.Equal(langged))
	assert.True(t, typed.Equal(NewTypedLiteral("42", XSDInteger)))
}

func TestLiteralEffectiveDatatype(t *testing.T) {
	assert.True(t, NewLiteral("x").EffectiveDatatype().Equal(XSDString))
	assert.True(t, NewLiteral("x", "en").EffectiveDatatype().Equal(RDFLangString))
	assert.True(t, NewTypedLiteral("1", XSDInteger).EffectiveDatatype().Equal(XSDInteger))
}
