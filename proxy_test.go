package rdfclosure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallLiteralProxiesReplacesLiteralObjects(t *testing.T) {
	g := NewGraph("")
	alice := NewResource("http://example.org/alice")
	age := NewResource("http://example.org/age")
	g.Add(alice, age, NewLiteral("30"))

	handler := NewDatatypeHandler(false)
	errLog := NewErrorLog()
	proxies := InstallLiteralProxies(g, handler, errLog)

	// The plain literal and its xsd:string twin each get a proxy.
	triples := g.Triples(alice, age, nil)
	require.Len(t, triples, 2)
	_, isLiteral := triples[0].Object.(*Literal)
	assert.False(t, isLiteral)

	lit, ok := proxies.LiteralFor(triples[0].Object)
	require.True(t, ok)
	assert.Equal(t, "30", lit.Value)
}

func TestLiteralProxyTwinRuleForImplicitString(t *testing.T) {
	g := NewGraph("")
	s, p := NewResource("s"), NewResource("p")
	g.Add(s, p, NewLiteral("hello"))

	handler := NewDatatypeHandler(false)
	proxies := InstallLiteralProxies(g, handler, NewErrorLog())

	// Implicit string literal and its xsd:string twin should both have a
	// proxy, and both proxies should appear as an object of (s, p, _).
	assert.Len(t, g.Triples(s, p, nil), 2)

	plain, ok := proxies.ProxyFor(NewLiteral("hello"))
	require.True(t, ok)
	typed, ok := proxies.ProxyFor(NewTypedLiteral("hello", XSDString))
	require.True(t, ok)
	assert.False(t, plain.Equal(typed))
}

func TestLiteralProxyRestoreInverts(t *testing.T) {
	g := NewGraph("")
	s, p := NewResource("s"), NewResource("p")
	g.Add(s, p, NewLiteral("hello"))

	handler := NewDatatypeHandler(false)
	proxies := InstallLiteralProxies(g, handler, NewErrorLog())
	proxies.Restore()

	triples := g.Triples(s, p, nil)
	require.Len(t, triples, 1)
	lit, ok := triples[0].Object.(*Literal)
	require.True(t, ok)
	assert.Equal(t, "hello", lit.Value)
}

func TestLiteralProxyFlagsInvalidLexicalForm(t *testing.T) {
	g := NewGraph("")
	s, p := NewResource("s"), NewResource("p")
	g.Add(s, p, NewTypedLiteral("not-a-number", XSDInteger))

	handler := NewDatatypeHandler(true)
	errLog := NewErrorLog()
	InstallLiteralProxies(g, handler, errLog)

	require.Equal(t, 1, errLog.Len())
	assert.Equal(t, KindLexicalInvalid, errLog.Errors()[0].Kind)
}
