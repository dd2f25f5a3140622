package rdfclosure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatatypeHandlerStrictValidation(t *testing.T) {
	h := NewDatatypeHandler(true)

	_, err := h.Parse("42", XSDInteger)
	assert.NoError(t, err)

	_, err = h.Parse("not-a-number", XSDInteger)
	assert.Error(t, err)

	_, err = h.Parse("true", XSDBoolean)
	assert.NoError(t, err)

	_, err = h.Parse("maybe", XSDBoolean)
	assert.Error(t, err)
}

func TestDatatypeHandlerSubsumption(t *testing.T) {
	h := NewDatatypeHandler(true)
	supers := h.Supers(XSDInt)
	require.Contains(t, supers, XSDLong.String())
	require.Contains(t, supers, XSDInteger.String())
	require.Contains(t, supers, XSDDecimal.String())
}

func TestDatatypeHandlerRegisterDatatype(t *testing.T) {
	h := NewDatatypeHandler(true)
	custom := NewResource("http://example.org/myDatatype")
	h.RegisterDatatype(custom, func(lexical string) (interface{}, error) {
		if lexical != "ok" {
			return nil, &ErrLexicalInvalid{Lexical: lexical, Datatype: custom.String()}
		}
		return lexical, nil
	}, XSDString)

	_, err := h.Parse("ok", custom)
	assert.NoError(t, err)
	_, err = h.Parse("nope", custom)
	assert.Error(t, err)

	supers := h.Supers(custom)
	assert.Contains(t, supers, XSDString.String())
}

func TestValidateRational(t *testing.T) {
	v, err := validateRational("3/4")
	require.NoError(t, err)
	assert.Equal(t, Rational{Numerator: 3, Denominator: 4}, v)

	v, err = validateRational("5")
	require.NoError(t, err)
	assert.Equal(t, Rational{Numerator: 5, Denominator: 1}, v)

	_, err = validateRational("3/+4")
	assert.Error(t, err)
}
