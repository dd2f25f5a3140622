package rdfclosure

// Static axiomatic triple tables (spec.md §2 C3), transcribed from
// AxiomaticTriples.py. Each table is a list of (s, p, o) triples added,
// optionally, before the fixed-point loop begins (spec.md §4.1 step 2).

// RDFSAxiomaticTriples are the core RDFS axioms (RDF Semantics §4.1, table
// excerpted to the fragment this engine cares about).
var RDFSAxiomaticTriples = [][3]Term{
	{RDFType, RDFType, RDFProperty},
	{RDFSDomain, RDFType, RDFProperty},
	{RDFSRange, RDFType, RDFProperty},
	{RDFSSubPropertyOf, RDFType, RDFProperty},
	{RDFSSubClassOf, RDFType, RDFProperty},
	{RDFFirst, RDFType, RDFProperty},
	{RDFRest, RDFType, RDFProperty},
	{RDFSSeeAlso, RDFType, RDFProperty},
	{RDFSIsDefinedBy, RDFType, RDFProperty},
	{RDFSComment, RDFType, RDFProperty},
	{RDFSLabel, RDFType, RDFProperty},

	{RDFSDomain, RDFSDomain, RDFProperty},
	{RDFSRange, RDFSDomain, RDFProperty},
	{RDFSSubPropertyOf, RDFSDomain, RDFProperty},
	{RDFSSubClassOf, RDFSDomain, RDFSClass},
	{RDFSMember, RDFSDomain, RDFSResource},
	{RDFFirst, RDFSDomain, RDFList},
	{RDFRest, RDFSDomain, RDFList},
	{RDFSSeeAlso, RDFSDomain, RDFSResource},
	{RDFSIsDefinedBy, RDFSDomain, RDFSResource},
	{RDFSComment, RDFSDomain, RDFSResource},
	{RDFSLabel, RDFSDomain, RDFSResource},
	{RDFValue, RDFSDomain, RDFSResource},

	{RDFSDomain, RDFSRange, RDFSClass},
	{RDFSRange, RDFSRange, RDFSClass},
	{RDFSSubPropertyOf, RDFSRange, RDFProperty},
	{RDFSSubClassOf, RDFSRange, RDFSClass},
	{RDFSMember, RDFSRange, RDFSResource},
	{RDFFirst, RDFSRange, RDFSResource},
	{RDFRest, RDFSRange, RDFList},
	{RDFSSeeAlso, RDFSRange, RDFSResource},
	{RDFSIsDefinedBy, RDFSRange, RDFSResource},
	{RDFSComment, RDFSRange, RDFSLiteral},
	{RDFSLabel, RDFSRange, RDFSLiteral},
	{RDFValue, RDFSRange, RDFSResource},

	{RDFAlt, RDFSSubClassOf, RDFSContainer},
	{RDFBag, RDFSSubClassOf, RDFSContainer},
	{RDFSeq, RDFSSubClassOf, RDFSContainer},
	{RDFSIsDefinedBy, RDFSSubPropertyOf, RDFSSeeAlso},
	{RDFSContainerMembershipProp, RDFSSubClassOf, RDFProperty},
	{RDFList, RDFType, RDFSClass},
	{RDFSResource, RDFType, RDFSClass},
	{RDFSClass, RDFType, RDFSClass},
	{RDFProperty, RDFType, RDFSClass},
	{RDFSLiteral, RDFType, RDFSClass},
	{RDFSContainer, RDFType, RDFSClass},
	{RDFSDatatype, RDFType, RDFSClass},
	{RDFXMLLiteral, RDFType, RDFSDatatype},
	{RDFXMLLiteral, RDFSSubClassOf, RDFSLiteral},
	{RDFSDatatype, RDFSSubClassOf, RDFSClass},
}

// RDFSDAxiomaticTriples are the datatype-related RDFS axioms, added when
// datatype_axioms is requested — the full xsd numeric/string subtype lattice
// of RDFClosure/AxiomaticTriples.py's RDFS_D_Axiomatic_Triples, not just the
// top-level datatypes.
var RDFSDAxiomaticTriples = [][3]Term{
	{XSDInteger, RDFType, RDFSDatatype},
	{XSDDecimal, RDFType, RDFSDatatype},
	{XSDNonPositiveInt, RDFType, RDFSDatatype},
	{XSDPositiveInt, RDFType, RDFSDatatype},
	{XSDLong, RDFType, RDFSDatatype},
	{XSDInt, RDFType, RDFSDatatype},
	{XSDShort, RDFType, RDFSDatatype},
	{XSDByte, RDFType, RDFSDatatype},
	{XSDUnsignedLong, RDFType, RDFSDatatype},
	{XSDUnsignedInt, RDFType, RDFSDatatype},
	{XSDUnsignedShort, RDFType, RDFSDatatype},
	{XSDUnsignedByte, RDFType, RDFSDatatype},
	{XSDFloat, RDFType, RDFSDatatype},
	{XSDDouble, RDFType, RDFSDatatype},
	{XSDString, RDFType, RDFSDatatype},
	{XSDNormalizedString, RDFType, RDFSDatatype},
	{XSDToken, RDFType, RDFSDatatype},
	{XSDLanguage, RDFType, RDFSDatatype},
	{XSDName, RDFType, RDFSDatatype},
	{XSDNCName, RDFType, RDFSDatatype},
	{XSDNMTOKEN, RDFType, RDFSDatatype},
	{XSDBoolean, RDFType, RDFSDatatype},
	{XSDHexBinary, RDFType, RDFSDatatype},
	{XSDBase64Binary, RDFType, RDFSDatatype},
	{XSDAnyURI, RDFType, RDFSDatatype},
	{XSDDateTimeStamp, RDFType, RDFSDatatype},
	{XSDDateTime, RDFType, RDFSDatatype},
	{RDFSLiteral, RDFType, RDFSDatatype},
	{RDFXMLLiteral, RDFType, RDFSDatatype},

	{XSDDecimal, RDFSSubClassOf, RDFSLiteral},
	{XSDInteger, RDFSSubClassOf, XSDDecimal},
	{XSDLong, RDFSSubClassOf, XSDInteger},
	{XSDInt, RDFSSubClassOf, XSDLong},
	{XSDShort, RDFSSubClassOf, XSDInt},
	{XSDByte, RDFSSubClassOf, XSDShort},
	{XSDNonNegativeInt, RDFSSubClassOf, XSDInteger},
	{XSDPositiveInt, RDFSSubClassOf, XSDNonNegativeInt},
	{XSDUnsignedLong, RDFSSubClassOf, XSDNonNegativeInt},
	{XSDUnsignedInt, RDFSSubClassOf, XSDUnsignedLong},
	{XSDUnsignedShort, RDFSSubClassOf, XSDUnsignedInt},
	{XSDUnsignedByte, RDFSSubClassOf, XSDUnsignedShort},
	{XSDNonPositiveInt, RDFSSubClassOf, XSDInteger},
	{XSDNegativeInt, RDFSSubClassOf, XSDNonPositiveInt},
	{XSDNormalizedString, RDFSSubClassOf, XSDString},
	{XSDToken, RDFSSubClassOf, XSDNormalizedString},
	{XSDLanguage, RDFSSubClassOf, XSDToken},
	{XSDName, RDFSSubClassOf, XSDToken},
	{XSDNMTOKEN, RDFSSubClassOf, XSDToken},
	{XSDNCName, RDFSSubClassOf, XSDName},
	{XSDDateTimeStamp, RDFSSubClassOf, XSDDateTime},
}

// OWLRLAxiomaticTriples are the OWL 2 RL class+property axioms (table 6/5 of
// the profile, as enumerated by AxiomaticTriples.py's OWLRL_Axiomatic_Triples
// fragment this engine realises directly in one_time_rules instead — see
// owlOneTimeRulesMisc in rules_owlrl.go, which covers cls-thing/cls-nothing/
// prp-ap. This table covers the remaining static class-hierarchy axioms).
var OWLRLAxiomaticTriples = [][3]Term{
	{OWLThing, RDFType, OWLClass},
	{OWLNothing, RDFType, OWLClass},
	{OWLNothing, RDFSSubClassOf, OWLThing},
	{OWLFunctionalProperty, RDFType, RDFSClass},
	{OWLInverseFunctionalProperty, RDFType, RDFSClass},
	{OWLSymmetricProperty, RDFType, RDFSClass},
	{OWLAsymmetricProperty, RDFType, RDFSClass},
	{OWLTransitiveProperty, RDFType, RDFSClass},
	{OWLIrreflexiveProperty, RDFType, RDFSClass},
}

// OWLRLDAxiomaticTriples are the OWL RL D-axioms: every OWL-RL datatype is a
// rdfs:Datatype (spec.md §4.6 dt-type1's "strict interpretation").
var OWLRLDAxiomaticTriples = buildOWLRLDAxioms()

func buildOWLRLDAxioms() [][3]Term {
	out := make([][3]Term, 0, len(OWLRLDatatypes))
	for _, dt := range OWLRLDatatypes {
		out = append(out, [3]Term{dt, RDFType, RDFSDatatype})
	}
	return out
}

// OWLRLDatatypesDisjointness lists the pairwise owl:disjointWith triples
// between "top-level" datatype families (AxiomaticTriples.py's
// OWLRL_Datatypes_Disjointness), restricted at emission time to datatypes
// actually observed in the graph (spec.md §4.6 dt-type1).
var OWLRLDatatypesDisjointness = [][3]Term{
	{XSDString, OWLDisjointWith, XSDBoolean},
	{XSDString, OWLDisjointWith, XSDDecimal},
	{XSDString, OWLDisjointWith, XSDDouble},
	{XSDString, OWLDisjointWith, XSDFloat},
	{XSDString, OWLDisjointWith, XSDDateTime},
	{XSDString, OWLDisjointWith, XSDHexBinary},
	{XSDString, OWLDisjointWith, XSDBase64Binary},
	{XSDBoolean, OWLDisjointWith, XSDDecimal},
	{XSDBoolean, OWLDisjointWith, XSDDouble},
	{XSDBoolean, OWLDisjointWith, XSDFloat},
	{XSDBoolean, OWLDisjointWith, XSDDateTime},
	{XSDBoolean, OWLDisjointWith, XSDHexBinary},
	{XSDBoolean, OWLDisjointWith, XSDBase64Binary},
	{XSDDecimal, OWLDisjointWith, XSDDouble},
	{XSDDecimal, OWLDisjointWith, XSDFloat},
	{XSDDecimal, OWLDisjointWith, XSDDateTime},
	{XSDDecimal, OWLDisjointWith, XSDHexBinary},
	{XSDDecimal, OWLDisjointWith, XSDBase64Binary},
	{XSDDouble, OWLDisjointWith, XSDFloat},
	{XSDDouble, OWLDisjointWith, XSDDateTime},
	{XSDDouble, OWLDisjointWith, XSDHexBinary},
	{XSDDouble, OWLDisjointWith, XSDBase64Binary},
	{XSDFloat, OWLDisjointWith, XSDDateTime},
	{XSDFloat, OWLDisjointWith, XSDHexBinary},
	{XSDFloat, OWLDisjointWith, XSDBase64Binary},
	{XSDDateTime, OWLDisjointWith, XSDHexBinary},
	{XSDDateTime, OWLDisjointWith, XSDBase64Binary},
	{XSDHexBinary, OWLDisjointWith, XSDBase64Binary},
}

// The following terms are used only by the axiomatic tables above and have
// no other role in the rule bodies, so they are declared locally rather
// than in vocab.go.
var (
	RDFList          = rdf("List")
	RDFAlt           = rdf("Alt")
	RDFBag           = rdf("Bag")
	RDFSeq           = rdf("Seq")
	RDFValue         = rdf("value")
	RDFSContainer    = rdfs("Container")
)
