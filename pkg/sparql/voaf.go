package sparql

// VOAF (Vocabulary of a Friend) property IRIs. These are the predicates
// LOV-style registries publish to describe how vocabularies relate to
// and reuse each other.
//
// Reference: http://purl.org/vocommons/voaf

// VOAFNamespace is the base IRI for all VOAF properties.
const VOAFNamespace = "http://purl.org/vocommons/voaf#"

// Adoption properties: evidence of real-world instantiation.
const (
	// VOAFReusedByVocabularies counts vocabularies that reuse this one.
	VOAFReusedByVocabularies = VOAFNamespace + "reusedByVocabularies"

	// VOAFReusedByDatasets counts datasets that reuse this vocabulary.
	VOAFReusedByDatasets = VOAFNamespace + "reusedByDatasets"

	// VOAFOccurrencesInDatasets counts occurrences of the vocabulary's
	// terms across indexed datasets.
	VOAFOccurrencesInDatasets = VOAFNamespace + "occurrencesInDatasets"
)

// Relationship properties: vocabulary-to-vocabulary structure.
const (
	VOAFExtends             = VOAFNamespace + "extends"
	VOAFHasEquivalencesWith = VOAFNamespace + "hasEquivalencesWith"
	VOAFReliesOn            = VOAFNamespace + "reliesOn"
	VOAFUsedBy              = VOAFNamespace + "usedBy"
	VOAFSpecializes         = VOAFNamespace + "specializes"
	VOAFGeneralizes         = VOAFNamespace + "generalizes"
)
