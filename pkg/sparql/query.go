// Package sparql builds the metadata queries Vocascope runs against a
// registry's graph endpoint and interprets their result bindings.
// Query construction is pure string work; nothing here touches the
// network.
package sparql

import "strings"

// vocabVar is the binding variable every query selects the subject
// vocabulary under. Binding interpretation keys on it.
const vocabVar = "vocab"

// AdoptionQuery builds a query selecting the three adoption counts for
// each of the given vocabulary URIs. Counts are published directly as
// properties, so each is an OPTIONAL binding. Returns "" when no URI
// survives embedding; callers must not issue an empty query.
func AdoptionQuery(uris []string) string {
	values := valuesBlock(uris)
	if values == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("PREFIX voaf: <" + VOAFNamespace + ">\n")
	b.WriteString("SELECT ?vocab ?reusedByVocabularies ?reusedByDatasets ?occurrencesInDatasets\n")
	b.WriteString("WHERE {\n")
	b.WriteString(values)
	b.WriteString("  OPTIONAL { ?vocab voaf:reusedByVocabularies ?reusedByVocabularies . }\n")
	b.WriteString("  OPTIONAL { ?vocab voaf:reusedByDatasets ?reusedByDatasets . }\n")
	b.WriteString("  OPTIONAL { ?vocab voaf:occurrencesInDatasets ?occurrencesInDatasets . }\n")
	b.WriteString("}\n")
	return b.String()
}

// DesignQuery builds a query counting, per vocabulary URI, the distinct
// related vocabularies under each of the six relationship predicates.
// Returns "" when no URI survives embedding.
func DesignQuery(uris []string) string {
	values := valuesBlock(uris)
	if values == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("PREFIX voaf: <" + VOAFNamespace + ">\n")
	b.WriteString("SELECT ?vocab\n")
	b.WriteString("  (COUNT(DISTINCT ?ext) AS ?extends)\n")
	b.WriteString("  (COUNT(DISTINCT ?eq) AS ?hasEquivalencesWith)\n")
	b.WriteString("  (COUNT(DISTINCT ?rel) AS ?reliesOn)\n")
	b.WriteString("  (COUNT(DISTINCT ?usr) AS ?usedBy)\n")
	b.WriteString("  (COUNT(DISTINCT ?spec) AS ?specializes)\n")
	b.WriteString("  (COUNT(DISTINCT ?gen) AS ?generalizes)\n")
	b.WriteString("WHERE {\n")
	b.WriteString(values)
	b.WriteString("  OPTIONAL { ?vocab voaf:extends ?ext . }\n")
	b.WriteString("  OPTIONAL { ?vocab voaf:hasEquivalencesWith ?eq . }\n")
	b.WriteString("  OPTIONAL { ?vocab voaf:reliesOn ?rel . }\n")
	b.WriteString("  OPTIONAL { ?vocab voaf:usedBy ?usr . }\n")
	b.WriteString("  OPTIONAL { ?vocab voaf:specializes ?spec . }\n")
	b.WriteString("  OPTIONAL { ?vocab voaf:generalizes ?gen . }\n")
	b.WriteString("}\nGROUP BY ?vocab\n")
	return b.String()
}

// valuesBlock renders the VALUES clause binding ?vocab to each URI as
// an exact IRI reference. URIs that cannot appear inside <> are
// skipped. Returns "" when nothing can be embedded.
func valuesBlock(uris []string) string {
	refs := make([]string, 0, len(uris))
	for _, uri := range uris {
		if uri == "" || !iriSafe(uri) {
			continue
		}
		refs = append(refs, "<"+uri+">")
	}
	if len(refs) == 0 {
		return ""
	}
	return "  VALUES ?vocab { " + strings.Join(refs, " ") + " }\n"
}

// iriSafe reports whether a URI can be embedded verbatim inside an
// IRI reference. The excluded characters are the ones RFC 3987 keeps
// out of IRIs plus anything that would terminate the <> literal.
func iriSafe(uri string) bool {
	if strings.ContainsAny(uri, "<>\"{}|\\^`") {
		return false
	}
	for _, r := range uri {
		if r <= ' ' {
			return false
		}
	}
	return true
}
