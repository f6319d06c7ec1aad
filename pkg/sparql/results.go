package sparql

import (
	"encoding/json"
	"fmt"

	"github.com/vocascope/vocascope/pkg/vocab"
)

// Value is a single bound value in a SPARQL JSON result.
type Value struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Binding maps variable names to bound values for one result row.
// Looking up an unbound variable yields the zero Value.
type Binding map[string]Value

type resultsEnvelope struct {
	Results struct {
		Bindings []Binding `json:"bindings"`
	} `json:"results"`
}

// ParseResults decodes a SPARQL JSON results body into its bindings.
// A body that is valid JSON but lacks the results.bindings shape
// yields zero bindings, not an error.
func ParseResults(data []byte) ([]Binding, error) {
	var env resultsEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshaling sparql results: %w", err)
	}
	return env.Results.Bindings, nil
}

// AdoptionFromBindings keys adoption metrics by vocabulary URI. Rows
// without a ?vocab binding are dropped; unbound count variables fall
// back to "0".
func AdoptionFromBindings(bindings []Binding) map[string]vocab.AdoptionMetrics {
	out := make(map[string]vocab.AdoptionMetrics, len(bindings))
	for _, b := range bindings {
		uri := b[vocabVar].Value
		if uri == "" {
			continue
		}
		out[uri] = vocab.AdoptionMetrics{
			ReusedByVocabularies:  b["reusedByVocabularies"].Value,
			ReusedByDatasets:      b["reusedByDatasets"].Value,
			OccurrencesInDatasets: b["occurrencesInDatasets"].Value,
		}.Normalize()
	}
	return out
}

// DesignFromBindings keys design metrics by vocabulary URI. Counts are
// parsed as non-negative integers; anything else reads as 0.
func DesignFromBindings(bindings []Binding) map[string]vocab.DesignMetrics {
	out := make(map[string]vocab.DesignMetrics, len(bindings))
	for _, b := range bindings {
		uri := b[vocabVar].Value
		if uri == "" {
			continue
		}
		out[uri] = vocab.DesignMetrics{
			Extends:             vocab.ParseCount(b["extends"].Value),
			HasEquivalencesWith: vocab.ParseCount(b["hasEquivalencesWith"].Value),
			ReliesOn:            vocab.ParseCount(b["reliesOn"].Value),
			UsedBy:              vocab.ParseCount(b["usedBy"].Value),
			Specializes:         vocab.ParseCount(b["specializes"].Value),
			Generalizes:         vocab.ParseCount(b["generalizes"].Value),
		}
	}
	return out
}
