package scoring

// Canonical formula constants. The connectivity formula is fixed;
// these are not configuration.
const (
	// DesignWeight and AdoptionWeight split the composite 60/40 in
	// favor of structural evidence.
	DesignWeight   = 0.6
	AdoptionWeight = 0.4

	// Normalizer maps the weighted composite into [0,1]. A composite
	// of 15 or more caps the score at 1.
	Normalizer = 15.0

	// DefaultOccurrenceScale divides dataset occurrence counts before
	// their log term.
	DefaultOccurrenceScale = 1000.0
)

// DefaultFacets returns the two standard facets with canonical weights.
func DefaultFacets() []Facet {
	return []Facet{
		&DesignConvergence{FacetWeight: DesignWeight},
		&AdoptionConvergence{
			FacetWeight:     AdoptionWeight,
			OccurrenceScale: DefaultOccurrenceScale,
		},
	}
}
