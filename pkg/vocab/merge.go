package vocab

// Merge joins search entries with the two metadata mappings keyed by
// URI. Every input entry produces exactly one output record, in input
// order; a URI absent from a mapping (or an entry with no URI at all)
// gets the documented default metrics. Scores are left at zero for the
// scoring engine to fill.
func Merge(entries []VocabularyEntry, adoption map[string]AdoptionMetrics, design map[string]DesignMetrics) []RankedEntry {
	merged := make([]RankedEntry, 0, len(entries))
	for _, entry := range entries {
		ranked := RankedEntry{
			VocabularyEntry: entry,
			Adoption:        DefaultAdoptionMetrics(),
		}
		if entry.URI != "" {
			if a, ok := adoption[entry.URI]; ok {
				ranked.Adoption = a.Normalize()
			}
			if d, ok := design[entry.URI]; ok {
				ranked.Design = d
			}
		}
		merged = append(merged, ranked)
	}
	return merged
}

// CollectURIs returns the non-empty URIs of the given entries, in
// order, without duplicates. Entries with no URI are skipped; they
// stay in the result list but are never sent to the graph.
func CollectURIs(entries []VocabularyEntry) []string {
	seen := make(map[string]bool, len(entries))
	uris := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.URI == "" || seen[entry.URI] {
			continue
		}
		seen[entry.URI] = true
		uris = append(uris, entry.URI)
	}
	return uris
}
