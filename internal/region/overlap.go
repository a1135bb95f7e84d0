package region

// ResolveOverlaps drops every candidate whose rectangle overlaps an
// earlier candidate, so each island keeps only its first-seen
// detection. Rectangles that merely touch count as overlapping.
//
// The comparison runs against all earlier candidates in the incoming
// order, not only the ones kept so far: a detection that duplicates an
// already-dropped rectangle is dropped too. This keeps the outcome a
// pure function of the ordered input.
func ResolveOverlaps(candidates []Candidate) []Candidate {
	var kept []Candidate
	for i, c := range candidates {
		clear := true
		for j := 0; j < i; j++ {
			if c.Rect.Overlaps(candidates[j].Rect) {
				clear = false
				break
			}
		}
		if clear {
			kept = append(kept, c)
		}
	}
	return kept
}
