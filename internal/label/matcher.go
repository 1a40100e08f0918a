package label

// Matcher finds the existing labels that a desired label should be mapped
// onto, using the injected candidate name generator.
type Matcher struct {
	generator CandidateNameGenerator
}

// NewMatcher creates a Matcher using the given generator.
func NewMatcher(generator CandidateNameGenerator) *Matcher {
	return &Matcher{generator: generator}
}

// FindMatches returns every candidate label whose name equals one of the
// candidate names generated for target. Result order follows the order of
// candidates, not the order of candidate names. Pure function of its inputs.
func (m *Matcher) FindMatches(target Label, candidates []Label) []Label {
	names := m.generator.GenerateCandidateNames(target.Name)
	nameSet := make(map[string]struct{}, len(names))
	for _, n := range names {
		nameSet[n] = struct{}{}
	}

	var matches []Label
	for _, c := range candidates {
		if _, ok := nameSet[c.Name]; ok {
			matches = append(matches, c)
		}
	}
	return matches
}
