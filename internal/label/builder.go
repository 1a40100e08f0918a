package label

// PlanBuilder builds sync plans by mapping desired labels onto a repository's
// existing labels through the injected matcher.
type PlanBuilder struct {
	matcher *Matcher
}

// NewPlanBuilder creates a PlanBuilder using the given matcher.
func NewPlanBuilder(matcher *Matcher) *PlanBuilder {
	return &PlanBuilder{matcher: matcher}
}

// BuildPlan iterates the desired labels in order and records, for each one,
// either an update of the first matching existing label or a create. When
// several existing labels match the same desired label only the first (by
// existing-label order) is targeted; the others are left untouched. Two
// desired labels matching the same existing label both record an update under
// that label's name, so the later one wins.
func (b *PlanBuilder) BuildPlan(owner, repository string, desired, existing []Label) *SyncPlan {
	plan := NewSyncPlan(owner, repository)
	for _, d := range desired {
		matches := b.matcher.FindMatches(d, existing)
		if len(matches) > 0 {
			plan.AddLabelToUpdate(matches[0], d)
			continue
		}
		plan.AddLabelToCreate(d)
	}
	return plan
}
