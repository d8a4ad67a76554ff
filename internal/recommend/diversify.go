package recommend

// maxSharedTagFraction is the diversity threshold: a candidate sharing at
// least half its tags with an accepted item must differ in group (genre or
// mood) to pass the filter.
const maxSharedTagFraction = 0.5

// itemTraits is what the diversity filter looks at: the candidate's tag set
// and its grouping labels. Books leave mood empty, so their group reduces to
// genre alone.
type itemTraits struct {
	genre string
	mood  string
	tags  []string
}

// diversify applies the two-phase top-K selection to a score-sorted list.
// Phase one walks candidates in score order, always taking the first, and
// accepts a candidate only if against every accepted item it either shares
// fewer than half its tags or belongs to a different group. Phase two
// backfills remaining slots in score order regardless of diversity. A list
// no longer than max is returned untouched.
func diversify[T any](items []T, traits func(T) itemTraits, max int) []T {
	if len(items) <= max {
		return items
	}

	accepted := []T{items[0]}
	taken := make([]bool, len(items))
	taken[0] = true

	for i := 1; i < len(items) && len(accepted) < max; i++ {
		candidate := traits(items[i])
		distinct := true
		for _, a := range accepted {
			if !distinctFrom(candidate, traits(a)) {
				distinct = false
				break
			}
		}
		if distinct {
			accepted = append(accepted, items[i])
			taken[i] = true
		}
	}

	for i := 0; i < len(items) && len(accepted) < max; i++ {
		if !taken[i] {
			accepted = append(accepted, items[i])
			taken[i] = true
		}
	}

	return accepted
}

// distinctFrom reports whether the candidate is diverse enough relative to
// one accepted item.
func distinctFrom(candidate, accepted itemTraits) bool {
	return sharedTagFraction(candidate.tags, accepted.tags) < maxSharedTagFraction ||
		!sameGroup(candidate, accepted)
}

// sharedTagFraction is the fraction of the candidate's tags also present on
// the accepted item. A candidate with no tags can never demonstrate tag
// diversity, so the fraction is pinned to 1 and the group check decides.
func sharedTagFraction(candidate, accepted []string) float64 {
	if len(candidate) == 0 {
		return 1
	}
	acceptedSet := make(map[string]bool, len(accepted))
	for _, t := range accepted {
		acceptedSet[t] = true
	}
	shared := 0
	for _, t := range candidate {
		if acceptedSet[t] {
			shared++
		}
	}
	return float64(shared) / float64(len(candidate))
}

// sameGroup matches on genre, or on mood when both items carry one.
func sameGroup(a, b itemTraits) bool {
	if a.genre == b.genre {
		return true
	}
	return a.mood != "" && a.mood == b.mood
}
