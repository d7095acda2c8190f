package allocator

import "slices"

// CurrentPercentage returns the share of the run's days already assigned to the person
func CurrentPercentage(state *ScheduleState, person Person) float64 {
	totalDays := state.TotalDays()
	if totalDays == 0 {
		return 0
	}
	return float64(state.CountFor(person.Name)) / float64(totalDays) * 100
}

// Deficit scores how far a person is below their minimum quota.
// Higher values should be allocated first; negative values mean the person is
// already above their minimum.
func Deficit(state *ScheduleState, person Person) float64 {
	return person.QuotaOrDefault().Min - CurrentPercentage(state, person)
}

// RankCandidates orders candidates by descending deficit.
// The sort is stable: ties keep the incoming (roster) order, which makes runs
// reproducible for identical inputs. The input slice is not modified.
func RankCandidates(state *ScheduleState, candidates []Person) []Person {
	deficits := make(map[string]float64, len(candidates))
	for _, p := range candidates {
		deficits[p.Name] = Deficit(state, p)
	}

	ranked := slices.Clone(candidates)
	slices.SortStableFunc(ranked, func(a, b Person) int {
		da, db := deficits[a.Name], deficits[b.Name]
		switch {
		case da > db:
			return -1
		case da < db:
			return 1
		}
		return 0
	})
	return ranked
}
