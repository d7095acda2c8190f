package allocator

import (
	"github.com/jakechorley/shift-rota/pkg/core/model"
)

// CandidatePool returns the people who may be considered for (day, shift):
//   - not absent on the day according to the availability source
//   - eligible for the shift
//   - not already holding the other shift of the same day
//
// The pool keeps the roster's canonical order. A day for which the source has
// no data yields an empty pool.
func CandidatePool(state *ScheduleState, source AvailabilitySource, day model.Day, shift model.Shift) []Person {
	available, ok := source.AvailablePeople(day)
	if !ok || len(available) == 0 {
		return nil
	}

	// Shift order within a day is fixed (Morning first), so the other shift
	// is only excluded when it has already been committed
	otherHolder := ""
	if other, set := state.Get(day, shift.Other()); set && !other.IsUncovered() {
		otherHolder = other.Person()
	}

	var pool []Person
	for _, person := range state.Roster {
		if !available[person.Name] {
			continue
		}
		if !person.Eligibility.Allows(shift) {
			continue
		}
		if person.Name == otherHolder {
			continue
		}
		pool = append(pool, person)
	}
	return pool
}
