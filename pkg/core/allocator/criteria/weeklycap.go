package criteria

import (
	"fmt"

	roster "github.com/jakechorley/shift-rota/pkg/core/allocator"
	"github.com/jakechorley/shift-rota/pkg/core/model"
)

// WeeklyCapCriterion limits the number of shifts a person holds in a Monday-Sunday week.
//
// Validity:
//   - Counts the shifts the person holds from the Monday of the target day's week
//     up to and including the target day
//   - Returns false when that count is >= maxShifts
//
// Days after the target are ignored, including fixed assignments later in the week.
type WeeklyCapCriterion struct {
	maxShifts int
}

// NewWeeklyCapCriterion creates a new WeeklyCapCriterion
func NewWeeklyCapCriterion(maxShifts int) *WeeklyCapCriterion {
	return &WeeklyCapCriterion{maxShifts: maxShifts}
}

func (c *WeeklyCapCriterion) Name() string {
	return "WeeklyCap"
}

func (c *WeeklyCapCriterion) IsShiftValid(state *roster.ScheduleState, person roster.Person, day model.Day, shift model.Shift) bool {
	return shiftsInWeekSoFar(state, person.Name, day) < c.maxShifts
}

func (c *WeeklyCapCriterion) Describe(state *roster.ScheduleState, person roster.Person, day model.Day, shift model.Shift) string {
	return fmt.Sprintf("already holds %d shifts in the week of %s (limit %d)",
		shiftsInWeekSoFar(state, person.Name, day), day.WeekStart(), c.maxShifts)
}

func shiftsInWeekSoFar(state *roster.ScheduleState, person string, day model.Day) int {
	count := 0
	for _, d := range model.DaysInRange(day.WeekStart(), day) {
		count += len(state.AssignmentsOnDay(person, d))
	}
	return count
}
