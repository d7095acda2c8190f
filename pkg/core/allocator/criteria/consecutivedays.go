package criteria

import (
	"fmt"

	roster "github.com/jakechorley/shift-rota/pkg/core/allocator"
	"github.com/jakechorley/shift-rota/pkg/core/model"
)

// ConsecutiveDaysCriterion limits how many calendar days in a row a person may work.
//
// Validity:
//   - Counts backwards from the day before the target, stopping at the first day
//     the person holds no shift
//   - Returns false when that run of consecutive days is >= maxDays
//
// Days before the start of the run are never counted.
type ConsecutiveDaysCriterion struct {
	maxDays int
}

// NewConsecutiveDaysCriterion creates a new ConsecutiveDaysCriterion
func NewConsecutiveDaysCriterion(maxDays int) *ConsecutiveDaysCriterion {
	return &ConsecutiveDaysCriterion{maxDays: maxDays}
}

func (c *ConsecutiveDaysCriterion) Name() string {
	return "ConsecutiveDays"
}

func (c *ConsecutiveDaysCriterion) IsShiftValid(state *roster.ScheduleState, person roster.Person, day model.Day, shift model.Shift) bool {
	return consecutiveDaysBefore(state, person.Name, day) < c.maxDays
}

func (c *ConsecutiveDaysCriterion) Describe(state *roster.ScheduleState, person roster.Person, day model.Day, shift model.Shift) string {
	return fmt.Sprintf("already worked %d consecutive days (limit %d)", consecutiveDaysBefore(state, person.Name, day), c.maxDays)
}

func consecutiveDaysBefore(state *roster.ScheduleState, person string, day model.Day) int {
	count := 0
	for d := day.AddDays(-1); !d.Before(state.Start); d = d.AddDays(-1) {
		if !state.HoldsAny(person, d) {
			break
		}
		count++
	}
	return count
}
