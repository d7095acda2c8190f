package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeeklyCapCriterion_Name(t *testing.T) {
	assert.Equal(t, "WeeklyCap", NewWeeklyCapCriterion(3).Name())
}

func TestWeeklyCapCriterion_IsShiftValid_UnderCap(t *testing.T) {
	criterion := NewWeeklyCapCriterion(3)
	state := newState(t, "2025-01-06", "2025-01-19")
	set(t, state, "2025-01-06", Morning, "A")
	set(t, state, "2025-01-08", Morning, "A")

	assert.True(t, criterion.IsShiftValid(state, Person{Name: "A"}, mustDay(t, "2025-01-10"), Morning))
}

func TestWeeklyCapCriterion_IsShiftValid_AtCap(t *testing.T) {
	criterion := NewWeeklyCapCriterion(3)
	state := newState(t, "2025-01-06", "2025-01-19")
	set(t, state, "2025-01-06", Morning, "A")
	set(t, state, "2025-01-08", Morning, "A")
	set(t, state, "2025-01-09", Afternoon, "A")

	// Sunday is still in the same Monday-Sunday week
	assert.False(t, criterion.IsShiftValid(state, Person{Name: "A"}, mustDay(t, "2025-01-12"), Morning))
	assert.Equal(t, "already holds 3 shifts in the week of 2025-01-06 (limit 3)",
		criterion.Describe(state, Person{Name: "A"}, mustDay(t, "2025-01-12"), Morning))
}

func TestWeeklyCapCriterion_IsShiftValid_NewWeekResets(t *testing.T) {
	criterion := NewWeeklyCapCriterion(3)
	state := newState(t, "2025-01-06", "2025-01-19")
	set(t, state, "2025-01-10", Morning, "A")
	set(t, state, "2025-01-11", Morning, "A")
	set(t, state, "2025-01-12", Morning, "A")

	// Monday 13th starts a new week
	assert.True(t, criterion.IsShiftValid(state, Person{Name: "A"}, mustDay(t, "2025-01-13"), Morning))
}

func TestWeeklyCapCriterion_IsShiftValid_IgnoresLaterFixedShifts(t *testing.T) {
	criterion := NewWeeklyCapCriterion(3)
	state := newState(t, "2025-01-06", "2025-01-12")
	state.Seed([]FixedAssignment{
		{Day: mustDay(t, "2025-01-09"), Shift: Morning, PersonName: "A"},
		{Day: mustDay(t, "2025-01-10"), Shift: Morning, PersonName: "A"},
		{Day: mustDay(t, "2025-01-11"), Shift: Morning, PersonName: "A"},
	})

	assert.True(t, criterion.IsShiftValid(state, Person{Name: "A"}, mustDay(t, "2025-01-07"), Morning))
}

func TestWeeklyCapCriterion_IsShiftValid_CountsFixedShiftsSoFar(t *testing.T) {
	criterion := NewWeeklyCapCriterion(3)
	state := newState(t, "2025-01-06", "2025-01-12")
	state.Seed([]FixedAssignment{
		{Day: mustDay(t, "2025-01-06"), Shift: Morning, PersonName: "A"},
		{Day: mustDay(t, "2025-01-06"), Shift: Afternoon, PersonName: "A"},
		{Day: mustDay(t, "2025-01-07"), Shift: Morning, PersonName: "A"},
	})

	assert.False(t, criterion.IsShiftValid(state, Person{Name: "A"}, mustDay(t, "2025-01-08"), Afternoon))
}
