package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsecutiveDaysCriterion_Name(t *testing.T) {
	criterion := NewConsecutiveDaysCriterion(2)
	assert.Equal(t, "ConsecutiveDays", criterion.Name())
}

func TestConsecutiveDaysCriterion_IsShiftValid_NoPriorShifts(t *testing.T) {
	criterion := NewConsecutiveDaysCriterion(2)
	state := newState(t, "2025-01-06", "2025-01-12")

	assert.True(t, criterion.IsShiftValid(state, Person{Name: "A"}, mustDay(t, "2025-01-06"), Morning))
	assert.True(t, criterion.IsShiftValid(state, Person{Name: "A"}, mustDay(t, "2025-01-08"), Morning))
}

func TestConsecutiveDaysCriterion_IsShiftValid_OneDayWorked(t *testing.T) {
	criterion := NewConsecutiveDaysCriterion(2)
	state := newState(t, "2025-01-06", "2025-01-12")
	set(t, state, "2025-01-06", Afternoon, "A")

	assert.True(t, criterion.IsShiftValid(state, Person{Name: "A"}, mustDay(t, "2025-01-07"), Afternoon))
}

func TestConsecutiveDaysCriterion_IsShiftValid_TwoDaysWorked(t *testing.T) {
	criterion := NewConsecutiveDaysCriterion(2)
	state := newState(t, "2025-01-06", "2025-01-12")
	set(t, state, "2025-01-06", Morning, "A")
	set(t, state, "2025-01-07", Afternoon, "A")

	// Third day in a row is rejected
	assert.False(t, criterion.IsShiftValid(state, Person{Name: "A"}, mustDay(t, "2025-01-08"), Morning))
	assert.False(t, criterion.IsShiftValid(state, Person{Name: "A"}, mustDay(t, "2025-01-08"), Afternoon))

	// B is unaffected
	assert.True(t, criterion.IsShiftValid(state, Person{Name: "B"}, mustDay(t, "2025-01-08"), Morning))
}

func TestConsecutiveDaysCriterion_IsShiftValid_GapResetsCount(t *testing.T) {
	criterion := NewConsecutiveDaysCriterion(2)
	state := newState(t, "2025-01-06", "2025-01-12")
	set(t, state, "2025-01-06", Morning, "A")
	set(t, state, "2025-01-07", Morning, "A")
	// 2025-01-08 off
	set(t, state, "2025-01-09", Morning, "A")

	assert.True(t, criterion.IsShiftValid(state, Person{Name: "A"}, mustDay(t, "2025-01-10"), Morning))
}

func TestConsecutiveDaysCriterion_IsShiftValid_BothShiftsCountAsOneDay(t *testing.T) {
	criterion := NewConsecutiveDaysCriterion(2)
	state := newState(t, "2025-01-06", "2025-01-12")
	state.Seed([]FixedAssignment{
		{Day: mustDay(t, "2025-01-06"), Shift: Morning, PersonName: "A"},
		{Day: mustDay(t, "2025-01-06"), Shift: Afternoon, PersonName: "A"},
	})

	assert.True(t, criterion.IsShiftValid(state, Person{Name: "A"}, mustDay(t, "2025-01-07"), Morning))
}

func TestConsecutiveDaysCriterion_IsShiftValid_IgnoresLaterDays(t *testing.T) {
	criterion := NewConsecutiveDaysCriterion(2)
	state := newState(t, "2025-01-06", "2025-01-12")
	state.Seed([]FixedAssignment{
		{Day: mustDay(t, "2025-01-07"), Shift: Morning, PersonName: "A"},
		{Day: mustDay(t, "2025-01-08"), Shift: Morning, PersonName: "A"},
	})

	assert.True(t, criterion.IsShiftValid(state, Person{Name: "A"}, mustDay(t, "2025-01-06"), Morning))
}

func TestConsecutiveDaysCriterion_Describe(t *testing.T) {
	criterion := NewConsecutiveDaysCriterion(2)
	state := newState(t, "2025-01-06", "2025-01-12")
	set(t, state, "2025-01-06", Morning, "A")
	set(t, state, "2025-01-07", Morning, "A")

	assert.Equal(t, "already worked 2 consecutive days (limit 2)",
		criterion.Describe(state, Person{Name: "A"}, mustDay(t, "2025-01-08"), Morning))
}
