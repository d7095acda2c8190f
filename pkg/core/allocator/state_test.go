package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/shift-rota/pkg/core/model"
)

func TestScheduleState_Seed(t *testing.T) {
	start, end := mustDay(t, "2025-03-03"), mustDay(t, "2025-03-05")
	state := NewScheduleState(start, end, []Person{person("A", model.EligibleBoth)})

	state.Seed([]FixedAssignment{
		{Day: start, Shift: model.ShiftMorning, PersonName: "A"},
		{Day: start.AddDays(1), Shift: model.ShiftAfternoon, PersonName: "A"},
	})

	a, ok := state.Get(start, model.ShiftMorning)
	require.True(t, ok)
	assert.Equal(t, Assignment("A"), a)
	assert.True(t, state.IsFixed(start, model.ShiftMorning))
	assert.False(t, state.IsFixed(start, model.ShiftAfternoon))
	assert.Equal(t, 2, state.CountFor("A"))
}

func TestScheduleState_Seed_IgnoresOutOfRangeAndDuplicates(t *testing.T) {
	start, end := mustDay(t, "2025-03-03"), mustDay(t, "2025-03-05")
	state := NewScheduleState(start, end, nil)

	state.Seed([]FixedAssignment{
		{Day: start.AddDays(-1), Shift: model.ShiftMorning, PersonName: "A"},
		{Day: end.AddDays(1), Shift: model.ShiftMorning, PersonName: "A"},
		{Day: start, Shift: model.ShiftMorning, PersonName: "A"},
		{Day: start, Shift: model.ShiftMorning, PersonName: "B"},
	})

	a, _ := state.Get(start, model.ShiftMorning)
	assert.Equal(t, Assignment("A"), a)
	assert.Equal(t, 1, state.CountFor("A"))
	assert.Equal(t, 0, state.CountFor("B"))
}

func TestScheduleState_Set_RejectsFixedCell(t *testing.T) {
	start := mustDay(t, "2025-03-03")
	state := NewScheduleState(start, start, nil)
	state.Seed([]FixedAssignment{{Day: start, Shift: model.ShiftMorning, PersonName: "A"}})

	err := state.Set(start, model.ShiftMorning, Assignment("B"))
	require.ErrorIs(t, err, ErrFixedCell)

	a, _ := state.Get(start, model.ShiftMorning)
	assert.Equal(t, Assignment("A"), a)
	assert.Equal(t, 0, state.CountFor("B"))
}

func TestScheduleState_Set_UncoveredDoesNotCount(t *testing.T) {
	start := mustDay(t, "2025-03-03")
	state := NewScheduleState(start, start, nil)

	require.NoError(t, state.Set(start, model.ShiftMorning, Uncovered))
	require.NoError(t, state.Set(start, model.ShiftAfternoon, Assignment("A")))

	a, ok := state.Get(start, model.ShiftMorning)
	assert.True(t, ok)
	assert.True(t, a.IsUncovered())
	assert.Equal(t, 1, state.CountFor("A"))
	assert.Equal(t, 0, state.CountFor(""))
}

func TestScheduleState_AssignmentsOnDay(t *testing.T) {
	start := mustDay(t, "2025-03-03")
	state := NewScheduleState(start, start.AddDays(1), nil)
	state.Seed([]FixedAssignment{
		{Day: start, Shift: model.ShiftMorning, PersonName: "A"},
		{Day: start, Shift: model.ShiftAfternoon, PersonName: "A"},
	})

	assert.Equal(t, []model.Shift{model.ShiftMorning, model.ShiftAfternoon}, state.AssignmentsOnDay("A", start))
	assert.Empty(t, state.AssignmentsOnDay("A", start.AddDays(1)))
	assert.True(t, state.HoldsAny("A", start))
	assert.False(t, state.HoldsAny("B", start))
	assert.True(t, state.Holds("A", start, model.ShiftAfternoon))
}

func TestScheduleState_Schedule_UnsetCellsAreUncovered(t *testing.T) {
	start := mustDay(t, "2025-03-03")
	state := NewScheduleState(start, start.AddDays(1), nil)
	state.Seed([]FixedAssignment{{Day: start, Shift: model.ShiftAfternoon, PersonName: "A"}})

	schedule := state.Schedule()

	require.Len(t, schedule.Days, 2)
	assert.Equal(t, 2, schedule.TotalDays())
	assert.True(t, schedule.Days[0].Morning.IsUncovered())
	assert.Equal(t, Assignment("A"), schedule.Days[0].Afternoon)
	assert.True(t, schedule.Days[0].AfternoonFixed)
	assert.False(t, schedule.Days[0].MorningFixed)
	assert.Len(t, schedule.UncoveredCells(), 3)
}
