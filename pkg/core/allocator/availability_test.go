package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/shift-rota/pkg/core/model"
)

func TestCandidatePool_FiltersAbsentAndIneligible(t *testing.T) {
	day := mustDay(t, "2025-03-03")
	roster := []Person{
		person("A", model.EligibleBoth),
		person("B", model.EligibleAfternoonOnly),
		person("C", model.EligibleMorningOnly),
		person("D", model.EligibleBoth),
	}
	state := NewScheduleState(day, day, roster)
	source := everyoneAvailable("A", "B", "C")

	assert.Equal(t, []string{"A", "C"}, names(CandidatePool(state, source, day, model.ShiftMorning)))
	assert.Equal(t, []string{"A", "B"}, names(CandidatePool(state, source, day, model.ShiftAfternoon)))
}

func TestCandidatePool_ExcludesHolderOfOtherShift(t *testing.T) {
	day := mustDay(t, "2025-03-03")
	roster := []Person{person("A", model.EligibleBoth), person("B", model.EligibleBoth)}
	state := NewScheduleState(day, day, roster)
	require.NoError(t, state.Set(day, model.ShiftMorning, Assignment("A")))

	pool := CandidatePool(state, everyoneAvailable("A", "B"), day, model.ShiftAfternoon)
	assert.Equal(t, []string{"B"}, names(pool))
}

func TestCandidatePool_UncoveredOtherShiftExcludesNobody(t *testing.T) {
	day := mustDay(t, "2025-03-03")
	roster := []Person{person("A", model.EligibleBoth)}
	state := NewScheduleState(day, day, roster)
	require.NoError(t, state.Set(day, model.ShiftMorning, Uncovered))

	pool := CandidatePool(state, everyoneAvailable("A"), day, model.ShiftAfternoon)
	assert.Equal(t, []string{"A"}, names(pool))
}

func TestCandidatePool_NoDataForDay(t *testing.T) {
	day := mustDay(t, "2025-03-03")
	state := NewScheduleState(day, day, []Person{person("A", model.EligibleBoth)})
	source := AvailabilityFunc(func(model.Day) (map[string]bool, bool) { return nil, false })

	assert.Empty(t, CandidatePool(state, source, day, model.ShiftMorning))
}
