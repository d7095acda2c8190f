package criteria

import (
	"testing"

	"github.com/stretchr/testify/require"

	roster "github.com/jakechorley/shift-rota/pkg/core/allocator"
	"github.com/jakechorley/shift-rota/pkg/core/model"
)

// Type aliases for test readability - shared across all criterion tests
type (
	ScheduleState   = roster.ScheduleState
	Person          = roster.Person
	Assignment      = roster.Assignment
	FixedAssignment = roster.FixedAssignment
)

const (
	Morning   = model.ShiftMorning
	Afternoon = model.ShiftAfternoon
)

func mustDay(t *testing.T, value string) model.Day {
	t.Helper()
	d, err := model.ParseDay(value)
	require.NoError(t, err)
	return d
}

// newState builds a state over [start, end] for people named A and B
func newState(t *testing.T, start, end string) *ScheduleState {
	t.Helper()
	people := []Person{
		{Name: "A", Active: true, Eligibility: model.EligibleBoth},
		{Name: "B", Active: true, Eligibility: model.EligibleBoth},
	}
	return roster.NewScheduleState(mustDay(t, start), mustDay(t, end), people)
}

func set(t *testing.T, state *ScheduleState, day string, shift model.Shift, person string) {
	t.Helper()
	require.NoError(t, state.Set(mustDay(t, day), shift, Assignment(person)))
}
