package criteria

import (
	roster "github.com/jakechorley/shift-rota/pkg/core/allocator"
	"github.com/jakechorley/shift-rota/pkg/core/model"
)

// ShiftTransitionCriterion forbids a Morning shift straight after an Afternoon shift
type ShiftTransitionCriterion struct{}

func NewShiftTransitionCriterion() *ShiftTransitionCriterion {
	return &ShiftTransitionCriterion{}
}

func (c *ShiftTransitionCriterion) Name() string {
	return "ShiftTransition"
}

func (c *ShiftTransitionCriterion) IsShiftValid(state *roster.ScheduleState, person roster.Person, day model.Day, shift model.Shift) bool {
	if shift != model.ShiftMorning {
		return true
	}
	return !state.Holds(person.Name, day.AddDays(-1), model.ShiftAfternoon)
}

func (c *ShiftTransitionCriterion) Describe(state *roster.ScheduleState, person roster.Person, day model.Day, shift model.Shift) string {
	return "worked the Afternoon shift on " + day.AddDays(-1).String()
}
