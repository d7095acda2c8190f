package allocator

import (
	"fmt"

	"github.com/jakechorley/shift-rota/pkg/core/model"
)

// ValidationWarning records a rule that was relaxed by the soft fallback
type ValidationWarning struct {
	Day           model.Day
	Shift         model.Shift
	Person        string
	CriterionName string
	Description   string
}

// Criterion defines the interface for fatigue/rotation rules
// Criteria act as vetoes: if ANY criterion rejects a person, the person is only
// considered when nobody else passes every criterion (soft fallback).
type Criterion interface {
	// Name returns a human-readable identifier for this criterion
	Name() string

	// IsShiftValid determines if the person may be placed on (day, shift)
	// given the state committed so far. Implementations must not look at days
	// after the target day.
	IsShiftValid(state *ScheduleState, person Person, day model.Day, shift model.Shift) bool

	// Describe explains why the person fails this criterion on (day, shift)
	Describe(state *ScheduleState, person Person, day model.Day, shift model.Shift) string
}

// IsShiftValidForPerson checks all criteria for the person on (day, shift)
func IsShiftValidForPerson(state *ScheduleState, person Person, day model.Day, shift model.Shift, criteria []Criterion) bool {
	for _, criterion := range criteria {
		if !criterion.IsShiftValid(state, person, day, shift) {
			return false
		}
	}
	return true
}

// relaxedCriteria builds a warning for each criterion the person fails on (day, shift)
func relaxedCriteria(state *ScheduleState, person Person, day model.Day, shift model.Shift, criteria []Criterion) []ValidationWarning {
	var warnings []ValidationWarning
	for _, criterion := range criteria {
		if criterion.IsShiftValid(state, person, day, shift) {
			continue
		}
		warnings = append(warnings, ValidationWarning{
			Day:           day,
			Shift:         shift,
			Person:        person.Name,
			CriterionName: criterion.Name(),
			Description:   criterion.Describe(state, person, day, shift),
		})
	}
	return warnings
}

func (w ValidationWarning) String() string {
	return fmt.Sprintf("%s %s %s [%s]: %s", w.Day, w.Shift, w.Person, w.CriterionName, w.Description)
}
