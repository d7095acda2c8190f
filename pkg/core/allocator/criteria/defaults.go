package criteria

import (
	roster "github.com/jakechorley/shift-rota/pkg/core/allocator"
)

const (
	// DefaultMaxConsecutiveDays is the number of days in a row a person may work
	DefaultMaxConsecutiveDays = 2

	// DefaultMaxShiftsPerWeek is the number of shifts a person may hold in a Monday-Sunday week
	DefaultMaxShiftsPerWeek = 3
)

// Rules selects and parameterizes the fatigue/rotation criteria
type Rules struct {
	MaxConsecutiveDays         int
	MaxShiftsPerWeek           int
	ForbidAfternoonThenMorning bool
}

// DefaultRules returns the standard rule set
func DefaultRules() Rules {
	return Rules{
		MaxConsecutiveDays:         DefaultMaxConsecutiveDays,
		MaxShiftsPerWeek:           DefaultMaxShiftsPerWeek,
		ForbidAfternoonThenMorning: true,
	}
}

// Build returns the criteria for the rules. A non-positive limit disables its criterion.
func (r Rules) Build() []roster.Criterion {
	var criteria []roster.Criterion
	if r.MaxConsecutiveDays > 0 {
		criteria = append(criteria, NewConsecutiveDaysCriterion(r.MaxConsecutiveDays))
	}
	if r.ForbidAfternoonThenMorning {
		criteria = append(criteria, NewShiftTransitionCriterion())
	}
	if r.MaxShiftsPerWeek > 0 {
		criteria = append(criteria, NewWeeklyCapCriterion(r.MaxShiftsPerWeek))
	}
	return criteria
}

// Default returns the criteria for DefaultRules
func Default() []roster.Criterion {
	return DefaultRules().Build()
}
