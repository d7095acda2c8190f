package e2e

import (
	"testing"

	"github.com/stretchr/testify/require"

	rotageneration "github.com/jakechorley/shift-rota/pkg/core/allocator"
	"github.com/jakechorley/shift-rota/pkg/core/model"
)

// Type aliases for test readability
type (
	Person           = rotageneration.Person
	Quota            = rotageneration.Quota
	FixedAssignment  = rotageneration.FixedAssignment
	Assignment       = rotageneration.Assignment
	AllocationConfig = rotageneration.AllocationConfig
	AvailabilityFunc = rotageneration.AvailabilityFunc
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

func person(name string, eligibility model.Eligibility) Person {
	return Person{ID: name, Name: name, Active: true, Eligibility: eligibility}
}

// absences maps a day to the people absent on it; everyone else in the roster is present
func availabilityFrom(roster []Person, absences map[model.Day][]string) AvailabilityFunc {
	return func(day model.Day) (map[string]bool, bool) {
		available := make(map[string]bool, len(roster))
		for _, p := range roster {
			available[p.Name] = true
		}
		for _, name := range absences[day] {
			delete(available, name)
		}
		return available, true
	}
}
