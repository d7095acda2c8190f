package allocator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakechorley/shift-rota/pkg/core/model"
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

// everyoneAvailable reports every name as present on every day
func everyoneAvailable(names ...string) AvailabilitySource {
	return AvailabilityFunc(func(day model.Day) (map[string]bool, bool) {
		available := make(map[string]bool, len(names))
		for _, n := range names {
			available[n] = true
		}
		return available, true
	})
}

// vetoCriterion rejects the listed people everywhere
type vetoCriterion struct {
	name   string
	vetoed map[string]bool
}

func newVetoCriterion(name string, people ...string) *vetoCriterion {
	c := &vetoCriterion{name: name, vetoed: make(map[string]bool)}
	for _, p := range people {
		c.vetoed[p] = true
	}
	return c
}

func (c *vetoCriterion) Name() string { return c.name }

func (c *vetoCriterion) IsShiftValid(state *ScheduleState, person Person, day model.Day, shift model.Shift) bool {
	return !c.vetoed[person.Name]
}

func (c *vetoCriterion) Describe(state *ScheduleState, person Person, day model.Day, shift model.Shift) string {
	return "vetoed"
}
