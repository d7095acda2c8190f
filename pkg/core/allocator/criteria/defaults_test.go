package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func criterionNames(rules Rules) []string {
	var names []string
	for _, c := range rules.Build() {
		names = append(names, c.Name())
	}
	return names
}

func TestDefault_ContainsAllRules(t *testing.T) {
	criteria := Default()
	require.Len(t, criteria, 3)
	assert.Equal(t, []string{"ConsecutiveDays", "ShiftTransition", "WeeklyCap"}, criterionNames(DefaultRules()))
}

func TestRules_Build_DisablesRules(t *testing.T) {
	rules := Rules{MaxConsecutiveDays: 0, MaxShiftsPerWeek: 5, ForbidAfternoonThenMorning: false}
	assert.Equal(t, []string{"WeeklyCap"}, criterionNames(rules))

	assert.Empty(t, Rules{}.Build())
}
