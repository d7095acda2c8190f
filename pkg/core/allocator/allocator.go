package allocator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/shift-rota/pkg/core/model"
)

var (
	// ErrInvalidRange is returned when the start date is after the end date
	ErrInvalidRange = errors.New("invalid date range")

	// ErrEmptyRoster is returned when there is nobody active to schedule
	ErrEmptyRoster = errors.New("roster has no active people")
)

// AllocationConfig contains everything a single run needs
type AllocationConfig struct {
	// Start and End bound the requested range (inclusive)
	Start model.Day
	End   model.Day

	// Roster in canonical order; inactive people are ignored
	Roster []Person

	// Fixed assignments are placed before the pass and never overwritten
	Fixed []FixedAssignment

	// Availability resolves who is not absent on each day
	Availability AvailabilitySource

	// Criteria are the fatigue/rotation rules, applied as soft vetoes
	Criteria []Criterion

	// Logger is optional
	Logger *zap.Logger
}

// AllocationOutcome represents the result of a run
type AllocationOutcome struct {
	// Schedule holds exactly one assignment per (day, shift) in the range
	Schedule *Schedule

	// Counts is the final number of shifts per person (fixed included)
	Counts map[string]int

	// Statistics summarizes the schedule per person
	Statistics *Statistics

	// ValidationWarnings lists the rules relaxed by the soft fallback, in pass order
	ValidationWarnings []ValidationWarning

	// UncoveredCells lists the cells nobody could take, in pass order
	UncoveredCells []FixedAssignment

	// Success is true when every cell is covered without relaxing any rule
	Success bool
}

// Allocate runs a single forward pass over the range.
//
// The pass is strictly chronological: fixed assignments are seeded first, then
// each day is processed Morning before Afternoon. The context is checked between
// days; on cancellation the partial state is discarded and only the error is
// returned.
func Allocate(ctx context.Context, config AllocationConfig) (*AllocationOutcome, error) {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if config.End.Before(config.Start) {
		return nil, fmt.Errorf("%w: start %s is after end %s", ErrInvalidRange, config.Start, config.End)
	}

	roster := activePeople(config.Roster)
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}

	if config.Availability == nil {
		return nil, errors.New("availability source is required")
	}

	state := NewScheduleState(config.Start, config.End, roster)
	state.Seed(config.Fixed)

	outcome := &AllocationOutcome{
		ValidationWarnings: []ValidationWarning{},
		UncoveredCells:     []FixedAssignment{},
	}

	for _, day := range model.DaysInRange(config.Start, config.End) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("allocation cancelled at %s: %w", day, err)
		}

		for _, shift := range model.Shifts {
			if state.IsFixed(day, shift) {
				continue
			}

			warnings, err := allocateCell(state, config, day, shift)
			if err != nil {
				return nil, err
			}

			if a, _ := state.Get(day, shift); a.IsUncovered() {
				logger.Warn("No available person for shift",
					zap.String("date", day.String()),
					zap.String("shift", string(shift)))
				outcome.UncoveredCells = append(outcome.UncoveredCells, FixedAssignment{Day: day, Shift: shift})
				continue
			}

			for _, w := range warnings {
				logger.Debug("Rule relaxed to cover shift",
					zap.String("date", day.String()),
					zap.String("shift", string(shift)),
					zap.String("person", w.Person),
					zap.String("criterion", w.CriterionName))
			}
			outcome.ValidationWarnings = append(outcome.ValidationWarnings, warnings...)
		}
	}

	outcome.Schedule = state.Schedule()
	outcome.Counts = make(map[string]int, len(state.counts))
	for name, count := range state.counts {
		outcome.Counts[name] = count
	}
	outcome.Statistics = Summarize(outcome.Schedule)
	outcome.Success = len(outcome.ValidationWarnings) == 0 && len(outcome.UncoveredCells) == 0

	logger.Debug("Allocation complete",
		zap.Int("days", state.TotalDays()),
		zap.Int("uncovered", len(outcome.UncoveredCells)),
		zap.Int("relaxed", len(outcome.ValidationWarnings)))

	return outcome, nil
}

// allocateCell fills one non-fixed cell. Returns the warnings for rules that
// had to be relaxed to place the chosen person.
func allocateCell(state *ScheduleState, config AllocationConfig, day model.Day, shift model.Shift) ([]ValidationWarning, error) {
	pool := CandidatePool(state, config.Availability, day, shift)
	if len(pool) == 0 {
		return nil, state.Set(day, shift, Uncovered)
	}

	// Strict phase: only people passing every criterion
	filtered := make([]Person, 0, len(pool))
	for _, person := range pool {
		if IsShiftValidForPerson(state, person, day, shift, config.Criteria) {
			filtered = append(filtered, person)
		}
	}

	// Fallback phase: coverage wins over rest/balance rules
	candidates := filtered
	relaxed := false
	if len(candidates) == 0 {
		candidates = pool
		relaxed = true
	}

	chosen := RankCandidates(state, candidates)[0]

	var warnings []ValidationWarning
	if relaxed {
		warnings = relaxedCriteria(state, chosen, day, shift, config.Criteria)
	}

	if err := state.Set(day, shift, Assignment(chosen.Name)); err != nil {
		return nil, err
	}
	return warnings, nil
}

func activePeople(roster []Person) []Person {
	active := make([]Person, 0, len(roster))
	for _, p := range roster {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}
