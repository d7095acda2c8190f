package allocator

import (
	"errors"
	"fmt"

	"github.com/jakechorley/shift-rota/pkg/core/model"
)

// ErrFixedCell is returned when the pass tries to overwrite a fixed cell
var ErrFixedCell = errors.New("cell holds a fixed assignment")

// ScheduleState is the mutable in-progress result of a single run.
// It is owned by one allocation pass and must not be shared or mutated concurrently.
type ScheduleState struct {
	// Start and End bound the requested range (inclusive)
	Start model.Day
	End   model.Day

	// Roster is the active roster in canonical order
	Roster []Person

	cells  map[cellKey]Assignment
	fixed  map[cellKey]bool
	counts map[string]int
}

// NewScheduleState creates an empty state for the given range and roster
func NewScheduleState(start, end model.Day, roster []Person) *ScheduleState {
	return &ScheduleState{
		Start:  start,
		End:    end,
		Roster: roster,
		cells:  make(map[cellKey]Assignment),
		fixed:  make(map[cellKey]bool),
		counts: make(map[string]int),
	}
}

// TotalDays returns the number of days in the requested range
func (s *ScheduleState) TotalDays() int {
	return len(model.DaysInRange(s.Start, s.End))
}

// Seed places fixed assignments before the main pass.
// Each fixed entry increments its person's running count. Entries outside the
// range are ignored; a later entry for an already fixed cell is ignored too
// (uniqueness is the store's job).
func (s *ScheduleState) Seed(fixed []FixedAssignment) {
	for _, fa := range fixed {
		if fa.Day.Before(s.Start) || fa.Day.After(s.End) {
			continue
		}
		key := cellKey{day: fa.Day, shift: fa.Shift}
		if s.fixed[key] {
			continue
		}
		s.cells[key] = Assignment(fa.PersonName)
		s.fixed[key] = true
		s.counts[fa.PersonName]++
	}
}

// Get returns the assignment at (day, shift) and whether the cell has been set
func (s *ScheduleState) Get(day model.Day, shift model.Shift) (Assignment, bool) {
	a, ok := s.cells[cellKey{day: day, shift: shift}]
	return a, ok
}

// IsFixed reports whether (day, shift) holds a fixed assignment
func (s *ScheduleState) IsFixed(day model.Day, shift model.Shift) bool {
	return s.fixed[cellKey{day: day, shift: shift}]
}

// Set commits an assignment to (day, shift) and increments the person's count.
// Fixed cells cannot be overwritten.
func (s *ScheduleState) Set(day model.Day, shift model.Shift, a Assignment) error {
	key := cellKey{day: day, shift: shift}
	if s.fixed[key] {
		return fmt.Errorf("cannot set %s %s: %w", day, shift, ErrFixedCell)
	}
	s.cells[key] = a
	if !a.IsUncovered() {
		s.counts[a.Person()]++
	}
	return nil
}

// CountFor returns the number of shifts assigned to the person so far in this run
func (s *ScheduleState) CountFor(person string) int {
	return s.counts[person]
}

// HoldsAny reports whether the person holds either shift of the day
func (s *ScheduleState) HoldsAny(person string, day model.Day) bool {
	return len(s.AssignmentsOnDay(person, day)) > 0
}

// Holds reports whether the person holds the given shift of the day
func (s *ScheduleState) Holds(person string, day model.Day, shift model.Shift) bool {
	a, ok := s.Get(day, shift)
	return ok && !a.IsUncovered() && a.Person() == person
}

// AssignmentsOnDay returns the shifts the person holds on the day (0, 1 or 2)
func (s *ScheduleState) AssignmentsOnDay(person string, day model.Day) []model.Shift {
	var shifts []model.Shift
	for _, shift := range model.Shifts {
		if s.Holds(person, day, shift) {
			shifts = append(shifts, shift)
		}
	}
	return shifts
}

// Schedule builds the ordered output. Unset cells are reported as Uncovered.
func (s *ScheduleState) Schedule() *Schedule {
	days := model.DaysInRange(s.Start, s.End)
	schedule := &Schedule{
		Start: s.Start,
		End:   s.End,
		Days:  make([]DaySchedule, 0, len(days)),
	}
	for _, day := range days {
		morning, _ := s.Get(day, model.ShiftMorning)
		afternoon, _ := s.Get(day, model.ShiftAfternoon)
		schedule.Days = append(schedule.Days, DaySchedule{
			Day:            day,
			Morning:        morning,
			Afternoon:      afternoon,
			MorningFixed:   s.IsFixed(day, model.ShiftMorning),
			AfternoonFixed: s.IsFixed(day, model.ShiftAfternoon),
		})
	}
	return schedule
}
