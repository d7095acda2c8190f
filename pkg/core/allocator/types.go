package allocator

import (
	"github.com/jakechorley/shift-rota/pkg/core/model"
)

// Uncovered marks a (day, shift) cell for which no eligible, available person was found
const Uncovered Assignment = ""

// Assignment is the value held by a schedule cell: a person's name, or Uncovered
type Assignment string

// IsUncovered reports whether the cell holds no person
func (a Assignment) IsUncovered() bool {
	return a == Uncovered
}

// Person returns the assigned person's name (empty for Uncovered)
func (a Assignment) Person() string {
	return string(a)
}

// Person is a member of the roster as seen by the engine
type Person struct {
	ID          string
	Name        string
	Active      bool
	Eligibility model.Eligibility

	// Quota is the target range, in percent of the run's days, that this person
	// should be scheduled for. Nil means no quota record (defaults apply).
	Quota *Quota
}

// Quota is a person's configured min/max percentage of days
type Quota struct {
	Min float64
	Max float64
}

// QuotaOrDefault returns the person's quota, falling back to the defaults
func (p Person) QuotaOrDefault() Quota {
	if p.Quota == nil {
		return Quota{Min: model.DefaultQuotaMin, Max: model.DefaultQuotaMax}
	}
	return *p.Quota
}

// FixedAssignment pins a person to a (day, shift) cell before the pass starts
type FixedAssignment struct {
	Day        model.Day
	Shift      model.Shift
	PersonName string
}

// AvailabilitySource resolves which people are not absent on a day.
// The boolean result is false when the source holds no data for the day;
// the engine then treats the day as having nobody available.
type AvailabilitySource interface {
	AvailablePeople(day model.Day) (map[string]bool, bool)
}

// AvailabilityFunc adapts a function to AvailabilitySource
type AvailabilityFunc func(day model.Day) (map[string]bool, bool)

func (f AvailabilityFunc) AvailablePeople(day model.Day) (map[string]bool, bool) {
	return f(day)
}

// cellKey identifies a single schedule cell
type cellKey struct {
	day   model.Day
	shift model.Shift
}

// DaySchedule is the finished assignment of both shifts of a day
type DaySchedule struct {
	Day       model.Day
	Morning   Assignment
	Afternoon Assignment

	// Fixed records which of the day's shifts came from a fixed assignment
	MorningFixed   bool
	AfternoonFixed bool
}

// Get returns the assignment for the given shift
func (ds DaySchedule) Get(shift model.Shift) Assignment {
	if shift == model.ShiftMorning {
		return ds.Morning
	}
	return ds.Afternoon
}

// Schedule is the ordered, per-day output of a run
type Schedule struct {
	Start model.Day
	End   model.Day
	Days  []DaySchedule
}

// TotalDays returns the number of days in the schedule's range
func (s *Schedule) TotalDays() int {
	return len(s.Days)
}

// UncoveredCells returns the (day, shift) pairs that hold no person, in order
func (s *Schedule) UncoveredCells() []FixedAssignment {
	var cells []FixedAssignment
	for _, ds := range s.Days {
		for _, shift := range model.Shifts {
			if ds.Get(shift).IsUncovered() {
				cells = append(cells, FixedAssignment{Day: ds.Day, Shift: shift})
			}
		}
	}
	return cells
}
