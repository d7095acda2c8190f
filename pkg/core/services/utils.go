package services

import (
	"fmt"

	"github.com/jakechorley/shift-rota/pkg/core/allocator"
	"github.com/jakechorley/shift-rota/pkg/core/model"
	"github.com/jakechorley/shift-rota/pkg/db"
)

// toEnginePerson converts a stored person to the engine's roster entry
func toEnginePerson(p db.Person) (allocator.Person, error) {
	eligibility, err := model.ParseEligibility(p.Eligibility)
	if err != nil {
		return allocator.Person{}, fmt.Errorf("person %q: %w", p.Name, err)
	}

	return allocator.Person{
		ID:          p.ID,
		Name:        p.Name,
		Active:      p.Active,
		Eligibility: eligibility,
		Quota:       &allocator.Quota{Min: p.QuotaMin, Max: p.QuotaMax},
	}, nil
}

// toEngineRoster converts stored people, keeping their order
func toEngineRoster(people []db.Person) ([]allocator.Person, error) {
	roster := make([]allocator.Person, 0, len(people))
	for _, p := range people {
		person, err := toEnginePerson(p)
		if err != nil {
			return nil, err
		}
		roster = append(roster, person)
	}
	return roster, nil
}

// toEngineFixed converts stored fixed assignments
func toEngineFixed(stored []db.FixedAssignment) ([]allocator.FixedAssignment, error) {
	fixed := make([]allocator.FixedAssignment, 0, len(stored))
	for _, fa := range stored {
		day, err := model.ParseDay(fa.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date on fixed assignment %s: %w", fa.ID, err)
		}
		shift, err := model.ParseShift(fa.Shift)
		if err != nil {
			return nil, fmt.Errorf("invalid shift on fixed assignment %s: %w", fa.ID, err)
		}
		fixed = append(fixed, allocator.FixedAssignment{
			Day:        day,
			Shift:      shift,
			PersonName: fa.PersonName,
		})
	}
	return fixed, nil
}

// scheduleEntries flattens a schedule into rows for a persisted run
func scheduleEntries(runID string, schedule *allocator.Schedule, newID func() string) []db.ScheduleEntry {
	entries := make([]db.ScheduleEntry, 0, len(schedule.Days)*len(model.Shifts))
	for _, ds := range schedule.Days {
		for _, shift := range model.Shifts {
			fixed := ds.MorningFixed
			if shift == model.ShiftAfternoon {
				fixed = ds.AfternoonFixed
			}
			entries = append(entries, db.ScheduleEntry{
				ID:         newID(),
				RunID:      runID,
				Date:       ds.Day.String(),
				Shift:      string(shift),
				PersonName: ds.Get(shift).Person(),
				Fixed:      fixed,
			})
		}
	}
	return entries
}

// scheduleFromEntries rebuilds a schedule from a persisted run.
// Days without entries are left Uncovered.
func scheduleFromEntries(run *db.ScheduleRun, entries []db.ScheduleEntry) (*allocator.Schedule, error) {
	start, err := model.ParseDay(run.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid run start: %w", err)
	}
	end, err := model.ParseDay(run.End)
	if err != nil {
		return nil, fmt.Errorf("invalid run end: %w", err)
	}

	days := model.DaysInRange(start, end)
	index := make(map[model.Day]int, len(days))
	schedule := &allocator.Schedule{Start: start, End: end, Days: make([]allocator.DaySchedule, len(days))}
	for i, day := range days {
		index[day] = i
		schedule.Days[i].Day = day
	}

	for _, e := range entries {
		day, err := model.ParseDay(e.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid entry date: %w", err)
		}
		i, ok := index[day]
		if !ok {
			continue
		}
		ds := &schedule.Days[i]
		switch model.Shift(e.Shift) {
		case model.ShiftMorning:
			ds.Morning = allocator.Assignment(e.PersonName)
			ds.MorningFixed = e.Fixed
		case model.ShiftAfternoon:
			ds.Afternoon = allocator.Assignment(e.PersonName)
			ds.AfternoonFixed = e.Fixed
		default:
			return nil, fmt.Errorf("invalid entry shift %q", e.Shift)
		}
	}
	return schedule, nil
}
