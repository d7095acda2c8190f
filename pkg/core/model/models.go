package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical date format used in storage and on the command line
const DateLayout = "2006-01-02"

// Shift is one of the two daily work periods
type Shift string

const (
	ShiftMorning   Shift = "Morning"
	ShiftAfternoon Shift = "Afternoon"
)

// Shifts lists the shifts of a day in processing order
var Shifts = []Shift{ShiftMorning, ShiftAfternoon}

func (s Shift) IsValid() bool {
	return s == ShiftMorning || s == ShiftAfternoon
}

// Other returns the opposite shift of the same day
func (s Shift) Other() Shift {
	if s == ShiftMorning {
		return ShiftAfternoon
	}
	return ShiftMorning
}

// ParseShift accepts the English names and the labels used by the legacy spreadsheets
func ParseShift(value string) (Shift, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "morning", "m", "manhã", "manha":
		return ShiftMorning, nil
	case "afternoon", "a", "tarde":
		return ShiftAfternoon, nil
	}
	return "", fmt.Errorf("invalid shift %q (expected Morning or Afternoon)", value)
}

// Eligibility describes which shifts a person may work
type Eligibility string

const (
	EligibleMorningOnly   Eligibility = "Morning"
	EligibleAfternoonOnly Eligibility = "Afternoon"
	EligibleBoth          Eligibility = "Both"
)

func (e Eligibility) IsValid() bool {
	return e == EligibleMorningOnly || e == EligibleAfternoonOnly || e == EligibleBoth
}

// Allows reports whether the eligibility includes the given shift
func (e Eligibility) Allows(shift Shift) bool {
	switch e {
	case EligibleBoth:
		return true
	case EligibleMorningOnly:
		return shift == ShiftMorning
	case EligibleAfternoonOnly:
		return shift == ShiftAfternoon
	}
	return false
}

// ParseEligibility accepts the English names and the labels used by the legacy spreadsheets
func ParseEligibility(value string) (Eligibility, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "morning", "manhã", "manha":
		return EligibleMorningOnly, nil
	case "afternoon", "tarde":
		return EligibleAfternoonOnly, nil
	case "both", "ambos", "":
		return EligibleBoth, nil
	}
	return "", fmt.Errorf("invalid shift eligibility %q (expected Morning, Afternoon or Both)", value)
}

// Default quota applied when a person has no quota record
const (
	DefaultQuotaMin = 10.0
	DefaultQuotaMax = 20.0
)

// Day is a calendar date without time of day or location.
// It is comparable and safe to use as a map key.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDay returns the calendar day of t in its own location
func NewDay(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// ParseDay parses a day in DateLayout
func ParseDay(value string) (Day, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", value, err)
	}
	return NewDay(t), nil
}

// Time returns midnight UTC of the day
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the day n days after d (n may be negative)
func (d Day) AddDays(n int) Day {
	return NewDay(d.Time().AddDate(0, 0, n))
}

func (d Day) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// WeekStart returns the Monday of the week containing d
func (d Day) WeekStart() Day {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

func (d Day) Before(other Day) bool {
	return d.Time().Before(other.Time())
}

func (d Day) After(other Day) bool {
	return d.Time().After(other.Time())
}

func (d Day) IsZero() bool {
	return d == Day{}
}

func (d Day) String() string {
	return d.Time().Format(DateLayout)
}

// DaysInRange returns every day from start to end inclusive.
// Returns nil when end is before start.
func DaysInRange(start, end Day) []Day {
	if end.Before(start) {
		return nil
	}
	var days []Day
	for d := start; !d.After(end); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}
