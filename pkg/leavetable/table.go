package leavetable

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-rota/pkg/core/model"
)

// ErrNoHeader is returned when the leave table has no usable header row
var ErrNoHeader = errors.New("leave table has no header row with person columns")

// weekdayHeaders are informational columns that hold no person
var weekdayHeaders = []string{"DIA DA SEMANA", "WEEKDAY"}

// dateLayouts are tried in order; day-first layouts follow the Portuguese convention
var dateLayouts = []string{
	model.DateLayout,
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01-02-06", // excelize rendering of the built-in short date format
}

// Table is a parsed per-day absence table.
// Rows are dates, columns are people, cells hold absence codes.
type Table struct {
	people []string
	days   map[model.Day]map[string]AbsenceCode
}

// Parse builds a Table from spreadsheet rows.
//
// The first row is the header: the first column holds dates, an optional
// weekday column is ignored, and every other non-blank header names a person.
// Rows whose date cannot be parsed are skipped with a warning; those days then
// have no data.
func Parse(rows [][]string, logger *zap.Logger) (*Table, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	header := rows[0]
	personCols := make(map[int]string)
	var people []string
	for i := 1; i < len(header); i++ {
		name := strings.TrimSpace(header[i])
		if name == "" || slices.Contains(weekdayHeaders, fold(name)) {
			continue
		}
		if slices.Contains(people, name) {
			logger.Warn("Duplicate person column in leave table, ignoring", zap.String("person", name), zap.Int("column", i+1))
			continue
		}
		personCols[i] = name
		people = append(people, name)
	}
	if len(people) == 0 {
		return nil, ErrNoHeader
	}

	table := &Table{
		people: people,
		days:   make(map[model.Day]map[string]AbsenceCode),
	}

	for r, row := range rows[1:] {
		rowNumber := r + 2
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		day, err := ParseDate(row[0])
		if err != nil {
			logger.Warn("Skipping leave table row with invalid date",
				zap.Int("row", rowNumber),
				zap.String("value", row[0]),
				zap.Error(err))
			continue
		}
		if _, exists := table.days[day]; exists {
			logger.Warn("Duplicate date in leave table, keeping first row",
				zap.Int("row", rowNumber),
				zap.String("date", day.String()))
			continue
		}

		codes := make(map[string]AbsenceCode, len(people))
		for col, name := range personCols {
			cell := ""
			if col < len(row) {
				cell = row[col]
			}
			codes[name] = ParseCode(cell)
		}
		table.days[day] = codes
	}

	logger.Debug("Parsed leave table", zap.Int("people", len(people)), zap.Int("days", len(table.days)))
	return table, nil
}

// ParseDate accepts ISO and day-first dates, or an Excel serial day number
func ParseDate(value string) (model.Day, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return model.NewDay(t), nil
		}
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return model.NewDay(t), nil
		}
	}

	return model.Day{}, fmt.Errorf("unrecognised date %q", value)
}

// AvailablePeople returns the people present on day.
// The second value is false when the table has no row for the day.
func (t *Table) AvailablePeople(day model.Day) (map[string]bool, bool) {
	codes, ok := t.days[day]
	if !ok {
		return nil, false
	}
	available := make(map[string]bool, len(codes))
	for name, code := range codes {
		if !code.IsAbsent() {
			available[name] = true
		}
	}
	return available, true
}

// Absence returns the absence code of a person on a day
func (t *Table) Absence(day model.Day, person string) AbsenceCode {
	return t.days[day][person]
}

// HasDay reports whether the table has a row for the day
func (t *Table) HasDay(day model.Day) bool {
	_, ok := t.days[day]
	return ok
}

// People returns the person columns in header order
func (t *Table) People() []string {
	return slices.Clone(t.people)
}

// Days returns every day with data, in order
func (t *Table) Days() []model.Day {
	days := make([]model.Day, 0, len(t.days))
	for d := range t.days {
		days = append(days, d)
	}
	slices.SortFunc(days, func(a, b model.Day) int {
		return a.Time().Compare(b.Time())
	})
	return days
}

// MissingDays returns the days in [start, end] without data
func (t *Table) MissingDays(start, end model.Day) []model.Day {
	var missing []model.Day
	for _, d := range model.DaysInRange(start, end) {
		if !t.HasDay(d) {
			missing = append(missing, d)
		}
	}
	return missing
}
