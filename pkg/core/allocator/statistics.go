package allocator

import (
	"slices"
	"strings"

	"github.com/jakechorley/shift-rota/pkg/core/model"
)

// TotalRowName labels the aggregate statistics row
const TotalRowName = "TOTAL"

// StatisticsRow holds one person's shift counts and their share of each column total
type StatisticsRow struct {
	Person string

	MorningCount   int
	MorningPct     float64
	AfternoonCount int
	AfternoonPct   float64
	TotalCount     int
	TotalPct       float64
}

// Statistics is the per-person summary of a finished schedule
type Statistics struct {
	Rows  []StatisticsRow
	Total StatisticsRow
}

// Summarize counts the Morning and Afternoon assignments of every person in the
// schedule. Uncovered cells are excluded. Rows are ordered by person name.
func Summarize(schedule *Schedule) *Statistics {
	rowsByPerson := make(map[string]*StatisticsRow)
	total := StatisticsRow{Person: TotalRowName}

	for _, ds := range schedule.Days {
		for _, shift := range model.Shifts {
			a := ds.Get(shift)
			if a.IsUncovered() {
				continue
			}

			row, ok := rowsByPerson[a.Person()]
			if !ok {
				row = &StatisticsRow{Person: a.Person()}
				rowsByPerson[a.Person()] = row
			}

			if shift == model.ShiftMorning {
				row.MorningCount++
				total.MorningCount++
			} else {
				row.AfternoonCount++
				total.AfternoonCount++
			}
			row.TotalCount++
			total.TotalCount++
		}
	}

	rows := make([]StatisticsRow, 0, len(rowsByPerson))
	for _, row := range rowsByPerson {
		row.MorningPct = percentage(row.MorningCount, total.MorningCount)
		row.AfternoonPct = percentage(row.AfternoonCount, total.AfternoonCount)
		row.TotalPct = percentage(row.TotalCount, total.TotalCount)
		rows = append(rows, *row)
	}
	slices.SortFunc(rows, func(a, b StatisticsRow) int {
		return strings.Compare(a.Person, b.Person)
	})

	total.MorningPct = percentage(total.MorningCount, total.MorningCount)
	total.AfternoonPct = percentage(total.AfternoonCount, total.AfternoonCount)
	total.TotalPct = percentage(total.TotalCount, total.TotalCount)

	return &Statistics{Rows: rows, Total: total}
}

// Row returns the statistics row for a person
func (s *Statistics) Row(person string) (StatisticsRow, bool) {
	for _, row := range s.Rows {
		if row.Person == person {
			return row, true
		}
	}
	return StatisticsRow{}, false
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
