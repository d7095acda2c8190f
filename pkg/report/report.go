// Package report renders engine output as spreadsheet-ready rows in the
// Portuguese layout used by the exported workbook and published sheets.
package report

import (
	"fmt"
	"time"

	"github.com/jakechorley/shift-rota/pkg/core/allocator"
	"github.com/jakechorley/shift-rota/pkg/core/model"
)

const (
	ScheduleSheet   = "Escala"
	StatisticsSheet = "Estatísticas"

	// UncoveredLabel is written in place of a name for uncovered cells
	UncoveredLabel = "SEM COBERTURA"

	// DisplayDateLayout is dd/mm/yyyy
	DisplayDateLayout = "02/01/2006"
)

var (
	ScheduleHeader   = []any{"Data", "Dia da Semana", "Manhã", "Tarde"}
	StatisticsHeader = []any{"Pessoa", "Manhãs", "% Manhãs", "Tardes", "% Tardes", "Total", "% Total"}
)

var weekdaysPT = map[time.Weekday]string{
	time.Monday:    "Segunda",
	time.Tuesday:   "Terça",
	time.Wednesday: "Quarta",
	time.Thursday:  "Quinta",
	time.Friday:    "Sexta",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// Weekday returns the Portuguese weekday name of the day
func Weekday(day model.Day) string {
	return weekdaysPT[day.Weekday()]
}

func FormatDate(day model.Day) string {
	return day.Time().Format(DisplayDateLayout)
}

// FormatPercent renders a percentage with one decimal, e.g. "33.3%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// Cell renders an assignment, using UncoveredLabel for empty cells
func Cell(a allocator.Assignment) string {
	if a.IsUncovered() {
		return UncoveredLabel
	}
	return a.Person()
}

// ScheduleRows returns the schedule as rows, header first
func ScheduleRows(schedule *allocator.Schedule) [][]any {
	rows := make([][]any, 0, len(schedule.Days)+1)
	rows = append(rows, ScheduleHeader)
	for _, ds := range schedule.Days {
		rows = append(rows, []any{
			FormatDate(ds.Day),
			Weekday(ds.Day),
			Cell(ds.Morning),
			Cell(ds.Afternoon),
		})
	}
	return rows
}

// StatisticsRows returns the statistics as rows, header first and TOTAL last
func StatisticsRows(stats *allocator.Statistics) [][]any {
	rows := make([][]any, 0, len(stats.Rows)+2)
	rows = append(rows, StatisticsHeader)
	for _, row := range stats.Rows {
		rows = append(rows, statisticsRow(row))
	}
	return append(rows, statisticsRow(stats.Total))
}

func statisticsRow(row allocator.StatisticsRow) []any {
	return []any{
		row.Person,
		row.MorningCount,
		FormatPercent(row.MorningPct),
		row.AfternoonCount,
		FormatPercent(row.AfternoonPct),
		row.TotalCount,
		FormatPercent(row.TotalPct),
	}
}

// Strings converts rows to text, for terminals and text-only targets
func Strings(rows [][]any) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := make([]string, 0, len(row))
		for _, v := range row {
			line = append(line, fmt.Sprint(v))
		}
		out = append(out, line)
	}
	return out
}
