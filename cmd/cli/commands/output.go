package commands

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jakechorley/shift-rota/pkg/core/allocator"
	"github.com/jakechorley/shift-rota/pkg/report"
)

// printTable prints rows as left-aligned columns, header first
func printTable(rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, 0)
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	for r, row := range rows {
		var line strings.Builder
		line.WriteString("  ")
		for i, cell := range row {
			line.WriteString(cell)
			if i < len(row)-1 {
				line.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)+2))
			}
		}
		fmt.Println(line.String())

		if r == 0 {
			total := 0
			for _, w := range widths {
				total += w + 2
			}
			fmt.Println("  " + strings.Repeat("-", total-2))
		}
	}
}

// printSchedule prints the schedule and statistics tables
func printSchedule(schedule *allocator.Schedule, stats *allocator.Statistics) {
	fmt.Printf("\n%s (%s - %s)\n\n", report.ScheduleSheet, report.FormatDate(schedule.Start), report.FormatDate(schedule.End))
	printTable(report.Strings(report.ScheduleRows(schedule)))

	fmt.Printf("\n%s\n\n", report.StatisticsSheet)
	printTable(report.Strings(report.StatisticsRows(stats)))
	fmt.Println()
}
