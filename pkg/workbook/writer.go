package workbook

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/jakechorley/shift-rota/pkg/core/allocator"
	"github.com/jakechorley/shift-rota/pkg/report"
)

const maxColumnWidth = 50

// WriteSchedule saves the schedule and its statistics to an .xlsx file with
// one sheet each
func WriteSchedule(path string, schedule *allocator.Schedule, stats *allocator.Statistics) error {
	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with a default sheet; reuse it for the schedule
	if err := f.SetSheetName(f.GetSheetName(0), report.ScheduleSheet); err != nil {
		return fmt.Errorf("failed to rename default sheet: %w", err)
	}
	if _, err := f.NewSheet(report.StatisticsSheet); err != nil {
		return fmt.Errorf("failed to create statistics sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeSheet(f, report.ScheduleSheet, report.ScheduleRows(schedule), headerStyle); err != nil {
		return err
	}
	if err := writeSheet(f, report.StatisticsSheet, report.StatisticsRows(stats), headerStyle); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	widths := make(map[int]int)
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", r+1, sheet, err)
		}
		for c, v := range row {
			if n := utf8.RuneCountInString(fmt.Sprint(v)); n > widths[c] {
				widths[c] = n
			}
		}
	}

	if len(rows) > 0 {
		last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("failed to style header of %s: %w", sheet, err)
		}
	}

	for c, width := range widths {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, float64(min(width+2, maxColumnWidth))); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}
	return nil
}
