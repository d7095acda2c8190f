package sheetsclient

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/shift-rota/pkg/core/allocator"
	"github.com/jakechorley/shift-rota/pkg/core/model"
	"github.com/jakechorley/shift-rota/pkg/report"
)

// PublishSchedule writes a schedule and its statistics to a tab named after
// the date range, e.g. "06/01/2025 - 12/01/2025".
// A missing tab is created; an existing one is cleared and overwritten, so
// publishing the same range twice replaces the earlier version.
func (c *Client) PublishSchedule(
	spreadsheetID string,
	schedule *allocator.Schedule,
	stats *allocator.Statistics,
) (string, error) {
	tabTitle := generateTabTitle(schedule.Start, schedule.End)

	exists, err := c.HasSheet(spreadsheetID, tabTitle)
	if err != nil {
		return "", err
	}

	if exists {
		if err := c.ClearValues(spreadsheetID, quoteRange(tabTitle)); err != nil {
			return "", fmt.Errorf("failed to clear existing tab: %w", err)
		}
	} else {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return "", fmt.Errorf("failed to create tab: %w", err)
		}
	}

	if err := c.UpdateValues(spreadsheetID, quoteRange(tabTitle)+"!A1", publishedRows(schedule, stats)); err != nil {
		return "", fmt.Errorf("failed to write schedule: %w", err)
	}

	c.logger.Info("Published schedule",
		zap.String("tab", tabTitle),
		zap.Bool("replaced", exists),
		zap.Int("days", schedule.TotalDays()))

	return tabTitle, nil
}

// generateTabTitle creates a tab title in the format "06/01/2025 - 12/01/2025"
func generateTabTitle(start, end model.Day) string {
	return fmt.Sprintf("%s - %s", report.FormatDate(start), report.FormatDate(end))
}

// publishedRows lays out the schedule table, one blank row, then the statistics table
func publishedRows(schedule *allocator.Schedule, stats *allocator.Statistics) [][]interface{} {
	rows := report.ScheduleRows(schedule)
	rows = append(rows, []interface{}{})
	return append(rows, report.StatisticsRows(stats)...)
}

// quoteRange wraps a tab title in single quotes so titles with spaces or
// slashes are valid A1 references
func quoteRange(tabTitle string) string {
	return fmt.Sprintf("'%s'", tabTitle)
}
