package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/shift-rota/internal/config"
	"github.com/jakechorley/shift-rota/pkg/core/allocator"
	"github.com/jakechorley/shift-rota/pkg/workbook"
)

// SchedulePublisher publishes a schedule to Google Sheets
type SchedulePublisher interface {
	PublishSchedule(spreadsheetID string, schedule *allocator.Schedule, stats *allocator.Statistics) (string, error)
}

// ExportSchedule writes the schedule and statistics sheets to an .xlsx file
func ExportSchedule(schedule *allocator.Schedule, stats *allocator.Statistics, path string, logger *zap.Logger) error {
	if err := workbook.WriteSchedule(path, schedule, stats); err != nil {
		return fmt.Errorf("failed to export schedule: %w", err)
	}

	logger.Info("Schedule exported", zap.String("path", path))
	return nil
}

// PublishSchedule publishes the schedule to the configured spreadsheet and returns the tab title
func PublishSchedule(
	publisher SchedulePublisher,
	cfg *config.Config,
	schedule *allocator.Schedule,
	stats *allocator.Statistics,
	logger *zap.Logger,
) (string, error) {
	if cfg.Publish.SpreadsheetID == "" {
		return "", fmt.Errorf("publish.spreadsheetID is not configured")
	}

	tab, err := publisher.PublishSchedule(cfg.Publish.SpreadsheetID, schedule, stats)
	if err != nil {
		return "", fmt.Errorf("failed to publish schedule: %w", err)
	}

	logger.Debug("Schedule published", zap.String("tab", tab))
	return tab, nil
}
