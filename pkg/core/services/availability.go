package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/shift-rota/internal/config"
	"github.com/jakechorley/shift-rota/pkg/core/model"
	"github.com/jakechorley/shift-rota/pkg/leavetable"
	"github.com/jakechorley/shift-rota/pkg/workbook"
)

// LeaveTableReader reads a leave table from Google Sheets
type LeaveTableReader interface {
	ReadLeaveTable(spreadsheetID, tab string) ([][]string, error)
}

// LoadLeaveTable reads and parses the configured leave table.
// The reader is only used for the sheets source and may be nil otherwise.
func LoadLeaveTable(cfg *config.Config, reader LeaveTableReader, logger *zap.Logger) (*leavetable.Table, error) {
	var (
		rows [][]string
		err  error
	)

	switch cfg.LeaveTable.Source {
	case config.LeaveSourceXLSX:
		logger.Debug("Reading leave table from workbook",
			zap.String("path", cfg.LeaveTable.Path),
			zap.String("sheet", cfg.LeaveTable.Sheet))
		rows, err = workbook.ReadRows(cfg.LeaveTable.Path, cfg.LeaveTable.Sheet)
	case config.LeaveSourceSheets:
		if reader == nil {
			return nil, fmt.Errorf("leave table source is sheets but no sheets client is configured")
		}
		logger.Debug("Reading leave table from Google Sheets", zap.String("tab", cfg.LeaveTable.Tab))
		rows, err = reader.ReadLeaveTable(cfg.LeaveTable.SpreadsheetID, cfg.LeaveTable.Tab)
	default:
		return nil, fmt.Errorf("unknown leave table source %q", cfg.LeaveTable.Source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read leave table: %w", err)
	}

	table, err := leavetable.Parse(rows, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to parse leave table: %w", err)
	}

	logger.Debug("Leave table loaded",
		zap.Int("people", len(table.People())),
		zap.Int("days", len(table.Days())))

	return table, nil
}

// DayAvailability is one day of an availability report
type DayAvailability struct {
	Day       model.Day
	NoData    bool
	Available []string
	Absent    map[string]leavetable.AbsenceCode
}

// DescribeAvailability lists, for each day in [start, end], who of the given
// people is available and why the others are absent
func DescribeAvailability(table *leavetable.Table, people []string, start, end model.Day) []DayAvailability {
	days := model.DaysInRange(start, end)
	report := make([]DayAvailability, 0, len(days))
	for _, day := range days {
		entry := DayAvailability{Day: day, Absent: map[string]leavetable.AbsenceCode{}}

		available, ok := table.AvailablePeople(day)
		if !ok {
			entry.NoData = true
			report = append(report, entry)
			continue
		}

		for _, name := range people {
			if available[name] {
				entry.Available = append(entry.Available, name)
				continue
			}
			entry.Absent[name] = table.Absence(day, name)
		}
		report = append(report, entry)
	}
	return report
}
