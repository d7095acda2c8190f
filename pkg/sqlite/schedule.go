package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jakechorley/shift-rota/pkg/db"
)

// InsertScheduleRun inserts a run and all of its entries in one transaction
func (d *DB) InsertScheduleRun(ctx context.Context, run *db.ScheduleRun, entries []db.ScheduleEntry) error {
	return d.gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		runRow := scheduleRunRow{
			ID:          run.ID,
			StartDate:   run.Start,
			EndDate:     run.End,
			GeneratedAt: run.GeneratedAt,
		}
		if err := tx.Create(&runRow).Error; err != nil {
			return fmt.Errorf("failed to insert schedule run: %w", err)
		}

		if len(entries) == 0 {
			return nil
		}

		rows := make([]scheduleEntryRow, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, scheduleEntryRow{
				ID:         e.ID,
				RunID:      run.ID,
				ShiftDate:  e.Date,
				Shift:      e.Shift,
				PersonName: e.PersonName,
				Fixed:      e.Fixed,
			})
		}
		if err := tx.Omit("Run").Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert schedule entries: %w", err)
		}
		return nil
	})
}

// GetLatestScheduleRun retrieves the most recently generated run and its entries
func (d *DB) GetLatestScheduleRun(ctx context.Context) (*db.ScheduleRun, []db.ScheduleEntry, error) {
	var runRow scheduleRunRow
	err := d.gorm.WithContext(ctx).Order("generated_at DESC").Order("rowid DESC").Take(&runRow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, db.ErrScheduleRunNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query schedule run: %w", err)
	}

	var rows []scheduleEntryRow
	err = d.gorm.WithContext(ctx).
		Where("run_id = ?", runRow.ID).
		Order("shift_date").
		Order("CASE shift WHEN 'Morning' THEN 0 ELSE 1 END").
		Find(&rows).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query schedule entries: %w", err)
	}

	run := &db.ScheduleRun{
		ID:          runRow.ID,
		Start:       runRow.StartDate,
		End:         runRow.EndDate,
		GeneratedAt: runRow.GeneratedAt,
	}
	entries := make([]db.ScheduleEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, db.ScheduleEntry{
			ID:         r.ID,
			RunID:      r.RunID,
			Date:       r.ShiftDate,
			Shift:      r.Shift,
			PersonName: r.PersonName,
			Fixed:      r.Fixed,
		})
	}
	return run, entries, nil
}
