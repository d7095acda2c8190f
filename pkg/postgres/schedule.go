package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/shift-rota/pkg/db"
)

// InsertScheduleRun inserts a run and all of its entries in one transaction
func (d *DB) InsertScheduleRun(ctx context.Context, run *db.ScheduleRun, entries []db.ScheduleEntry) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO schedule_run (id, start_date, end_date, generated_at)
		VALUES ($1, $2, $3, $4)
	`, run.ID, run.Start, run.End, run.GeneratedAt)
	if err != nil {
		return fmt.Errorf("failed to insert schedule run: %w", err)
	}

	for _, e := range entries {
		var personName *string
		if e.PersonName != "" {
			personName = &e.PersonName
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO schedule_entry (id, run_id, shift_date, shift, person_name, fixed)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, e.ID, run.ID, e.Date, e.Shift, personName, e.Fixed)
		if err != nil {
			return fmt.Errorf("failed to insert schedule entry: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetLatestScheduleRun retrieves the most recently generated run and its entries
func (d *DB) GetLatestScheduleRun(ctx context.Context) (*db.ScheduleRun, []db.ScheduleEntry, error) {
	var run db.ScheduleRun
	var start, end, generatedAt time.Time
	err := d.pool.QueryRow(ctx, `
		SELECT id, start_date, end_date, generated_at
		FROM schedule_run
		ORDER BY generated_at DESC
		LIMIT 1
	`).Scan(&run.ID, &start, &end, &generatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, db.ErrScheduleRunNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query schedule run: %w", err)
	}
	run.Start = start.Format("2006-01-02")
	run.End = end.Format("2006-01-02")
	run.GeneratedAt = generatedAt.UTC().Format(db.GeneratedAtLayout)

	rows, err := d.pool.Query(ctx, `
		SELECT id, shift_date, shift, person_name, fixed
		FROM schedule_entry
		WHERE run_id = $1
		ORDER BY shift_date, CASE shift WHEN 'Morning' THEN 0 ELSE 1 END
	`, run.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []db.ScheduleEntry
	for rows.Next() {
		e := db.ScheduleEntry{RunID: run.ID}
		var date time.Time
		var personName *string
		if err := rows.Scan(&e.ID, &date, &e.Shift, &personName, &e.Fixed); err != nil {
			return nil, nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		e.Date = date.Format("2006-01-02")
		if personName != nil {
			e.PersonName = *personName
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating schedule entries: %w", err)
	}

	return &run, entries, nil
}
