package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/shift-rota/pkg/db"
)

// ListFixedAssignments retrieves fixed assignments within [start, end]
func (d *DB) ListFixedAssignments(ctx context.Context, start, end string) ([]db.FixedAssignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT f.id, f.person_id, p.name, f.shift_date, f.shift
		FROM fixed_assignment f
		JOIN person p ON p.id = f.person_id
		WHERE f.shift_date BETWEEN $1 AND $2
		ORDER BY f.shift_date, CASE f.shift WHEN 'Morning' THEN 0 ELSE 1 END
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.FixedAssignment
	for rows.Next() {
		var fa db.FixedAssignment
		var date time.Time
		if err := rows.Scan(&fa.ID, &fa.PersonID, &fa.PersonName, &date, &fa.Shift); err != nil {
			return nil, fmt.Errorf("failed to scan fixed assignment: %w", err)
		}
		fa.Date = date.Format("2006-01-02")
		assignments = append(assignments, fa)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fixed assignments: %w", err)
	}

	return assignments, nil
}

// InsertFixedAssignment inserts a fixed assignment; (date, shift) is unique
func (d *DB) InsertFixedAssignment(ctx context.Context, fa *db.FixedAssignment) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO fixed_assignment (id, person_id, shift_date, shift)
		VALUES ($1, $2, $3, $4)
	`, fa.ID, fa.PersonID, fa.Date, fa.Shift)
	if isUniqueViolation(err) {
		return fmt.Errorf("%s %s: %w", fa.Date, fa.Shift, db.ErrDuplicateFixedAssignment)
	}
	if err != nil {
		return fmt.Errorf("failed to insert fixed assignment: %w", err)
	}
	return nil
}

// DeleteFixedAssignment removes the fixed assignment at (date, shift)
func (d *DB) DeleteFixedAssignment(ctx context.Context, date, shift string) error {
	tag, err := d.pool.Exec(ctx, `
		DELETE FROM fixed_assignment WHERE shift_date = $1 AND shift = $2
	`, date, shift)
	if err != nil {
		return fmt.Errorf("failed to delete fixed assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", date, shift, db.ErrFixedAssignmentNotFound)
	}
	return nil
}
