package sqlite

import (
	"context"
	"fmt"

	"github.com/jakechorley/shift-rota/pkg/db"
)

// ListFixedAssignments retrieves fixed assignments within [start, end]
func (d *DB) ListFixedAssignments(ctx context.Context, start, end string) ([]db.FixedAssignment, error) {
	var rows []fixedAssignmentRow
	err := d.gorm.WithContext(ctx).
		Preload("Person").
		Where("shift_date BETWEEN ? AND ?", start, end).
		Order("shift_date").
		Order("CASE shift WHEN 'Morning' THEN 0 ELSE 1 END").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed assignments: %w", err)
	}

	assignments := make([]db.FixedAssignment, 0, len(rows))
	for _, r := range rows {
		assignments = append(assignments, db.FixedAssignment{
			ID:         r.ID,
			PersonID:   r.PersonID,
			PersonName: r.Person.Name,
			Date:       r.ShiftDate,
			Shift:      r.Shift,
		})
	}
	return assignments, nil
}

// InsertFixedAssignment inserts a fixed assignment; (date, shift) is unique
func (d *DB) InsertFixedAssignment(ctx context.Context, fa *db.FixedAssignment) error {
	row := fixedAssignmentRow{
		ID:        fa.ID,
		PersonID:  fa.PersonID,
		ShiftDate: fa.Date,
		Shift:     fa.Shift,
	}
	err := d.gorm.WithContext(ctx).Omit("Person").Create(&row).Error
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
	result := d.gorm.WithContext(ctx).Where("shift_date = ? AND shift = ?", date, shift).Delete(&fixedAssignmentRow{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete fixed assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", date, shift, db.ErrFixedAssignmentNotFound)
	}
	return nil
}
