package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-rota/pkg/core/model"
	"github.com/jakechorley/shift-rota/pkg/db"
)

// FixedAssignmentsStore defines the database operations needed for managing fixed assignments
type FixedAssignmentsStore interface {
	GetPersonByName(ctx context.Context, name string) (*db.Person, error)
	ListFixedAssignments(ctx context.Context, start, end string) ([]db.FixedAssignment, error)
	InsertFixedAssignment(ctx context.Context, fa *db.FixedAssignment) error
	DeleteFixedAssignment(ctx context.Context, date, shift string) error
}

// AddFixedAssignment pins a person to (day, shift).
// Fixed assignments bypass eligibility and activity; both are only logged.
func AddFixedAssignment(
	ctx context.Context,
	database FixedAssignmentsStore,
	logger *zap.Logger,
	day model.Day,
	shift model.Shift,
	name string,
) (*db.FixedAssignment, error) {
	person, err := database.GetPersonByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if eligibility, err := model.ParseEligibility(person.Eligibility); err == nil && !eligibility.Allows(shift) {
		logger.Warn("Fixing person on a shift they are not eligible for",
			zap.String("person", person.Name),
			zap.String("shift", string(shift)))
	}
	if !person.Active {
		logger.Warn("Fixing an inactive person; generate will reject it until they are reactivated",
			zap.String("person", person.Name))
	}

	fa := &db.FixedAssignment{
		ID:         uuid.New().String(),
		PersonID:   person.ID,
		PersonName: person.Name,
		Date:       day.String(),
		Shift:      string(shift),
	}
	if err := database.InsertFixedAssignment(ctx, fa); err != nil {
		return nil, err
	}

	logger.Info("Fixed assignment added",
		zap.String("date", fa.Date),
		zap.String("shift", fa.Shift),
		zap.String("person", fa.PersonName))

	return fa, nil
}

// RemoveFixedAssignment unpins (day, shift)
func RemoveFixedAssignment(ctx context.Context, database FixedAssignmentsStore, logger *zap.Logger, day model.Day, shift model.Shift) error {
	if err := database.DeleteFixedAssignment(ctx, day.String(), string(shift)); err != nil {
		return err
	}

	logger.Info("Fixed assignment removed",
		zap.String("date", day.String()),
		zap.String("shift", string(shift)))
	return nil
}

// ListFixedAssignments returns the fixed assignments in [start, end]
func ListFixedAssignments(ctx context.Context, database FixedAssignmentsStore, logger *zap.Logger, start, end model.Day) ([]db.FixedAssignment, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("start %s is after end %s", start, end)
	}

	assignments, err := database.ListFixedAssignments(ctx, start.String(), end.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fixed assignments: %w", err)
	}

	logger.Debug("Listed fixed assignments", zap.Int("count", len(assignments)))
	return assignments, nil
}
