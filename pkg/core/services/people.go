package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-rota/internal/config"
	"github.com/jakechorley/shift-rota/pkg/core/model"
	"github.com/jakechorley/shift-rota/pkg/db"
)

// PersonChanges lists the fields to update on a person; nil fields are left unchanged
type PersonChanges struct {
	Name        *string
	Eligibility *model.Eligibility
	QuotaMin    *float64
	QuotaMax    *float64
}

// AddPerson creates an active person. A nil quota uses the configured default.
func AddPerson(
	ctx context.Context,
	database db.PeopleStore,
	cfg *config.Config,
	logger *zap.Logger,
	name string,
	eligibility model.Eligibility,
	quota *config.QuotaConfig,
) (*db.Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name must not be empty")
	}

	if _, err := database.GetPersonByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%q: %w", name, db.ErrDuplicatePerson)
	} else if !errors.Is(err, db.ErrPersonNotFound) {
		return nil, fmt.Errorf("failed to look up person: %w", err)
	}

	q := cfg.Quota()
	if quota != nil {
		q = *quota
	}

	person := &db.Person{
		ID:          uuid.New().String(),
		Name:        name,
		Active:      true,
		Eligibility: string(eligibility),
		QuotaMin:    q.Min,
		QuotaMax:    q.Max,
	}
	if err := db.ValidatePerson(person); err != nil {
		return nil, err
	}

	if err := database.InsertPerson(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to insert person: %w", err)
	}

	logger.Info("Person added",
		zap.String("id", person.ID),
		zap.String("name", person.Name),
		zap.String("eligibility", person.Eligibility))

	return person, nil
}

// EditPerson applies changes to an existing person
func EditPerson(ctx context.Context, database db.PeopleStore, logger *zap.Logger, name string, changes PersonChanges) (*db.Person, error) {
	person, err := database.GetPersonByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if changes.Name != nil {
		newName := strings.TrimSpace(*changes.Name)
		if newName == "" {
			return nil, fmt.Errorf("name must not be empty")
		}
		person.Name = newName
	}
	if changes.Eligibility != nil {
		person.Eligibility = string(*changes.Eligibility)
	}
	if changes.QuotaMin != nil {
		person.QuotaMin = *changes.QuotaMin
	}
	if changes.QuotaMax != nil {
		person.QuotaMax = *changes.QuotaMax
	}

	if err := db.ValidatePerson(person); err != nil {
		return nil, err
	}

	if err := database.UpdatePerson(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	logger.Info("Person updated",
		zap.String("id", person.ID),
		zap.String("old_name", name),
		zap.String("name", person.Name))

	return person, nil
}

// TogglePersonActive flips the active flag of a person and returns the updated record
func TogglePersonActive(ctx context.Context, database db.PeopleStore, logger *zap.Logger, name string) (*db.Person, error) {
	person, err := database.GetPersonByName(ctx, name)
	if err != nil {
		return nil, err
	}

	person.Active = !person.Active
	if err := database.SetPersonActive(ctx, person.ID, person.Active); err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	logger.Info("Person active flag changed",
		zap.String("name", person.Name),
		zap.Bool("active", person.Active))

	return person, nil
}

// RemovePerson deletes a person and their fixed assignments
func RemovePerson(ctx context.Context, database db.PeopleStore, logger *zap.Logger, name string) error {
	person, err := database.GetPersonByName(ctx, name)
	if err != nil {
		return err
	}

	if err := database.DeletePerson(ctx, person.ID); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	logger.Info("Person removed", zap.String("name", person.Name))
	return nil
}

// ListPeople returns people ordered by name
func ListPeople(ctx context.Context, database db.PeopleStore, logger *zap.Logger, includeInactive bool) ([]db.Person, error) {
	people, err := database.ListPeople(ctx, !includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch people: %w", err)
	}

	logger.Debug("Listed people", zap.Int("count", len(people)), zap.Bool("include_inactive", includeInactive))
	return people, nil
}

// SyncPeople adds every name in the leave table that is not yet in the store,
// using the default quota and eligibility for both shifts. Returns the people added.
func SyncPeople(ctx context.Context, database db.PeopleStore, cfg *config.Config, logger *zap.Logger, names []string) ([]db.Person, error) {
	existing, err := database.ListPeople(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch people: %w", err)
	}

	known := make(map[string]bool, len(existing))
	for _, p := range existing {
		known[p.Name] = true
	}

	var added []db.Person
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || known[name] {
			continue
		}

		person, err := AddPerson(ctx, database, cfg, logger, name, model.EligibleBoth, nil)
		if err != nil {
			return added, err
		}
		known[name] = true
		added = append(added, *person)
	}

	logger.Info("People synced from leave table",
		zap.Int("leave_table_names", len(names)),
		zap.Int("added", len(added)))

	return added, nil
}
