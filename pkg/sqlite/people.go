package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jakechorley/shift-rota/pkg/db"
)

func toPerson(r personRow) db.Person {
	return db.Person{
		ID:          r.ID,
		Name:        r.Name,
		Active:      r.Active,
		Eligibility: r.Eligibility,
		QuotaMin:    r.QuotaMin,
		QuotaMax:    r.QuotaMax,
	}
}

// ListPeople retrieves people ordered by name
func (d *DB) ListPeople(ctx context.Context, activeOnly bool) ([]db.Person, error) {
	query := d.gorm.WithContext(ctx).Order("name")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var rows []personRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}

	people := make([]db.Person, 0, len(rows))
	for _, r := range rows {
		people = append(people, toPerson(r))
	}
	return people, nil
}

// GetPersonByName retrieves a single person
func (d *DB) GetPersonByName(ctx context.Context, name string) (*db.Person, error) {
	var row personRow
	err := d.gorm.WithContext(ctx).Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%q: %w", name, db.ErrPersonNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query person: %w", err)
	}
	p := toPerson(row)
	return &p, nil
}

// InsertPerson inserts a new person record
func (d *DB) InsertPerson(ctx context.Context, person *db.Person) error {
	if err := db.ValidatePerson(person); err != nil {
		return err
	}

	row := personRow{
		ID:          person.ID,
		Name:        person.Name,
		Active:      person.Active,
		Eligibility: person.Eligibility,
		QuotaMin:    person.QuotaMin,
		QuotaMax:    person.QuotaMax,
	}
	err := d.gorm.WithContext(ctx).Create(&row).Error
	if isUniqueViolation(err) {
		return fmt.Errorf("%q: %w", person.Name, db.ErrDuplicatePerson)
	}
	if err != nil {
		return fmt.Errorf("failed to insert person: %w", err)
	}
	return nil
}

// UpdatePerson overwrites name, eligibility and quota of an existing person
func (d *DB) UpdatePerson(ctx context.Context, person *db.Person) error {
	if err := db.ValidatePerson(person); err != nil {
		return err
	}

	result := d.gorm.WithContext(ctx).Model(&personRow{}).Where("id = ?", person.ID).Updates(map[string]any{
		"name":        person.Name,
		"eligibility": person.Eligibility,
		"quota_min":   person.QuotaMin,
		"quota_max":   person.QuotaMax,
	})
	if isUniqueViolation(result.Error) {
		return fmt.Errorf("%q: %w", person.Name, db.ErrDuplicatePerson)
	}
	if result.Error != nil {
		return fmt.Errorf("failed to update person: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return db.ErrPersonNotFound
	}
	return nil
}

// SetPersonActive sets the active flag of a person
func (d *DB) SetPersonActive(ctx context.Context, id string, active bool) error {
	result := d.gorm.WithContext(ctx).Model(&personRow{}).Where("id = ?", id).Update("active", active)
	if result.Error != nil {
		return fmt.Errorf("failed to set person active: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return db.ErrPersonNotFound
	}
	return nil
}

// DeletePerson deletes a person together with their fixed assignments
func (d *DB) DeletePerson(ctx context.Context, id string) error {
	return d.gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("person_id = ?", id).Delete(&fixedAssignmentRow{}).Error; err != nil {
			return fmt.Errorf("failed to delete fixed assignments: %w", err)
		}

		result := tx.Where("id = ?", id).Delete(&personRow{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete person: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return db.ErrPersonNotFound
		}
		return nil
	})
}
