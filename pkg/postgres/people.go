package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/shift-rota/pkg/db"
)

// ListPeople retrieves people ordered by name
func (d *DB) ListPeople(ctx context.Context, activeOnly bool) ([]db.Person, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, active, eligibility, quota_min, quota_max
		FROM person
		WHERE active OR NOT $1
		ORDER BY name
	`, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	defer rows.Close()

	var people []db.Person
	for rows.Next() {
		var p db.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Active, &p.Eligibility, &p.QuotaMin, &p.QuotaMax); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating people: %w", err)
	}

	return people, nil
}

// GetPersonByName retrieves a single person
func (d *DB) GetPersonByName(ctx context.Context, name string) (*db.Person, error) {
	var p db.Person
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, active, eligibility, quota_min, quota_max
		FROM person
		WHERE name = $1
	`, name).Scan(&p.ID, &p.Name, &p.Active, &p.Eligibility, &p.QuotaMin, &p.QuotaMax)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%q: %w", name, db.ErrPersonNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query person: %w", err)
	}
	return &p, nil
}

// InsertPerson inserts a new person record
func (d *DB) InsertPerson(ctx context.Context, person *db.Person) error {
	if err := db.ValidatePerson(person); err != nil {
		return err
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO person (id, name, active, eligibility, quota_min, quota_max)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, person.ID, person.Name, person.Active, person.Eligibility, person.QuotaMin, person.QuotaMax)
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

	tag, err := d.pool.Exec(ctx, `
		UPDATE person
		SET name = $2, eligibility = $3, quota_min = $4, quota_max = $5
		WHERE id = $1
	`, person.ID, person.Name, person.Eligibility, person.QuotaMin, person.QuotaMax)
	if isUniqueViolation(err) {
		return fmt.Errorf("%q: %w", person.Name, db.ErrDuplicatePerson)
	}
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrPersonNotFound
	}
	return nil
}

// SetPersonActive sets the active flag of a person
func (d *DB) SetPersonActive(ctx context.Context, id string, active bool) error {
	tag, err := d.pool.Exec(ctx, `UPDATE person SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("failed to set person active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrPersonNotFound
	}
	return nil
}

// DeletePerson deletes a person; fixed assignments cascade
func (d *DB) DeletePerson(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM person WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrPersonNotFound
	}
	return nil
}
