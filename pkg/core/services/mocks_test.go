package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakechorley/shift-rota/pkg/core/allocator"
	"github.com/jakechorley/shift-rota/pkg/core/model"
	"github.com/jakechorley/shift-rota/pkg/db"
)

// mockStore is an in-memory db.Database for testing
type mockStore struct {
	people   []db.Person
	fixed    []db.FixedAssignment
	runs     []db.ScheduleRun
	entries  map[string][]db.ScheduleEntry
	listErr  error
	runErr   error
	inserted int
}

func newMockStore(people ...db.Person) *mockStore {
	return &mockStore{people: people, entries: map[string][]db.ScheduleEntry{}}
}

func (m *mockStore) ListPeople(ctx context.Context, activeOnly bool) ([]db.Person, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []db.Person
	for _, p := range m.people {
		if activeOnly && !p.Active {
			continue
		}
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b db.Person) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (m *mockStore) GetPersonByName(ctx context.Context, name string) (*db.Person, error) {
	for _, p := range m.people {
		if p.Name == name {
			person := p
			return &person, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, db.ErrPersonNotFound)
}

func (m *mockStore) InsertPerson(ctx context.Context, person *db.Person) error {
	m.people = append(m.people, *person)
	m.inserted++
	return nil
}

func (m *mockStore) UpdatePerson(ctx context.Context, person *db.Person) error {
	for i := range m.people {
		if m.people[i].ID == person.ID {
			m.people[i] = *person
			return nil
		}
	}
	return db.ErrPersonNotFound
}

func (m *mockStore) SetPersonActive(ctx context.Context, id string, active bool) error {
	for i := range m.people {
		if m.people[i].ID == id {
			m.people[i].Active = active
			return nil
		}
	}
	return db.ErrPersonNotFound
}

func (m *mockStore) DeletePerson(ctx context.Context, id string) error {
	for i := range m.people {
		if m.people[i].ID == id {
			m.people = slices.Delete(m.people, i, i+1)
			m.fixed = slices.DeleteFunc(m.fixed, func(fa db.FixedAssignment) bool { return fa.PersonID == id })
			return nil
		}
	}
	return db.ErrPersonNotFound
}

func (m *mockStore) ListFixedAssignments(ctx context.Context, start, end string) ([]db.FixedAssignment, error) {
	var out []db.FixedAssignment
	for _, fa := range m.fixed {
		if fa.Date >= start && fa.Date <= end {
			out = append(out, fa)
		}
	}
	return out, nil
}

func (m *mockStore) InsertFixedAssignment(ctx context.Context, fa *db.FixedAssignment) error {
	for _, existing := range m.fixed {
		if existing.Date == fa.Date && existing.Shift == fa.Shift {
			return db.ErrDuplicateFixedAssignment
		}
	}
	m.fixed = append(m.fixed, *fa)
	return nil
}

func (m *mockStore) DeleteFixedAssignment(ctx context.Context, date, shift string) error {
	for i, fa := range m.fixed {
		if fa.Date == date && fa.Shift == shift {
			m.fixed = slices.Delete(m.fixed, i, i+1)
			return nil
		}
	}
	return db.ErrFixedAssignmentNotFound
}

func (m *mockStore) InsertScheduleRun(ctx context.Context, run *db.ScheduleRun, entries []db.ScheduleEntry) error {
	if m.runErr != nil {
		return m.runErr
	}
	m.runs = append(m.runs, *run)
	m.entries[run.ID] = entries
	return nil
}

func (m *mockStore) GetLatestScheduleRun(ctx context.Context) (*db.ScheduleRun, []db.ScheduleEntry, error) {
	if len(m.runs) == 0 {
		return nil, nil, db.ErrScheduleRunNotFound
	}
	run := m.runs[len(m.runs)-1]
	return &run, m.entries[run.ID], nil
}

func (m *mockStore) Close() {}

var _ db.Database = (*mockStore)(nil)

func storedPerson(name string, eligibility model.Eligibility) db.Person {
	return db.Person{
		ID:          "id-" + name,
		Name:        name,
		Active:      true,
		Eligibility: string(eligibility),
		QuotaMin:    model.DefaultQuotaMin,
		QuotaMax:    model.DefaultQuotaMax,
	}
}

func mustDay(t *testing.T, s string) model.Day {
	t.Helper()
	d, err := model.ParseDay(s)
	require.NoError(t, err)
	return d
}

// everyoneAvailable reports every listed person as present on every day
func everyoneAvailable(names ...string) allocator.AvailabilitySource {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return allocator.AvailabilityFunc(func(model.Day) (map[string]bool, bool) {
		return set, true
	})
}
