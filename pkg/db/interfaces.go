package db

import "context"

// PeopleStore defines the interface for roster database operations
type PeopleStore interface {
	// ListPeople returns people ordered by name
	ListPeople(ctx context.Context, activeOnly bool) ([]Person, error)
	GetPersonByName(ctx context.Context, name string) (*Person, error)
	InsertPerson(ctx context.Context, person *Person) error
	UpdatePerson(ctx context.Context, person *Person) error
	SetPersonActive(ctx context.Context, id string, active bool) error
	// DeletePerson removes the person and their fixed assignments
	DeletePerson(ctx context.Context, id string) error
}

// FixedAssignmentStore defines the interface for fixed assignment database operations
type FixedAssignmentStore interface {
	// ListFixedAssignments returns assignments within [start, end] ordered by date then shift
	ListFixedAssignments(ctx context.Context, start, end string) ([]FixedAssignment, error)
	InsertFixedAssignment(ctx context.Context, fa *FixedAssignment) error
	DeleteFixedAssignment(ctx context.Context, date, shift string) error
}

// ScheduleStore defines the interface for persisted schedule runs
type ScheduleStore interface {
	// InsertScheduleRun stores the run and its entries atomically
	InsertScheduleRun(ctx context.Context, run *ScheduleRun, entries []ScheduleEntry) error
	GetLatestScheduleRun(ctx context.Context) (*ScheduleRun, []ScheduleEntry, error)
}

// Database defines the interface for all database operations.
// Both the SQLite (gorm) store and postgres.DB implement this interface.
type Database interface {
	PeopleStore
	FixedAssignmentStore
	ScheduleStore
	Close()
}
