package db

// Person represents a database person record
type Person struct {
	ID          string `validate:"required"`
	Name        string `validate:"required"`
	Active      bool
	Eligibility string  `validate:"required,oneof=Morning Afternoon Both"`
	QuotaMin    float64 `validate:"min=0,max=100,ltefield=QuotaMax"`
	QuotaMax    float64 `validate:"min=0,max=100"`
}

// FixedAssignment represents a database fixed assignment record.
// PersonName is resolved from the person record on reads.
type FixedAssignment struct {
	ID         string
	PersonID   string
	PersonName string
	Date       string // 2006-01-02
	Shift      string
}

// GeneratedAtLayout is a fixed-width UTC timestamp, so runs order correctly as text
const GeneratedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ScheduleRun represents one persisted generate run
type ScheduleRun struct {
	ID          string
	Start       string
	End         string
	GeneratedAt string // GeneratedAtLayout
}

// ScheduleEntry represents one (date, shift) cell of a persisted run.
// PersonName is empty for uncovered cells.
type ScheduleEntry struct {
	ID         string
	RunID      string
	Date       string
	Shift      string
	PersonName string
	Fixed      bool
}
