package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jakechorley/shift-rota/pkg/db"
)

// personRow represents the person table
type personRow struct {
	ID          string  `gorm:"primaryKey"`
	Name        string  `gorm:"unique;not null"`
	Active      bool    `gorm:"not null"`
	Eligibility string  `gorm:"not null"`
	QuotaMin    float64 `gorm:"not null"`
	QuotaMax    float64 `gorm:"not null"`
}

func (personRow) TableName() string { return "person" }

// fixedAssignmentRow represents the fixed_assignment table
type fixedAssignmentRow struct {
	ID        string    `gorm:"primaryKey"`
	PersonID  string    `gorm:"not null;index"`
	Person    personRow `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
	ShiftDate string    `gorm:"uniqueIndex:idx_fixed_date_shift;not null"`
	Shift     string    `gorm:"uniqueIndex:idx_fixed_date_shift;not null"`
}

func (fixedAssignmentRow) TableName() string { return "fixed_assignment" }

// scheduleRunRow represents the schedule_run table
type scheduleRunRow struct {
	ID          string `gorm:"primaryKey"`
	StartDate   string `gorm:"not null"`
	EndDate     string `gorm:"not null"`
	GeneratedAt string `gorm:"not null;index"`
}

func (scheduleRunRow) TableName() string { return "schedule_run" }

// scheduleEntryRow represents the schedule_entry table
type scheduleEntryRow struct {
	ID         string         `gorm:"primaryKey"`
	RunID      string         `gorm:"uniqueIndex:idx_entry_run_date_shift;not null"`
	Run        scheduleRunRow `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE"`
	ShiftDate  string         `gorm:"uniqueIndex:idx_entry_run_date_shift;not null"`
	Shift      string         `gorm:"uniqueIndex:idx_entry_run_date_shift;not null"`
	PersonName string
	Fixed      bool `gorm:"not null"`
}

func (scheduleEntryRow) TableName() string { return "schedule_entry" }

// DB provides database operations using a local SQLite file
type DB struct {
	gorm *gorm.DB
}

var _ db.Database = (*DB)(nil)

// Open opens (creating if needed) the SQLite database at path and migrates the schema
func Open(path string) (*DB, error) {
	// Foreign keys are off by default in SQLite; cascades depend on them
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&_foreign_keys=on"
	} else {
		dsn += "?_foreign_keys=on"
	}

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := gdb.AutoMigrate(&personRow{}, &fixedAssignmentRow{}, &scheduleRunRow{}, &scheduleEntryRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite database: %w", err)
	}

	return &DB{gorm: gdb}, nil
}

// Close closes the underlying connection
func (d *DB) Close() {
	if sqlDB, err := d.gorm.DB(); err == nil {
		sqlDB.Close()
	}
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || (err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed"))
}
