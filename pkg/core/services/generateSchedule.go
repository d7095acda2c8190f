package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-rota/internal/config"
	"github.com/jakechorley/shift-rota/pkg/core/allocator"
	"github.com/jakechorley/shift-rota/pkg/core/model"
	"github.com/jakechorley/shift-rota/pkg/db"
)

// ErrUnknownPerson is returned when a fixed assignment names someone who is not on the active roster
var ErrUnknownPerson = errors.New("fixed assignment refers to a person who is not on the active roster")

// now is replaced in tests
var now = time.Now

// GenerateScheduleStore defines the database operations needed for generating a schedule
type GenerateScheduleStore interface {
	ListPeople(ctx context.Context, activeOnly bool) ([]db.Person, error)
	ListFixedAssignments(ctx context.Context, start, end string) ([]db.FixedAssignment, error)
	InsertScheduleRun(ctx context.Context, run *db.ScheduleRun, entries []db.ScheduleEntry) error
}

// GenerateScheduleResult contains the engine outcome and, unless dry-run, the persisted run ID
type GenerateScheduleResult struct {
	RunID   string
	Start   model.Day
	End     model.Day
	Fixed   []allocator.FixedAssignment
	Outcome *allocator.AllocationOutcome
	DryRun  bool
}

// GenerateSchedule builds the roster and fixed assignments for [start, end], runs
// the engine and persists the result as a new schedule run.
// If dryRun is true, nothing is written to the database.
func GenerateSchedule(
	ctx context.Context,
	database GenerateScheduleStore,
	availability allocator.AvailabilitySource,
	cfg *config.Config,
	logger *zap.Logger,
	start, end model.Day,
	dryRun bool,
) (*GenerateScheduleResult, error) {
	logger.Debug("Starting generateSchedule",
		zap.String("start", start.String()),
		zap.String("end", end.String()),
		zap.Bool("dry_run", dryRun))

	if end.Before(start) {
		return nil, fmt.Errorf("%w: start %s is after end %s", allocator.ErrInvalidRange, start, end)
	}

	// Step 1: Roster
	logger.Debug("Fetching active people")
	people, err := database.ListPeople(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch people: %w", err)
	}
	roster, err := toEngineRoster(people)
	if err != nil {
		return nil, fmt.Errorf("invalid person record: %w", err)
	}
	logger.Debug("Loaded roster", zap.Int("count", len(roster)))

	// Step 2: Fixed assignments, stored entries first, then recurring rules
	stored, err := database.ListFixedAssignments(ctx, start.String(), end.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fixed assignments: %w", err)
	}
	fixed, err := toEngineFixed(stored)
	if err != nil {
		return nil, err
	}

	recurring, err := ExpandFixedRules(cfg.FixedRules, start, end)
	if err != nil {
		return nil, err
	}
	fixed = mergeFixed(fixed, recurring, logger)

	if err := checkFixedPeople(fixed, roster); err != nil {
		return nil, err
	}
	logger.Debug("Loaded fixed assignments",
		zap.Int("stored", len(stored)),
		zap.Int("recurring", len(recurring)),
		zap.Int("total", len(fixed)))

	// Step 3: Run the engine
	outcome, err := allocator.Allocate(ctx, allocator.AllocationConfig{
		Start:        start,
		End:          end,
		Roster:       roster,
		Fixed:        fixed,
		Availability: availability,
		Criteria:     cfg.CriteriaRules().Build(),
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to allocate schedule: %w", err)
	}

	for _, w := range outcome.ValidationWarnings {
		logger.Info("Rule relaxed", zap.String("warning", w.String()))
	}

	result := &GenerateScheduleResult{
		Start:   start,
		End:     end,
		Fixed:   fixed,
		Outcome: outcome,
		DryRun:  dryRun,
	}

	if dryRun {
		logger.Info("Dry run: schedule not saved",
			zap.Int("uncovered", len(outcome.UncoveredCells)),
			zap.Int("relaxed", len(outcome.ValidationWarnings)))
		return result, nil
	}

	// Step 4: Persist
	run := &db.ScheduleRun{
		ID:          uuid.New().String(),
		Start:       start.String(),
		End:         end.String(),
		GeneratedAt: now().UTC().Format(db.GeneratedAtLayout),
	}
	entries := scheduleEntries(run.ID, outcome.Schedule, func() string { return uuid.New().String() })

	if err := database.InsertScheduleRun(ctx, run, entries); err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}
	result.RunID = run.ID

	logger.Info("Schedule generated",
		zap.String("run_id", run.ID),
		zap.Int("days", outcome.Schedule.TotalDays()),
		zap.Int("uncovered", len(outcome.UncoveredCells)),
		zap.Int("relaxed", len(outcome.ValidationWarnings)))

	return result, nil
}

// ExpandFixedRules lists the fixed assignments produced by the recurring rules
// inside [start, end]. Each rule's recurrence is anchored at start.
func ExpandFixedRules(rules []config.FixedRule, start, end model.Day) ([]allocator.FixedAssignment, error) {
	var fixed []allocator.FixedAssignment
	for i, r := range rules {
		rule, err := rrule.StrToRRule(r.RRule)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rrule for fixedRules[%d]: %w", i, err)
		}
		shift, err := model.ParseShift(r.Shift)
		if err != nil {
			return nil, fmt.Errorf("invalid shift for fixedRules[%d]: %w", i, err)
		}

		rule.DTStart(start.Time())
		for _, t := range rule.Between(start.Time(), end.Time(), true) {
			fixed = append(fixed, allocator.FixedAssignment{
				Day:        model.NewDay(t),
				Shift:      shift,
				PersonName: r.Person,
			})
		}
	}
	return fixed, nil
}

// mergeFixed adds the recurring assignments whose cell is not already taken.
// Earlier entries win; each dropped entry is logged.
func mergeFixed(base, extra []allocator.FixedAssignment, logger *zap.Logger) []allocator.FixedAssignment {
	type cell struct {
		day   model.Day
		shift model.Shift
	}

	taken := make(map[cell]string, len(base)+len(extra))
	merged := make([]allocator.FixedAssignment, 0, len(base)+len(extra))
	for _, list := range [][]allocator.FixedAssignment{base, extra} {
		for _, fa := range list {
			key := cell{fa.Day, fa.Shift}
			if holder, ok := taken[key]; ok {
				logger.Warn("Ignoring conflicting fixed assignment",
					zap.String("date", fa.Day.String()),
					zap.String("shift", string(fa.Shift)),
					zap.String("person", fa.PersonName),
					zap.String("kept", holder))
				continue
			}
			taken[key] = fa.PersonName
			merged = append(merged, fa)
		}
	}
	return merged
}

// checkFixedPeople ensures every fixed assignment names an active roster member
func checkFixedPeople(fixed []allocator.FixedAssignment, roster []allocator.Person) error {
	names := make(map[string]bool, len(roster))
	for _, p := range roster {
		names[p.Name] = true
	}
	for _, fa := range fixed {
		if !names[fa.PersonName] {
			return fmt.Errorf("%w: %q on %s %s", ErrUnknownPerson, fa.PersonName, fa.Day, fa.Shift)
		}
	}
	return nil
}

// LatestScheduleStore defines the database operations needed for reading back a schedule
type LatestScheduleStore interface {
	GetLatestScheduleRun(ctx context.Context) (*db.ScheduleRun, []db.ScheduleEntry, error)
}

// LatestSchedule loads the most recently generated schedule and its statistics
func LatestSchedule(ctx context.Context, database LatestScheduleStore, logger *zap.Logger) (*db.ScheduleRun, *allocator.Schedule, *allocator.Statistics, error) {
	run, entries, err := database.GetLatestScheduleRun(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch latest schedule: %w", err)
	}

	schedule, err := scheduleFromEntries(run, entries)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to rebuild schedule %s: %w", run.ID, err)
	}

	logger.Debug("Loaded latest schedule",
		zap.String("run_id", run.ID),
		zap.String("generated_at", run.GeneratedAt),
		zap.Int("entries", len(entries)))

	return run, schedule, allocator.Summarize(schedule), nil
}
