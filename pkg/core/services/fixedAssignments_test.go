package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jakechorley/shift-rota/pkg/core/model"
	"github.com/jakechorley/shift-rota/pkg/db"
)

func TestAddFixedAssignment(t *testing.T) {
	store := newMockStore(storedPerson("Ana", model.EligibleBoth))

	fa, err := AddFixedAssignment(context.Background(), store, zap.NewNop(), mustDay(t, "2025-01-06"), model.ShiftMorning, "Ana")
	require.NoError(t, err)

	assert.Equal(t, "id-Ana", fa.PersonID)
	assert.Equal(t, "Ana", fa.PersonName)
	assert.Equal(t, "2025-01-06", fa.Date)
	assert.Equal(t, "Morning", fa.Shift)
	require.Len(t, store.fixed, 1)
}

func TestAddFixedAssignment_UnknownPerson(t *testing.T) {
	store := newMockStore()

	_, err := AddFixedAssignment(context.Background(), store, zap.NewNop(), mustDay(t, "2025-01-06"), model.ShiftMorning, "Ana")
	assert.ErrorIs(t, err, db.ErrPersonNotFound)
	assert.Empty(t, store.fixed)
}

func TestAddFixedAssignment_Duplicate(t *testing.T) {
	store := newMockStore(storedPerson("Ana", model.EligibleBoth), storedPerson("Bruno", model.EligibleBoth))
	day := mustDay(t, "2025-01-06")

	_, err := AddFixedAssignment(context.Background(), store, zap.NewNop(), day, model.ShiftMorning, "Ana")
	require.NoError(t, err)

	_, err = AddFixedAssignment(context.Background(), store, zap.NewNop(), day, model.ShiftMorning, "Bruno")
	assert.ErrorIs(t, err, db.ErrDuplicateFixedAssignment)
}

func TestAddFixedAssignment_WarnsWhenIneligible(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	store := newMockStore(storedPerson("Carla", model.EligibleAfternoonOnly))

	_, err := AddFixedAssignment(context.Background(), store, zap.New(core), mustDay(t, "2025-01-06"), model.ShiftMorning, "Carla")
	require.NoError(t, err, "fixed assignments bypass eligibility")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Fixing person on a shift they are not eligible for", logs.All()[0].Message)
}

func TestRemoveFixedAssignment(t *testing.T) {
	store := newMockStore(storedPerson("Ana", model.EligibleBoth))
	store.fixed = []db.FixedAssignment{
		{ID: "f1", PersonID: "id-Ana", PersonName: "Ana", Date: "2025-01-06", Shift: "Morning"},
	}

	require.NoError(t, RemoveFixedAssignment(context.Background(), store, zap.NewNop(), mustDay(t, "2025-01-06"), model.ShiftMorning))
	assert.Empty(t, store.fixed)

	err := RemoveFixedAssignment(context.Background(), store, zap.NewNop(), mustDay(t, "2025-01-06"), model.ShiftMorning)
	assert.ErrorIs(t, err, db.ErrFixedAssignmentNotFound)
}

func TestListFixedAssignments(t *testing.T) {
	store := newMockStore()
	store.fixed = []db.FixedAssignment{
		{ID: "f1", PersonName: "Ana", Date: "2025-01-05", Shift: "Morning"},
		{ID: "f2", PersonName: "Ana", Date: "2025-01-06", Shift: "Morning"},
		{ID: "f3", PersonName: "Bruno", Date: "2025-01-12", Shift: "Afternoon"},
		{ID: "f4", PersonName: "Bruno", Date: "2025-01-13", Shift: "Afternoon"},
	}

	listed, err := ListFixedAssignments(context.Background(), store, zap.NewNop(), mustDay(t, "2025-01-06"), mustDay(t, "2025-01-12"))
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "f2", listed[0].ID)
	assert.Equal(t, "f3", listed[1].ID)

	_, err = ListFixedAssignments(context.Background(), store, zap.NewNop(), mustDay(t, "2025-01-12"), mustDay(t, "2025-01-06"))
	assert.Error(t, err)
}
