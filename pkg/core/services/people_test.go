package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-rota/internal/config"
	"github.com/jakechorley/shift-rota/pkg/core/model"
	"github.com/jakechorley/shift-rota/pkg/db"
)

func ptr[T any](v T) *T {
	return &v
}

func TestAddPerson_UsesDefaultQuota(t *testing.T) {
	store := newMockStore()

	person, err := AddPerson(context.Background(), store, &config.Config{}, zap.NewNop(), "  Ana ", model.EligibleMorningOnly, nil)
	require.NoError(t, err)

	assert.Equal(t, "Ana", person.Name)
	assert.True(t, person.Active)
	assert.Equal(t, "Morning", person.Eligibility)
	assert.Equal(t, model.DefaultQuotaMin, person.QuotaMin)
	assert.Equal(t, model.DefaultQuotaMax, person.QuotaMax)
	assert.NotEmpty(t, person.ID)
	require.Len(t, store.people, 1)
}

func TestAddPerson_ConfiguredAndExplicitQuota(t *testing.T) {
	store := newMockStore()
	cfg := &config.Config{DefaultQuota: &config.QuotaConfig{Min: 5, Max: 15}}

	fromConfig, err := AddPerson(context.Background(), store, cfg, zap.NewNop(), "Ana", model.EligibleBoth, nil)
	require.NoError(t, err)
	assert.Equal(t, 5.0, fromConfig.QuotaMin)
	assert.Equal(t, 15.0, fromConfig.QuotaMax)

	explicit, err := AddPerson(context.Background(), store, cfg, zap.NewNop(), "Bruno", model.EligibleBoth, &config.QuotaConfig{Min: 30, Max: 40})
	require.NoError(t, err)
	assert.Equal(t, 30.0, explicit.QuotaMin)
	assert.Equal(t, 40.0, explicit.QuotaMax)
}

func TestAddPerson_Rejects(t *testing.T) {
	store := newMockStore(storedPerson("Ana", model.EligibleBoth))

	_, err := AddPerson(context.Background(), store, &config.Config{}, zap.NewNop(), "Ana", model.EligibleBoth, nil)
	assert.ErrorIs(t, err, db.ErrDuplicatePerson)

	_, err = AddPerson(context.Background(), store, &config.Config{}, zap.NewNop(), "   ", model.EligibleBoth, nil)
	assert.Error(t, err)

	_, err = AddPerson(context.Background(), store, &config.Config{}, zap.NewNop(), "Bruno", model.EligibleBoth, &config.QuotaConfig{Min: 50, Max: 20})
	assert.Error(t, err, "min above max")

	assert.Equal(t, 0, store.inserted)
}

func TestEditPerson(t *testing.T) {
	store := newMockStore(storedPerson("Ana", model.EligibleBoth))

	person, err := EditPerson(context.Background(), store, zap.NewNop(), "Ana", PersonChanges{
		Name:        ptr("Ana Maria"),
		Eligibility: ptr(model.EligibleAfternoonOnly),
		QuotaMax:    ptr(30.0),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Maria", person.Name)
	assert.Equal(t, "Afternoon", person.Eligibility)
	assert.Equal(t, model.DefaultQuotaMin, person.QuotaMin)
	assert.Equal(t, 30.0, person.QuotaMax)

	_, err = store.GetPersonByName(context.Background(), "Ana")
	assert.ErrorIs(t, err, db.ErrPersonNotFound)
	stored, err := store.GetPersonByName(context.Background(), "Ana Maria")
	require.NoError(t, err)
	assert.Equal(t, "id-Ana", stored.ID)
}

func TestEditPerson_InvalidQuotaIsNotSaved(t *testing.T) {
	store := newMockStore(storedPerson("Ana", model.EligibleBoth))

	_, err := EditPerson(context.Background(), store, zap.NewNop(), "Ana", PersonChanges{QuotaMin: ptr(150.0)})
	require.Error(t, err)

	stored, err := store.GetPersonByName(context.Background(), "Ana")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultQuotaMin, stored.QuotaMin)
}

func TestEditPerson_NotFound(t *testing.T) {
	_, err := EditPerson(context.Background(), newMockStore(), zap.NewNop(), "Ana", PersonChanges{})
	assert.ErrorIs(t, err, db.ErrPersonNotFound)
}

func TestTogglePersonActive(t *testing.T) {
	store := newMockStore(storedPerson("Ana", model.EligibleBoth))

	person, err := TogglePersonActive(context.Background(), store, zap.NewNop(), "Ana")
	require.NoError(t, err)
	assert.False(t, person.Active)
	assert.False(t, store.people[0].Active)

	person, err = TogglePersonActive(context.Background(), store, zap.NewNop(), "Ana")
	require.NoError(t, err)
	assert.True(t, person.Active)
}

func TestRemovePerson_CascadesFixedAssignments(t *testing.T) {
	store := newMockStore(storedPerson("Ana", model.EligibleBoth), storedPerson("Bruno", model.EligibleBoth))
	store.fixed = []db.FixedAssignment{
		{ID: "f1", PersonID: "id-Ana", PersonName: "Ana", Date: "2025-01-06", Shift: "Morning"},
		{ID: "f2", PersonID: "id-Bruno", PersonName: "Bruno", Date: "2025-01-06", Shift: "Afternoon"},
	}

	require.NoError(t, RemovePerson(context.Background(), store, zap.NewNop(), "Ana"))

	require.Len(t, store.people, 1)
	require.Len(t, store.fixed, 1)
	assert.Equal(t, "f2", store.fixed[0].ID)

	err := RemovePerson(context.Background(), store, zap.NewNop(), "Ana")
	assert.ErrorIs(t, err, db.ErrPersonNotFound)
}

func TestListPeople(t *testing.T) {
	inactive := storedPerson("Carla", model.EligibleBoth)
	inactive.Active = false
	store := newMockStore(storedPerson("Bruno", model.EligibleBoth), inactive, storedPerson("Ana", model.EligibleBoth))

	active, err := ListPeople(context.Background(), store, zap.NewNop(), false)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Ana", active[0].Name)
	assert.Equal(t, "Bruno", active[1].Name)

	all, err := ListPeople(context.Background(), store, zap.NewNop(), true)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSyncPeople_AddsOnlyMissingNames(t *testing.T) {
	inactive := storedPerson("Carla", model.EligibleMorningOnly)
	inactive.Active = false
	store := newMockStore(storedPerson("Ana", model.EligibleAfternoonOnly), inactive)

	added, err := SyncPeople(context.Background(), store, &config.Config{}, zap.NewNop(),
		[]string{"Ana", "Bruno", "Carla", " ", "Duarte", "Bruno"})
	require.NoError(t, err)

	require.Len(t, added, 2)
	assert.Equal(t, "Bruno", added[0].Name)
	assert.Equal(t, "Duarte", added[1].Name)
	for _, p := range added {
		assert.Equal(t, "Both", p.Eligibility)
		assert.True(t, p.Active)
		assert.Equal(t, model.DefaultQuotaMin, p.QuotaMin)
		assert.Equal(t, model.DefaultQuotaMax, p.QuotaMax)
	}

	ana, err := store.GetPersonByName(context.Background(), "Ana")
	require.NoError(t, err)
	assert.Equal(t, "Afternoon", ana.Eligibility, "existing people are not modified")
	assert.Len(t, store.people, 4)
}
