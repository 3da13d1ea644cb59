package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anish2905/JobApplicantTracker/internal/common"
	"github.com/Anish2905/JobApplicantTracker/internal/models"
)

func TestApplicationCreate_DefaultsAndList(t *testing.T) {
	m := newTestRepoManager(t)
	seedUser(t, m, "u1")
	s := NewApplicationService(m)
	ctx := context.Background()

	app := &models.Application{ID: "a1", Company: "Acme", Position: "Engineer"}
	require.NoError(t, s.Create(ctx, "u1", app))

	list, err := s.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.StatusWishlist, list[0].Status)
	assert.False(t, list[0].CreatedAt.IsZero())
	assert.False(t, list[0].UpdatedAt.IsZero())
}

func TestApplicationCreate_Validates(t *testing.T) {
	m := newTestRepoManager(t)
	seedUser(t, m, "u1")
	s := NewApplicationService(m)
	ctx := context.Background()

	err := s.Create(ctx, "u1", &models.Application{Company: "Acme", Position: "Engineer"})
	require.ErrorIs(t, err, common.ErrValidation)

	err = s.Create(ctx, "u1", &models.Application{ID: "a1", Position: "Engineer"})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestApplicationUpdate_UnknownIDNotFound(t *testing.T) {
	m := newTestRepoManager(t)
	seedUser(t, m, "u1")
	s := NewApplicationService(m)

	app := &models.Application{ID: "absent", Company: "Acme", Position: "Engineer"}
	require.ErrorIs(t, s.Update(context.Background(), "u1", app), common.ErrNotFound)
}

func TestApplicationDelete_TombstonesAndHidesFromList(t *testing.T) {
	m := newTestRepoManager(t)
	seedUser(t, m, "u1")
	s := NewApplicationService(m)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "u1", &models.Application{ID: "a1", Company: "Acme", Position: "Engineer"}))
	require.NoError(t, s.Delete(ctx, "u1", "a1"))

	list, err := s.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)

	// the row survives as a tombstone so sync can still converge it
	stored, err := m.Applications(m.Conn()).GetByID(ctx, "u1", "a1")
	require.NoError(t, err)
	require.NotNil(t, stored.DeletedAt)

	// second delete finds no active row
	require.ErrorIs(t, s.Delete(ctx, "u1", "a1"), common.ErrNotFound)
}

func TestApplicationDelete_ForeignIDNotFound(t *testing.T) {
	m := newTestRepoManager(t)
	seedUser(t, m, "alice")
	seedUser(t, m, "bob")
	s := NewApplicationService(m)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "alice", &models.Application{ID: "a1", Company: "Acme", Position: "Engineer"}))
	require.ErrorIs(t, s.Delete(ctx, "bob", "a1"), common.ErrNotFound)
}

func TestApplicationRestore_RevivesTombstone(t *testing.T) {
	m := newTestRepoManager(t)
	seedUser(t, m, "u1")
	s := NewApplicationService(m)
	ctx := context.Background()

	app := &models.Application{ID: "a1", Company: "Acme", Position: "Engineer"}
	require.NoError(t, s.Create(ctx, "u1", app))
	require.NoError(t, s.Delete(ctx, "u1", "a1"))

	require.NoError(t, s.Restore(ctx, "u1", &models.Application{ID: "a1", Company: "Acme", Position: "Engineer"}))

	list, err := s.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].DeletedAt)
}

func TestApplicationRestore_ReinsertsAbsentRecord(t *testing.T) {
	m := newTestRepoManager(t)
	seedUser(t, m, "u1")
	s := NewApplicationService(m)
	ctx := context.Background()

	app := &models.Application{ID: "a1", Company: "Acme", Position: "Engineer", Status: "applied"}
	require.NoError(t, s.Restore(ctx, "u1", app))

	list, err := s.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "applied", list[0].Status)
}
