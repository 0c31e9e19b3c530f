package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loadboard-service/internal/domain/apperrors"
	"loadboard-service/internal/domain/entity"
	"loadboard-service/internal/domain/repository"
)

func TestCallCreate_GeneratesID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCallRepository(db)

	call := &entity.Call{
		Timestamp:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		CarrierMCNumber: sptr("MC123456"),
	}
	require.NoError(t, repo.Create(ctx(), call))
	assert.NotZero(t, call.ID)
	assert.False(t, call.CreatedAt.IsZero())
}

func TestCallFindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCallRepository(db)

	_, err := repo.FindByID(ctx(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrStorage)
	assert.Contains(t, err.Error(), "42")
}

func TestCallList_NewestFirstWithPaging(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCallRepository(db)

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		call := &entity.Call{Timestamp: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, repo.Create(ctx(), call))
	}

	page, err := repo.List(ctx(), repository.CallPage{Skip: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	// Newest is skipped, then descending.
	assert.True(t, page[0].Timestamp.Equal(base.Add(3*time.Hour)))
	assert.True(t, page[1].Timestamp.Equal(base.Add(2*time.Hour)))
}

func TestCallList_ZeroLimitReturnsNoRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCallRepository(db)

	require.NoError(t, repo.Create(ctx(), &entity.Call{Timestamp: time.Now().UTC()}))

	page, err := repo.List(ctx(), repository.CallPage{Skip: 0, Limit: 0})
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestCallUpdate_PartialPreservesOtherFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCallRepository(db)

	call := &entity.Call{
		Timestamp:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Transcript: sptr("full call transcript"),
		Sentiment:  sptr("neutral"),
		FinalOffer: fptr(950),
	}
	require.NoError(t, repo.Create(ctx(), call))

	updated, err := repo.Update(ctx(), call.ID, repository.CallPatch{"sentiment": "positive"})
	require.NoError(t, err)

	assert.Equal(t, "positive", *updated.Sentiment)
	require.NotNil(t, updated.Transcript)
	assert.Equal(t, "full call transcript", *updated.Transcript)
	require.NotNil(t, updated.FinalOffer)
	assert.Equal(t, 950.0, *updated.FinalOffer)
}

func TestCallUpdate_ExplicitNullClearsColumn(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCallRepository(db)

	call := &entity.Call{
		Timestamp:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		SelectedLoadID: iptr(7),
	}
	require.NoError(t, repo.Create(ctx(), call))

	updated, err := repo.Update(ctx(), call.ID, repository.CallPatch{"selected_load_id": nil})
	require.NoError(t, err)
	assert.Nil(t, updated.SelectedLoadID)
}

func TestCallUpdate_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCallRepository(db)

	_, err := repo.Update(ctx(), 99, repository.CallPatch{"sentiment": "positive"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCallDeleteAll_ReportsCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCallRepository(db)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx(), &entity.Call{Timestamp: time.Now().UTC()}))
	}

	count, err := repo.DeleteAll(ctx())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	remaining, err := repo.FindAll(ctx())
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestCallDeleteAll_EmptyCollection(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCallRepository(db)

	count, err := repo.DeleteAll(ctx())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
