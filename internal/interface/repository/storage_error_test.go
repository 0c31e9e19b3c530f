package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"loadboard-service/internal/domain/apperrors"
	"loadboard-service/internal/domain/repository"
)

// setupBrokenDB returns a gorm handle whose every query fails, to exercise the
// storage-error mapping without a real server.
func setupBrokenDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(`SELECT version\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("PostgreSQL 15.0"))
	mock.ExpectQuery(".*").WillReturnError(errors.New("connection refused"))
	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestLoadSearch_StorageFailure(t *testing.T) {
	repo := NewGormLoadRepository(setupBrokenDB(t))

	_, err := repo.Search(ctx(), repository.LoadFilter{Now: time.Now().UTC()})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCallFindAll_StorageFailure(t *testing.T) {
	repo := NewGormCallRepository(setupBrokenDB(t))

	_, err := repo.FindAll(ctx())
	assert.ErrorIs(t, err, apperrors.ErrStorage)
}
