package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"loadboard-service/internal/domain/entity"
)

// setupTestDB opens an isolated in-memory database with both tables migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A pooled second connection would see a different :memory: database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entity.Load{}, &entity.Call{}))
	return db
}

func ctx() context.Context { return context.Background() }

func sptr(v string) *string   { return &v }
func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
