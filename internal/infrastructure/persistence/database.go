package persistence

import (
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"loadboard-service/internal/domain/entity"
)

// NewDatabase opens the relational store named by databaseURL. Postgres DSNs
// (postgres:// or postgresql://, either works) get the postgres driver and
// pooled connections recycled hourly; anything else is treated as a sqlite
// file path so the service runs without infrastructure in dev and test.
func NewDatabase(databaseURL string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite://"))
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetMaxIdleConns(5)
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the loads and calls tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Load{}, &entity.Call{})
}
