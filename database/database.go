package database

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database. A DSN starting with "postgres"
// selects PostgreSQL; anything else (including the empty default) opens an
// embedded SQLite file so the site runs with zero external services.
func Open(databaseURL, sqlitePath string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var (
		db  *gorm.DB
		err error
	)
	if strings.HasPrefix(databaseURL, "postgres") {
		db, err = gorm.Open(postgres.Open(databaseURL), cfg)
	} else {
		path := databaseURL
		if path == "" {
			path = sqlitePath
		}
		db, err = gorm.Open(sqlite.Open(path), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
