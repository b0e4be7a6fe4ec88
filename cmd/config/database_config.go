package config

import (
	"Cocktail-Companion/internal/utils"
	"log"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var (
	dbOnce sync.Once
	dbConn *gorm.DB
	dbErr  error
)

// ConnectDB opens the embedded database once per process; every caller shares
// the same handle.
func ConnectDB() (*gorm.DB, error) {
	dbOnce.Do(func() {
		path := utils.GetConfig("DB_PATH")
		if path == "" {
			path = "cocktail_database.db"
		}

		dbConn, dbErr = gorm.Open(sqlite.Open(path), &gorm.Config{})
		if dbErr != nil {
			log.Fatalf("Database connection failed: %v", dbErr)
		}
	})
	return dbConn, dbErr
}
