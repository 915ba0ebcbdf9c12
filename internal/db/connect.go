package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	connectAttempts = 3
	connectBackoff  = 2 * time.Second
)

type openFunc func() (*gorm.DB, error)

// Connect establishes the database connection with bounded retries. It gives up
// after three failed attempts; the caller decides whether that is fatal.
func Connect(dsn string) (*gorm.DB, error) {
	dsn = NormalizeDSN(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is empty, check the environment configuration")
	}
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}
	log.Println("[DB] Using DSN:", MaskDSN(dsn))
	return connect(func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), cfg)
	}, connectBackoff)
}

func connect(open openFunc, backoff time.Duration) (*gorm.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		gdb, err := open()
		if err == nil {
			// liveness probe, the open alone does not prove the server answers
			if pingErr := gdb.Exec("SELECT 1").Error; pingErr == nil {
				return gdb, nil
			} else {
				err = fmt.Errorf("db ping failed: %w", pingErr)
			}
		}
		lastErr = err
		log.Printf("[DB] connection attempt %d/%d failed: %v", attempt, connectAttempts, err)
		if attempt < connectAttempts {
			time.Sleep(backoff)
		}
	}
	return nil, fmt.Errorf("database unreachable after %d attempts: %w", connectAttempts, lastErr)
}
