// db.go
package db

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/seancorc/AugmentedChords/internal/utils"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

var (
	Database *sql.DB
	once     sync.Once
	initErr  error
)

// Init opens the Turso database and prepares the songs table. Safe to call
// more than once; only the first call does work.
func Init() error {
	once.Do(func() {
		env, err := utils.LoadEnv([]string{"TURSO_DATABASE_URL", "TURSO_AUTH_TOKEN"})
		if err != nil {
			initErr = fmt.Errorf("failed to load db env: %w", err)
			return
		}
		url := fmt.Sprintf("%s?authToken=%s", env["TURSO_DATABASE_URL"], env["TURSO_AUTH_TOKEN"])

		Database, initErr = sql.Open("libsql", url)
		if initErr != nil {
			initErr = fmt.Errorf("failed to open db: %w", initErr)
			return
		}

		Database.SetMaxOpenConns(25)
		Database.SetMaxIdleConns(25)
		Database.SetConnMaxLifetime(5 * time.Minute)

		if pingErr := Database.Ping(); pingErr != nil {
			initErr = fmt.Errorf("failed to ping database: %w", pingErr)
			return
		}

		initErr = ensureSchema()
	})

	return initErr
}

// Close closes the database connection safely
func Close() {
	if Database != nil {
		if err := Database.Close(); err != nil {
			log.Printf("error closing database: %v", err)
		}
	}
}
