package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// ErrLocalSessionNotFound is returned when no login session has been stored
// locally yet.
var ErrLocalSessionNotFound = errors.New("local session not found")

// NewConnectSQLite opens the local SQLite cache database, creating the file
// and the schema on first use. An empty DSN falls back to an in-memory
// database, useful for tests and throwaway runs.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = ":memory:"
	}

	if dsn != ":memory:" {
		if err := createLocalDBFileIfNotExists(dsn); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to local database successfully")

	db := &DB{
		DB:     conn,
		logger: log,
	}

	if err = db.migrateLocal(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

// migrateLocal bootstraps the client cache schema.
func (db *DB) migrateLocal(ctx context.Context) error {
	for _, query := range []string{createLocalTasksTable, createLocalSessionTable} {
		if _, err := db.ExecContext(ctx, query); err != nil {
			db.logger.Err(err).Str("func", "migrateLocal").Msg("error creating local schema")
			return fmt.Errorf("error creating local schema: %w", err)
		}
	}
	return nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}

		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
