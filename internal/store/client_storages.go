package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the client service layer.
type ClientStorages struct {
	// TaskRepository is the SQLite-backed local task cache.
	TaskRepository LocalTaskRepository

	// SessionRepository persists the login session between runs.
	SessionRepository LocalSessionRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It opens (and on first use creates) the SQLite
// cache file specified in cfg.DB.DSN, bootstraps the schema, and wires the
// local repositories.
//
// Returns an error if the database connection cannot be established or the
// schema cannot be created.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		TaskRepository:    NewLocalTaskRepository(db, logger),
		SessionRepository: NewLocalSessionRepository(db, logger),
	}, nil
}
