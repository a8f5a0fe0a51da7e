// Package store contains the persistence layer: PostgreSQL-backed
// repositories on the server side and the SQLite cache on the client side.
package store

import "github.com/MKhiriev/go-task-keeper/internal/logger"

// Storages bundles the server-side repositories for injection into the
// service layer.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TaskRepository: NewTaskRepository(db, log),
	}
}
