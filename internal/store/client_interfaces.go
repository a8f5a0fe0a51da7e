package store

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalTaskRepository is the low-level local task cache kept by the client so
// the task list survives restarts and stays readable while the server is
// unreachable.
type LocalTaskRepository interface {
	// ReplaceTasks atomically swaps the cached task list for the given set.
	// Called after every successful fetch from the server.
	ReplaceTasks(ctx context.Context, tasks []models.Task) error

	// GetTasks returns all cached tasks ordered by task id.
	GetTasks(ctx context.Context) ([]models.Task, error)

	// SaveTask stores a single task in the cache.
	SaveTask(ctx context.Context, task models.Task) error

	// UpdateTask applies a partial update to the cached task. Returns
	// [ErrTaskNotFound] if no cached task has the given id.
	UpdateTask(ctx context.Context, taskID int64, update models.TaskUpdate) error

	// DeleteTask removes the cached task. Returns [ErrTaskNotFound] if no
	// cached task has the given id.
	DeleteTask(ctx context.Context, taskID int64) error
}

// LocalSessionRepository persists the single login session of the client.
type LocalSessionRepository interface {
	// SaveSession stores the session, replacing any previous one.
	SaveSession(ctx context.Context, session models.Session) error

	// GetSession returns the stored session or [ErrLocalSessionNotFound]
	// when the user has never logged in (or the session was cleared).
	GetSession(ctx context.Context) (models.Session, error)

	// ClearSession removes the stored session. Clearing an absent session
	// is not an error.
	ClearSession(ctx context.Context) error
}
