package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for user registration and
// authentication against the remote server, plus local session management.
type ClientAuthService interface {
	// Register creates a new account on the server for the given user.
	// Registration does not log the user in; a subsequent Login is required.
	Register(ctx context.Context, user models.User) error

	// Login authenticates the user against the server, stores the issued
	// bearer token on the adapter, and persists the session locally so it
	// survives restarts. Returns the established session.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// RestoreSession loads the locally persisted session (if any) and arms
	// the adapter with its token. Returns [ErrNotLoggedIn] when no session
	// has been stored.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout clears the local session and the adapter token.
	Logout(ctx context.Context) error
}

// ClientTaskService defines the client-side contract for managing tasks.
// Mutating operations go to the server first and update the local cache on
// success; reads fall back to the cache when the server is unreachable.
type ClientTaskService interface {
	// Add creates the task on the server and refreshes the local cache.
	Add(ctx context.Context, task models.Task) error

	// List returns the user's tasks. It prefers a fresh server fetch
	// (updating the cache on success) and falls back to cached tasks when
	// the server cannot be reached.
	List(ctx context.Context) ([]models.Task, error)

	// Update applies a partial update on the server and mirrors it in the
	// cache. Returns [store.ErrTaskNotFound] for a missing or foreign task.
	Update(ctx context.Context, taskID int64, update models.TaskUpdate) error

	// Delete removes the task on the server and from the cache. Returns
	// [store.ErrTaskNotFound] for a missing or foreign task.
	Delete(ctx context.Context, taskID int64) error

	// Refresh force-fetches the task list from the server and replaces the
	// local cache with it.
	Refresh(ctx context.Context) error
}

// ClientRefreshJob defines the contract for a background worker that
// periodically refreshes the local task cache from the server.
type ClientRefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to one minute if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
