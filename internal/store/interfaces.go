package store

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, username string) (models.User, error)
}

// TaskRepository persists tasks. Every method that touches an existing task
// takes the owner's userID and scopes the operation to it, so a task can
// never be read or modified through another user's identity.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTasks(ctx context.Context, userID int64) ([]models.Task, error)
	UpdateTask(ctx context.Context, userID int64, taskID int64, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, userID int64, taskID int64) error
}
