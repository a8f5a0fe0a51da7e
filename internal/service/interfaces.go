package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// TaskService exposes all task operations available to an authenticated user.
// The userID argument always comes from the verified token, never from the
// request body.
type TaskService interface {
	AddTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTasks(ctx context.Context, userID int64) ([]models.Task, error)
	UpdateTask(ctx context.Context, userID int64, taskID int64, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, userID int64, taskID int64) error
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TaskServiceWrapper defines middleware composition for TaskService.
// Implementations wrap an existing TaskService to add behavior such as
// logging or validating.
type TaskServiceWrapper interface {
	Wrap(TaskService) TaskService // returns a decorated TaskService applying additional behavior
}
