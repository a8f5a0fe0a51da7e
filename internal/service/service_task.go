package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskService is the concrete implementation of TaskService. All domain rules
// about task content live in the validation wrapper; this type is a thin
// delegation layer over the repository so that ownership scoping stays in
// exactly one place — the SQL WHERE clauses.
type taskService struct {
	taskRepository store.TaskRepository

	logger *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

func (t *taskService) AddTask(ctx context.Context, task models.Task) (models.Task, error) {
	return t.taskRepository.CreateTask(ctx, task)
}

func (t *taskService) GetTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	return t.taskRepository.GetTasks(ctx, userID)
}

func (t *taskService) UpdateTask(ctx context.Context, userID int64, taskID int64, update models.TaskUpdate) (models.Task, error) {
	return t.taskRepository.UpdateTask(ctx, userID, taskID, update)
}

func (t *taskService) DeleteTask(ctx context.Context, userID int64, taskID int64) error {
	return t.taskRepository.DeleteTask(ctx, userID, taskID)
}
