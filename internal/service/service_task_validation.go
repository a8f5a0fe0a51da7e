package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// TaskValidationService decorates a TaskService with input validation.
// Requests that fail validation never reach the inner service or the
// database.
type TaskValidationService struct {
	inner     TaskService
	validator validators.Validator
}

func NewTaskValidationService() TaskServiceWrapper {
	return &TaskValidationService{
		validator: validators.NewTaskValidator(),
	}
}

// Wrap returns a TaskService that validates every request before delegating
// to inner.
func (v *TaskValidationService) Wrap(inner TaskService) TaskService {
	return &TaskValidationService{
		inner:     inner,
		validator: v.validator,
	}
}

func (v *TaskValidationService) AddTask(ctx context.Context, task models.Task) (models.Task, error) {
	if err := v.validator.Validate(ctx, task); err != nil {
		return models.Task{}, fmt.Errorf("task validation before saving: %w", err)
	}

	return v.inner.AddTask(ctx, task)
}

func (v *TaskValidationService) GetTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	if userID <= 0 {
		return nil, validators.ErrInvalidUserID
	}

	return v.inner.GetTasks(ctx, userID)
}

func (v *TaskValidationService) UpdateTask(ctx context.Context, userID int64, taskID int64, update models.TaskUpdate) (models.Task, error) {
	if userID <= 0 {
		return models.Task{}, validators.ErrInvalidUserID
	}
	if taskID <= 0 {
		return models.Task{}, validators.ErrInvalidTaskID
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Task{}, fmt.Errorf("task validation before updating: %w", err)
	}

	return v.inner.UpdateTask(ctx, userID, taskID, update)
}

func (v *TaskValidationService) DeleteTask(ctx context.Context, userID int64, taskID int64) error {
	if userID <= 0 {
		return validators.ErrInvalidUserID
	}
	if taskID <= 0 {
		return validators.ErrInvalidTaskID
	}

	return v.inner.DeleteTask(ctx, userID, taskID)
}
