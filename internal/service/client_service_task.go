package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

type clientTaskService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
}

func NewClientTaskService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientTaskService {
	return &clientTaskService{localStore: localStore, adapter: serverAdapter, logger: logger}
}

func (s *clientTaskService) Add(ctx context.Context, task models.Task) error {
	if err := s.adapter.AddTask(ctx, task); err != nil {
		return mapAdapterError(err)
	}

	// the create endpoint returns no task body, so the id is only knowable
	// through a refresh
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientTaskService.Add").Msg("cache refresh after add failed")
	}

	return nil
}

func (s *clientTaskService) List(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.adapter.ListTasks(ctx)
	if err == nil {
		if cacheErr := s.localStore.TaskRepository.ReplaceTasks(ctx, tasks); cacheErr != nil {
			s.logger.Warn().Err(cacheErr).Str("func", "clientTaskService.List").Msg("failed to update task cache")
		}
		return tasks, nil
	}

	// auth and server failures must surface; only connectivity problems
	// justify serving stale data
	if mapped := mapAdapterError(err); mapped != err {
		return nil, mapped
	}
	if errors.Is(err, adapter.ErrInternalServerError) {
		return nil, err
	}

	s.logger.Warn().Err(err).Str("func", "clientTaskService.List").Msg("server unreachable, serving cached tasks")

	cached, cacheErr := s.localStore.TaskRepository.GetTasks(ctx)
	if cacheErr != nil {
		return nil, fmt.Errorf("server unreachable and cache read failed: %w", cacheErr)
	}

	return cached, nil
}

func (s *clientTaskService) Update(ctx context.Context, taskID int64, update models.TaskUpdate) error {
	if err := s.adapter.UpdateTask(ctx, taskID, update); err != nil {
		return mapAdapterError(err)
	}

	if err := s.localStore.TaskRepository.UpdateTask(ctx, taskID, update); err != nil && !errors.Is(err, store.ErrTaskNotFound) {
		s.logger.Warn().Err(err).
			Str("func", "clientTaskService.Update").
			Int64("task_id", taskID).
			Msg("failed to update cached task")
	}

	return nil
}

func (s *clientTaskService) Delete(ctx context.Context, taskID int64) error {
	if err := s.adapter.DeleteTask(ctx, taskID); err != nil {
		return mapAdapterError(err)
	}

	if err := s.localStore.TaskRepository.DeleteTask(ctx, taskID); err != nil && !errors.Is(err, store.ErrTaskNotFound) {
		s.logger.Warn().Err(err).
			Str("func", "clientTaskService.Delete").
			Int64("task_id", taskID).
			Msg("failed to delete cached task")
	}

	return nil
}

func (s *clientTaskService) Refresh(ctx context.Context) error {
	tasks, err := s.adapter.ListTasks(ctx)
	if err != nil {
		return mapAdapterError(err)
	}

	if err = s.localStore.TaskRepository.ReplaceTasks(ctx, tasks); err != nil {
		return fmt.Errorf("replace task cache: %w", err)
	}

	return nil
}
