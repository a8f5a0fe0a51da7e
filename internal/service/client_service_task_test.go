// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientTaskSvc(t *testing.T, ctrl *gomock.Controller) (ClientTaskService, *mock.MockServerAdapter, *mock.MockLocalTaskRepository) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockTasks := mock.NewMockLocalTaskRepository(ctrl)

	storages := &store.ClientStorages{TaskRepository: mockTasks}
	svc := NewClientTaskService(storages, mockAdapter, logger.Nop())

	return svc, mockAdapter, mockTasks
}

// ── Add ──────────────────────────────────────────────────────────────────────

func TestClientAdd_SuccessRefreshesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter, mockTasks := newTestClientTaskSvc(t, ctrl)

	task := models.Task{Title: "buy milk"}
	fetched := []models.Task{{ID: 1, Title: "buy milk"}}

	mockAdapter.EXPECT().AddTask(gomock.Any(), task).Return(nil)
	mockAdapter.EXPECT().ListTasks(gomock.Any()).Return(fetched, nil)
	mockTasks.EXPECT().ReplaceTasks(gomock.Any(), fetched).Return(nil)

	require.NoError(t, svc.Add(context.Background(), task))
}

func TestClientAdd_EmptyTitleMapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter, _ := newTestClientTaskSvc(t, ctrl)

	transportErr := errWithSentinel(adapter.ErrBadRequest, "Title is required")
	mockAdapter.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(transportErr)

	err := svc.Add(context.Background(), models.Task{})
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)
}

func TestClientAdd_RefreshFailureDoesNotFailAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter, _ := newTestClientTaskSvc(t, ctrl)

	mockAdapter.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(nil)
	mockAdapter.EXPECT().ListTasks(gomock.Any()).Return(nil, errors.New("connection refused"))

	require.NoError(t, svc.Add(context.Background(), models.Task{Title: "x"}))
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestClientList_ServerWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter, mockTasks := newTestClientTaskSvc(t, ctrl)

	fresh := []models.Task{{ID: 1, Title: "fresh"}}
	mockAdapter.EXPECT().ListTasks(gomock.Any()).Return(fresh, nil)
	mockTasks.EXPECT().ReplaceTasks(gomock.Any(), fresh).Return(nil)

	tasks, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, tasks)
}

func TestClientList_FallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter, mockTasks := newTestClientTaskSvc(t, ctrl)

	cached := []models.Task{{ID: 1, Title: "stale but present"}}
	mockAdapter.EXPECT().ListTasks(gomock.Any()).Return(nil, errors.New("connection refused"))
	mockTasks.EXPECT().GetTasks(gomock.Any()).Return(cached, nil)

	tasks, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, tasks)
}

func TestClientList_AuthErrorSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter, _ := newTestClientTaskSvc(t, ctrl)

	transportErr := errWithSentinel(adapter.ErrUnauthorized, "Access denied")
	mockAdapter.EXPECT().ListTasks(gomock.Any()).Return(nil, transportErr)

	// expired credentials must not silently degrade to stale data
	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestClientList_ServerErrorSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter, _ := newTestClientTaskSvc(t, ctrl)

	transportErr := errWithSentinel(adapter.ErrInternalServerError, "Internal server error")
	mockAdapter.EXPECT().ListTasks(gomock.Any()).Return(nil, transportErr)

	// a reachable but failing server is not a connectivity problem; the
	// cache must not mask it
	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

func TestClientList_CacheWriteFailureStillReturnsTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter, mockTasks := newTestClientTaskSvc(t, ctrl)

	fresh := []models.Task{{ID: 1, Title: "fresh"}}
	mockAdapter.EXPECT().ListTasks(gomock.Any()).Return(fresh, nil)
	mockTasks.EXPECT().ReplaceTasks(gomock.Any(), fresh).Return(errors.New("disk full"))

	tasks, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, tasks)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestClientUpdate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter, mockTasks := newTestClientTaskSvc(t, ctrl)

	completed := true
	update := models.TaskUpdate{Completed: &completed}

	mockAdapter.EXPECT().UpdateTask(gomock.Any(), int64(42), update).Return(nil)
	mockTasks.EXPECT().UpdateTask(gomock.Any(), int64(42), update).Return(nil)

	require.NoError(t, svc.Update(context.Background(), 42, update))
}

func TestClientUpdate_NotFoundMapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter, _ := newTestClientTaskSvc(t, ctrl)

	transportErr := errWithSentinel(adapter.ErrNotFound, "Task not found or not authorized")
	mockAdapter.EXPECT().UpdateTask(gomock.Any(), int64(99), gomock.Any()).Return(transportErr)

	err := svc.Update(context.Background(), 99, models.TaskUpdate{})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestClientUpdate_StaleCacheMissIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter, mockTasks := newTestClientTaskSvc(t, ctrl)

	mockAdapter.EXPECT().UpdateTask(gomock.Any(), int64(42), gomock.Any()).Return(nil)
	mockTasks.EXPECT().UpdateTask(gomock.Any(), int64(42), gomock.Any()).Return(store.ErrTaskNotFound)

	// the server accepted the update; a cache miss only means the cache is stale
	require.NoError(t, svc.Update(context.Background(), 42, models.TaskUpdate{}))
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestClientDelete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter, mockTasks := newTestClientTaskSvc(t, ctrl)

	mockAdapter.EXPECT().DeleteTask(gomock.Any(), int64(7)).Return(nil)
	mockTasks.EXPECT().DeleteTask(gomock.Any(), int64(7)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 7))
}

func TestClientDelete_NotFoundMapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter, _ := newTestClientTaskSvc(t, ctrl)

	transportErr := errWithSentinel(adapter.ErrNotFound, "Task not found or not authorized")
	mockAdapter.EXPECT().DeleteTask(gomock.Any(), int64(99)).Return(transportErr)

	err := svc.Delete(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestClientRefresh_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter, mockTasks := newTestClientTaskSvc(t, ctrl)

	fresh := []models.Task{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	mockAdapter.EXPECT().ListTasks(gomock.Any()).Return(fresh, nil)
	mockTasks.EXPECT().ReplaceTasks(gomock.Any(), fresh).Return(nil)

	require.NoError(t, svc.Refresh(context.Background()))
}

func TestClientRefresh_CacheError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter, mockTasks := newTestClientTaskSvc(t, ctrl)

	mockAdapter.EXPECT().ListTasks(gomock.Any()).Return([]models.Task{}, nil)
	mockTasks.EXPECT().ReplaceTasks(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	err := svc.Refresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "replace task cache")
}
