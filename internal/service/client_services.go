package service

import (
	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

// ClientServices groups the client-side services behind a single value.
type ClientServices struct {
	AuthService ClientAuthService
	TaskService ClientTaskService
	RefreshJob  ClientRefreshJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(localStore, serverAdapter, logger)
	taskSvc := NewClientTaskService(localStore, serverAdapter, logger)

	return &ClientServices{
		AuthService: authSvc,
		TaskService: taskSvc,
		RefreshJob:  NewClientRefreshJob(taskSvc),
	}
}
