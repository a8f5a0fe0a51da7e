package service

import (
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

// Services bundles the server-side business services for injection into the
// HTTP handlers.
type Services struct {
	AuthService AuthService
	TaskService TaskService
}

// NewServices wires the repositories into services. The TaskService is
// decorated with the validation wrapper so invalid input is rejected before
// it reaches the database.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		TaskService: NewTaskValidationService().Wrap(NewTaskService(storages.TaskRepository, logger)),
	}
}
