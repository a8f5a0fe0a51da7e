// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/tui"
	"github.com/MKhiriev/go-task-keeper/models"
)

// App is the interactive client application. It restores or establishes a
// session, keeps the local cache fresh in the background, and hands control
// to the terminal UI until the user exits.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workers config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and a ui")
	}
	return &App{services: services, ui: ui, workers: workers, logger: log}, nil
}

// Run blocks until the user quits. A logout restarts the flow from the
// login screen under a fresh session.
func (a *App) Run() error {
	ctx := context.Background()

	session, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		if !errors.Is(err, service.ErrNotLoggedIn) {
			return fmt.Errorf("restore session: %w", err)
		}
		session, err = a.ui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	return a.runSession(ctx, session)
}

func (a *App) runSession(ctx context.Context, session models.Session) error {
	if err := a.services.TaskService.Refresh(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial refresh failed, working from cache")
	}

	a.services.RefreshJob.Start(ctx, a.workers.RefreshInterval)
	defer a.services.RefreshJob.Stop()

	logout, err := a.ui.MainLoop(ctx, session)
	if err != nil {
		return err
	}
	if logout {
		if logoutErr := a.services.AuthService.Logout(ctx); logoutErr != nil {
			a.logger.Warn().Err(logoutErr).Msg("logout cleanup failed")
		}
		session, err = a.ui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
		return a.runSession(ctx, session)
	}

	return nil
}
