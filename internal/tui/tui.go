// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal client: authentication
// screens, the task list, and the task form, built on Bubble Tea.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/models"
)

// ErrUserQuit is returned by [TUI.LoginFlow] when the user leaves the
// program without authenticating.
var ErrUserQuit = errors.New("user quit")

// TUI drives the terminal client. Screens talk to the server exclusively
// through the client services.
type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// LoginFlow runs the welcome/login/register screens until the user
// authenticates or quits. On success it returns the established session.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	model := newLoginAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.err != nil {
		return models.Session{}, result.err
	}
	return result.resultSession, nil
}

// MainLoop runs the task list for an authenticated session. It returns
// logout=true when the user asked to switch accounts rather than exit.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := newMainAppModel(ctx, t.services, session)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
