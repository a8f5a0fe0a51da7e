// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-task-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-task-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request with the provided credentials.
	// Registration does not issue a token; a subsequent Login is required.
	// Returns an error if the request fails or the server responds with a
	// non-2xx status.
	Register(ctx context.Context, user models.User) error

	// Login authenticates the user with the server. On success it stores the
	// returned bearer token via SetToken and returns it. Returns an error if
	// the request fails or the server responds with a non-2xx status.
	Login(ctx context.Context, user models.User) (string, error)

	// AddTask creates a new task for the authenticated user. Ownership is
	// derived from the bearer token server-side. Requires a valid token.
	AddTask(ctx context.Context, task models.Task) error

	// ListTasks fetches all tasks belonging to the authenticated user,
	// ordered by creation. Requires a valid token.
	ListTasks(ctx context.Context) ([]models.Task, error)

	// UpdateTask applies a partial update to the task identified by taskID.
	// Returns [ErrNotFound] (wrapped) if the task does not exist or belongs
	// to another user. Requires a valid token.
	UpdateTask(ctx context.Context, taskID int64, update models.TaskUpdate) error

	// DeleteTask removes the task identified by taskID. Returns [ErrNotFound]
	// (wrapped) if the task does not exist or belongs to another user.
	// Requires a valid token.
	DeleteTask(ctx context.Context, taskID int64) error
}
