// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func TestNewHTTPServerAdapter_BadAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
	}{
		{name: "empty", address: ""},
		{name: "spaces only", address: "   "},
		{name: "no host", address: "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: tt.address}, logger.Nop())
			assert.Error(t, err)
		})
	}
}

func TestNewHTTPServerAdapter_SchemeInferred(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "localhost:8080"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", a.(*httpServerAdapter).client.BaseURL)
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/register", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "alice", user.Username)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "User registered"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.User{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Empty(t, a.Token(), "registration must not set a token")
}

func TestRegister_Duplicate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "User already exists"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.User{Username: "alice", Password: "secret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "User already exists")
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAdapterLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.LoginResponse{Message: "Login successful", Token: "signed-jwt"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), models.User{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "signed-jwt", token)
	assert.Equal(t, "signed-jwt", a.Token())
}

func TestAdapterLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "Invalid credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestAdapterLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "Login successful"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Username: "alice", Password: "secret"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no token")
}

// ── AddTask ──────────────────────────────────────────────────────────────────

func TestAdapterAddTask_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tasks/add", r.URL.Path)
		assert.Equal(t, "Bearer signed-jwt", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "Task added successfully"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("signed-jwt")
	err := a.AddTask(context.Background(), models.Task{Title: "buy milk"})

	require.NoError(t, err)
}

func TestAdapterAddTask_Unauthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "Access denied"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.AddTask(context.Background(), models.Task{Title: "buy milk"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── ListTasks ────────────────────────────────────────────────────────────────

func TestAdapterListTasks_Success(t *testing.T) {
	want := []models.Task{
		{ID: 1, Title: "buy milk"},
		{ID: 2, Title: "walk the dog", Completed: true},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/tasks", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("signed-jwt")
	got, err := a.ListTasks(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "buy milk", got[0].Title)
	assert.True(t, got[1].Completed)
}

func TestAdapterListTasks_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("signed-jwt")
	_, err := a.ListTasks(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode task list response")
}

// ── UpdateTask ───────────────────────────────────────────────────────────────

func TestAdapterUpdateTask_Success(t *testing.T) {
	completed := true

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/tasks/42", r.URL.Path)

		var update models.TaskUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
		require.NotNil(t, update.Completed)
		assert.True(t, *update.Completed)
		assert.Nil(t, update.Title)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "Task updated successfully"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("signed-jwt")
	err := a.UpdateTask(context.Background(), 42, models.TaskUpdate{Completed: &completed})

	require.NoError(t, err)
}

func TestAdapterUpdateTask_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "Task not found or not authorized"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("signed-jwt")
	err := a.UpdateTask(context.Background(), 42, models.TaskUpdate{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Task not found or not authorized")
}

// ── DeleteTask ───────────────────────────────────────────────────────────────

func TestAdapterDeleteTask_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/tasks/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "Task deleted successfully"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("signed-jwt")
	err := a.DeleteTask(context.Background(), 7)

	require.NoError(t, err)
}

func TestAdapterDeleteTask_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "Task not found or not authorized"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("signed-jwt")
	err := a.DeleteTask(context.Background(), 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Token ────────────────────────────────────────────────────────────────────

func TestSetToken_TrimsWhitespace(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8080")
	a.SetToken("  signed-jwt  ")
	assert.Equal(t, "signed-jwt", a.Token())
}
