package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// In-memory repositories for end-to-end tests
// ─────────────────────────────────────────────

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]models.User)}
}

func (m *memUserRepo) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Username]; exists {
		return models.User{}, store.ErrLoginAlreadyExists
	}
	m.nextID++
	user.UserID = m.nextID
	user.CreatedAt = time.Now()
	m.users[user.Username] = user
	return user, nil
}

func (m *memUserRepo) FindUserByLogin(ctx context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.users[username]
	if !exists {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

type memTaskRepo struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]models.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[int64]models.Task)}
}

func (m *memTaskRepo) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	task.ID = m.nextID
	task.CreatedAt = time.Now()
	m.tasks[task.ID] = task
	return task, nil
}

func (m *memTaskRepo) GetTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]models.Task, 0)
	for id := int64(1); id <= m.nextID; id++ {
		if task, ok := m.tasks[id]; ok && task.UserID == userID {
			result = append(result, task)
		}
	}
	return result, nil
}

func (m *memTaskRepo) UpdateTask(ctx context.Context, userID int64, taskID int64, update models.TaskUpdate) (models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[taskID]
	if !ok || task.UserID != userID {
		return models.Task{}, store.ErrTaskNotFound
	}
	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Completed != nil {
		task.Completed = *update.Completed
	}
	m.tasks[taskID] = task
	return task, nil
}

func (m *memTaskRepo) DeleteTask(ctx context.Context, userID int64, taskID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[taskID]
	if !ok || task.UserID != userID {
		return store.ErrTaskNotFound
	}
	delete(m.tasks, taskID)
	return nil
}

// newTestServer assembles the full stack — real services, real middleware,
// real router — on top of in-memory repositories.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.App{
		TokenSignKey:  "e2e-sign-key",
		TokenIssuer:   "e2e-issuer",
		TokenDuration: time.Hour,
	}
	log := logger.Nop()

	svcs := &service.Services{
		AuthService: service.NewAuthService(newMemUserRepo(), cfg, log),
		TaskService: service.NewTaskValidationService().Wrap(service.NewTaskService(newMemTaskRepo(), log)),
	}

	h := NewHandler(svcs, log)
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path, body, token string) (*http.Response, map[string]any) {
	t.Helper()
	return doJSON(t, srv, http.MethodPost, path, body, token)
}

func doJSON(t *testing.T, srv *httptest.Server, method, path, body, token string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func registerAndLogin(t *testing.T, srv *httptest.Server, username, password string) string {
	t.Helper()

	resp, _ := postJSON(t, srv, "/api/register", `{"username":"`+username+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := postJSON(t, srv, "/api/login", `{"username":"`+username+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	token, ok := body["token"].(string)
	require.True(t, ok, "login response must carry a token")
	require.NotEmpty(t, token)
	return token
}

// ─────────────────────────────────────────────
// End-to-end flows
// ─────────────────────────────────────────────

func TestE2E_RegisterLoginLifecycle(t *testing.T) {
	srv := newTestServer(t)

	// register
	resp, body := postJSON(t, srv, "/api/register", `{"username":"john","password":"secret"}`, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "User registered", body["message"])
	assert.NotContains(t, body, "token", "registration must not issue a token")

	// duplicate registration
	resp, body = postJSON(t, srv, "/api/register", `{"username":"john","password":"other"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists", body["message"])

	// login
	resp, body = postJSON(t, srv, "/api/login", `{"username":"john","password":"secret"}`, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Login successful", body["message"])
	assert.NotEmpty(t, body["token"])

	// login with a wrong password
	resp, body = postJSON(t, srv, "/api/login", `{"username":"john","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestE2E_LoginFailuresIndistinguishable(t *testing.T) {
	srv := newTestServer(t)

	resp, body := postJSON(t, srv, "/api/register", `{"username":"john","password":"secret"}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "User registered", body["message"])

	// an unknown username and a wrong password must be byte-identical on
	// the wire so account existence cannot be probed
	rawLogin := func(payload string) (int, string) {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/login", bytes.NewReader([]byte(payload)))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		r, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer func() { _ = r.Body.Close() }()

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		return r.StatusCode, string(raw)
	}

	unknownCode, unknownBody := rawLogin(`{"username":"nobody","password":"secret"}`)
	wrongCode, wrongBody := rawLogin(`{"username":"john","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, unknownCode)
	assert.Equal(t, unknownCode, wrongCode)
	assert.Equal(t, unknownBody, wrongBody, "unknown username and wrong password must share one response body")
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, unknownBody)
}

func TestE2E_TaskLifecycle(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "alice", "hunter2")

	// add
	resp, body := postJSON(t, srv, "/api/tasks/add", `{"title":"buy milk","description":"2 liters"}`, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Task added successfully", body["message"])

	// list
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/tasks", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	listResp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer listResp.Body.Close()

	var tasks []models.Task
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "buy milk", tasks[0].Title)
	assert.False(t, tasks[0].Completed)
	taskID := tasks[0].ID

	// toggle completed
	resp, body = doJSON(t, srv, http.MethodPut, "/api/tasks/1", `{"completed":true}`, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Task updated successfully", body["message"])

	// delete
	resp, body = doJSON(t, srv, http.MethodDelete, "/api/tasks/1", "", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Task deleted successfully", body["message"])

	// deleting again: gone
	resp, body = doJSON(t, srv, http.MethodDelete, "/api/tasks/1", "", token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Task not found or not authorized", body["message"])

	_ = taskID
}

func TestE2E_OwnershipIsolation(t *testing.T) {
	srv := newTestServer(t)
	aliceToken := registerAndLogin(t, srv, "alice", "hunter2")
	bobToken := registerAndLogin(t, srv, "bob", "password1")

	// alice creates a task
	resp, _ := postJSON(t, srv, "/api/tasks/add", `{"title":"alice's task"}`, aliceToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// bob sees an empty list
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/tasks", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+bobToken)
	listResp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer listResp.Body.Close()

	var bobTasks []models.Task
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&bobTasks))
	assert.Empty(t, bobTasks, "a user must never see foreign tasks")

	// bob cannot delete alice's task, and the response does not reveal
	// whether the task exists
	resp, body := doJSON(t, srv, http.MethodDelete, "/api/tasks/1", "", bobToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Task not found or not authorized", body["message"])

	// bob cannot flip alice's task either
	resp, body = doJSON(t, srv, http.MethodPut, "/api/tasks/1", `{"completed":true}`, bobToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Task not found or not authorized", body["message"])

	// alice's task is untouched
	req, err = http.NewRequest(http.MethodGet, srv.URL+"/api/tasks", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+aliceToken)
	aliceResp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer aliceResp.Body.Close()

	var aliceTasks []models.Task
	require.NoError(t, json.NewDecoder(aliceResp.Body).Decode(&aliceTasks))
	require.Len(t, aliceTasks, 1)
	assert.False(t, aliceTasks[0].Completed)
}

func TestE2E_ProtectedRoutesRejectAnonymous(t *testing.T) {
	srv := newTestServer(t)

	// no header at all
	resp, body := doJSON(t, srv, http.MethodGet, "/api/tasks", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Access denied", body["message"])

	// garbage token
	resp, body = doJSON(t, srv, http.MethodGet, "/api/tasks", "", "garbage")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid token", body["message"])
}

func TestE2E_ExpiredTokenRejected(t *testing.T) {
	// a server whose tokens die instantly
	cfg := config.App{
		TokenSignKey:  "e2e-sign-key",
		TokenIssuer:   "e2e-issuer",
		TokenDuration: time.Nanosecond,
	}
	log := logger.Nop()
	svcs := &service.Services{
		AuthService: service.NewAuthService(newMemUserRepo(), cfg, log),
		TaskService: service.NewTaskValidationService().Wrap(service.NewTaskService(newMemTaskRepo(), log)),
	}
	srv := httptest.NewServer(NewHandler(svcs, log).Init())
	defer srv.Close()

	resp, _ := postJSON(t, srv, "/api/register", `{"username":"john","password":"secret"}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := postJSON(t, srv, "/api/login", `{"username":"john","password":"secret"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := body["token"].(string)

	time.Sleep(10 * time.Millisecond)

	resp, body = doJSON(t, srv, http.MethodGet, "/api/tasks", "", token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid token", body["message"])
}

func TestE2E_TitleValidation(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "alice", "hunter2")

	resp, body := postJSON(t, srv, "/api/tasks/add", `{"description":"no title"}`, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Title is required", body["message"])

	// nothing was saved
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/tasks", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	listResp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer listResp.Body.Close()

	var tasks []models.Task
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&tasks))
	assert.Empty(t, tasks)
}
