package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/register. Registration does not return a token; the caller must
// Login afterwards. Returns an error if the request fails or the server
// returns a non-2xx status.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/login. On success the bearer token is extracted from the response
// body, stored via SetToken and returned. Returns an error if the request
// fails, the server returns a non-2xx status, or the response carries no
// token.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (string, error) {
	var loginResponse models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&loginResponse).
		Post("/api/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if loginResponse.Token == "" {
		return "", fmt.Errorf("login response carries no token")
	}

	h.SetToken(loginResponse.Token)
	return loginResponse.Token, nil
}

// AddTask implements [ServerAdapter]. It POSTs the task to
// POST /api/tasks/add. The server derives ownership from the bearer token.
// Requires a valid token.
func (h *httpServerAdapter) AddTask(ctx context.Context, task models.Task) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(task).
		Post("/api/tasks/add")
	if err != nil {
		return fmt.Errorf("add task request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListTasks implements [ServerAdapter]. It GETs GET /api/tasks and decodes the
// response into a slice of [models.Task]. Requires a valid token.
func (h *httpServerAdapter) ListTasks(ctx context.Context) ([]models.Task, error) {
	resp, err := h.authedRequest(ctx).Get("/api/tasks")
	if err != nil {
		return nil, fmt.Errorf("list tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err = json.Unmarshal(resp.Body(), &tasks); err != nil {
		return nil, fmt.Errorf("decode task list response: %w", err)
	}

	return tasks, nil
}

// UpdateTask implements [ServerAdapter]. It PUTs the partial update to
// PUT /api/tasks/{id}. Returns [ErrNotFound] (wrapped) on HTTP 404. Requires
// a valid token.
func (h *httpServerAdapter) UpdateTask(ctx context.Context, taskID int64, update models.TaskUpdate) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/api/tasks/" + strconv.FormatInt(taskID, 10))
	if err != nil {
		return fmt.Errorf("update task request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteTask implements [ServerAdapter]. It sends a DELETE request to
// DELETE /api/tasks/{id}. Returns [ErrNotFound] (wrapped) on HTTP 404.
// Requires a valid token.
func (h *httpServerAdapter) DeleteTask(ctx context.Context, taskID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/tasks/" + strconv.FormatInt(taskID, 10))
	if err != nil {
		return fmt.Errorf("delete task request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
