// Package client implements the HTTP contract of the remote task service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	charmLog "github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Andryss/ToDoOps/internal/domain"
)

// DefaultBaseURL is used when neither flag, env, nor config overrides the
// service location.
const DefaultBaseURL = "http://localhost:8080/api/v1"

// ErrNotFound marks failures for task ids the service does not know.
var ErrNotFound = errors.New("task not found")

// APIError is the service error envelope decoded from non-success responses.
type APIError struct {
	Code         int    `json:"code"`
	Message      string `json:"message"`
	HumanMessage string `json:"humanMessage"`
}

// Error surfaces the most human-readable message the envelope carries.
func (e *APIError) Error() string {
	if strings.TrimSpace(e.HumanMessage) != "" {
		return e.HumanMessage
	}
	if strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	return "request failed"
}

// statusRequest is the PATCH body for status changes.
type statusRequest struct {
	Status domain.Status `json:"status"`
}

// Client talks to the remote task service. All operations are context-bound;
// the client imposes no timeouts of its own.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *charmLog.Logger
}

// Option defines a functional option for client configuration.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// WithLogger attaches a request logger.
func WithLogger(logger *charmLog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.log = logger
		}
	}
}

// New constructs a client for the given base URL (for example
// "http://localhost:8080/api/v1").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpc:   &http.Client{},
		log:     charmLog.New(io.Discard),
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// ListTasks fetches one page of the task collection.
func (c *Client) ListTasks(ctx context.Context, page, size int) (domain.TaskPage, error) {
	var out domain.TaskPage
	path := fmt.Sprintf("/tasks?page=%d&size=%d", page, size)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return domain.TaskPage{}, err
	}
	return out, nil
}

// GetTask fetches a single task by id. Unknown ids fail with an error
// wrapping ErrNotFound.
func (c *Client) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	var out domain.Task
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil, &out); err != nil {
		return domain.Task{}, err
	}
	return out, nil
}

// CreateTask creates a task; the service assigns id, NEW status, and
// created_at.
func (c *Client) CreateTask(ctx context.Context, in domain.TaskInput) (domain.Task, error) {
	var out domain.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", in, &out); err != nil {
		return domain.Task{}, err
	}
	return out, nil
}

// UpdateTask replaces the three mutable content fields of a task. Status is
// not touched.
func (c *Client) UpdateTask(ctx context.Context, id int64, in domain.TaskInput) (domain.Task, error) {
	var out domain.Task
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), in, &out); err != nil {
		return domain.Task{}, err
	}
	return out, nil
}

// ChangeTaskStatus moves a task to the given status. The service enforces the
// forward-only transition rules.
func (c *Client) ChangeTaskStatus(ctx context.Context, id int64, status domain.Status) (domain.Task, error) {
	var out domain.Task
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%d/status", id), statusRequest{Status: status}, &out); err != nil {
		return domain.Task{}, err
	}
	return out, nil
}

// DeleteTask removes a task. Unknown ids fail with an error wrapping
// ErrNotFound.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}

// do issues one request and decodes either the success payload or the error
// envelope. Empty bodies are tolerated in both directions.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn("task service request failed", "method", method, "path", path, "request_id", requestID, "err", err)
		return fmt.Errorf("call task service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	c.log.Debug("task service request complete", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp, payload)
	}
	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// decodeError converts a non-success response into the most descriptive error
// available. A missing or unparseable envelope still yields a readable
// fallback built from the HTTP status line.
func (c *Client) decodeError(resp *http.Response, payload []byte) error {
	apiErr := &APIError{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, apiErr); err != nil {
			apiErr = &APIError{}
		}
	}
	if apiErr.Code == 0 {
		apiErr.Code = resp.StatusCode
	}
	if strings.TrimSpace(apiErr.HumanMessage) == "" && strings.TrimSpace(apiErr.Message) == "" {
		apiErr.HumanMessage = strings.TrimSpace(resp.Status)
	}
	if resp.StatusCode == http.StatusNotFound || apiErr.Message == "task.not_found" {
		return fmt.Errorf("%s: %w", apiErr.Error(), ErrNotFound)
	}
	return apiErr
}
