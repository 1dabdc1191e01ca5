package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/davidcortes/horario/internal/task"
)

// Client talks to the task API. It implements task.Source and task.Mutator.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ListRange returns all tasks whose start falls within [from, to).
func (c *Client) ListRange(ctx context.Context, from, to time.Time) ([]*task.Task, error) {
	q := url.Values{}
	q.Set("from", from.Format(time.RFC3339))
	q.Set("to", to.Format(time.RFC3339))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/tasks?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var wire []TaskJSON
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decoding tasks: %w", err)
	}

	tasks := make([]*task.Task, 0, len(wire))
	for _, w := range wire {
		t, err := FromWire(w)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// UpdateTimes issues one PATCH for a completed gesture and returns the
// server's view of the task.
func (c *Client) UpdateTimes(ctx context.Context, id int64, start, end time.Time) (*task.Task, error) {
	body, err := json.Marshal(PatchJSON{
		Start: start.Format(time.RFC3339),
		End:   end.Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding patch: %w", err)
	}

	u := fmt.Sprintf("%s/tasks/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, u, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("patching task %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, task.ErrTaskNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var wire TaskJSON
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decoding task: %w", err)
	}
	return FromWire(wire)
}

// CreateTask posts a new task and fills in its server-assigned ID.
func (c *Client) CreateTask(ctx context.Context, t *task.Task) error {
	body, err := json.Marshal(ToWire(t))
	if err != nil {
		return fmt.Errorf("encoding task: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tasks", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("creating task: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return responseError(resp)
	}

	var wire TaskJSON
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return fmt.Errorf("decoding task: %w", err)
	}
	created, err := FromWire(wire)
	if err != nil {
		return err
	}
	*t = *created
	return nil
}

func responseError(resp *http.Response) error {
	var e ErrorJSON
	if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, e.Error)
	}
	return fmt.Errorf("server returned %d", resp.StatusCode)
}
