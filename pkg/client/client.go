package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client talks to the evaluation facade.
type Client struct {
	baseURL string
	http    *http.Client
}

type envelope struct {
	Success      bool       `json:"success"`
	Data         *TaskState `json:"data,omitempty"`
	Message      string     `json:"message,omitempty"`
	Error        string     `json:"error,omitempty"`
	EvaluationID string     `json:"evaluationId,omitempty"`
}

// New creates a client for the facade at baseURL. Pass nil to use a default
// HTTP client with a 30 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Submit posts the three extracted documents for evaluation. The server
// replies as soon as the task is accepted; grading continues in the
// background and must be observed via FetchState.
func (c *Client) Submit(ctx context.Context, payload SubmitRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode submit payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/evaluate", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("submit evaluation: %w", err)
	}
	defer resp.Body.Close()

	var reply envelope
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return fmt.Errorf("decode submit response: %w", err)
	}

	if !reply.Success {
		message := reply.Error
		if message == "" {
			message = fmt.Sprintf("server returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("submit rejected: %s", message)
	}

	return nil
}

// FetchState retrieves the current task state for the evaluation id. An id
// the server has never seen reports the idle status.
func (c *Client) FetchState(ctx context.Context, id string) (TaskState, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/evaluation/"+id, nil)
	if err != nil {
		return TaskState{}, fmt.Errorf("build status request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return TaskState{}, fmt.Errorf("fetch status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return TaskState{}, fmt.Errorf("fetch status: server returned status %d", resp.StatusCode)
	}

	var reply envelope
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return TaskState{}, fmt.Errorf("decode status response: %w", err)
	}

	if !reply.Success || reply.Data == nil {
		return TaskState{}, fmt.Errorf("fetch status: malformed response")
	}

	return *reply.Data, nil
}
