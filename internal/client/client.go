// Package client は生徒用 REST API の小さなクライアントです
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go_5_vocab_drill/internal/model"

	"github.com/google/uuid"
)

// APIError はサーバーが返したエラーレスポンス
type APIError struct {
	StatusCode int
	Detail     model.ErrorDetail
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.StatusCode, e.Detail.Code, e.Detail.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	token      string
}

// New は baseURL (例: http://localhost:8080/api/v1) 向けのクライアントを作ります
func New(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

// SetToken はログイン済みのアクセストークンを設定します
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) StudentLogin(ctx context.Context, tenantID uuid.UUID, account, password string) (*model.LoginResponse, error) {
	req := &model.StudentLoginRequest{Account: account, Password: password, TenantID: tenantID}
	var resp model.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/student/login", req, &resp); err != nil {
		return nil, err
	}
	c.token = resp.AccessToken
	return &resp, nil
}

func (c *Client) ListPlans(ctx context.Context) ([]*model.PlanSummary, error) {
	var resp struct {
		Data []*model.PlanSummary `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/plans", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) GenerateTask(ctx context.Context, bookID uint) (*model.GenerateTaskResponse, error) {
	var resp model.GenerateTaskResponse
	if err := c.do(ctx, http.MethodPost, "/tasks/generate", &model.GenerateTaskRequest{BookID: bookID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateTask(ctx context.Context, taskID uint, req *model.UpdateTaskRequest) (*model.LearningTask, error) {
	var task model.LearningTask
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d/update", taskID), req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) SubmitResult(ctx context.Context, req *model.SubmitResultRequest) error {
	return c.do(ctx, http.MethodPost, "/practice/submit", req, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("client: build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	c.logger.Debug("API call", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp model.APIErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
			apiErr.Detail = errResp.Error
		}
		return apiErr
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode %s %s: %w", method, path, err)
	}
	return nil
}
