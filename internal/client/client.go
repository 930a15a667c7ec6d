// Package client is a typed HTTP client for the health tools REST API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"taafi-health-tools/internal/catalog"
	"taafi-health-tools/internal/models"
)

// envelope mirrors the server's {"success", "data", "error"} response body.
type envelope struct {
	Success  bool            `json:"success"`
	Tracking bool            `json:"tracking"`
	Data     json.RawMessage `json:"data"`
	Error    string          `json:"error"`
}

// APIError is returned when the server answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("health tools API error: %s (status: %d)", e.Message, e.StatusCode)
}

type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func New(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{httpClient: httpClient, logger: logger}
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var result envelope
	req := c.httpClient.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&result)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	if resp.IsError() {
		msg := result.Error
		if msg == "" {
			msg = resp.Status()
		}
		c.logger.Debug("health tools API returned error",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("error", msg),
		)
		return &APIError{StatusCode: resp.StatusCode(), Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(result.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s response: %w", path, err)
	}
	return nil
}

// CallTool runs a calculator by name and decodes its result into out.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]interface{}, out interface{}) error {
	if args == nil {
		args = map[string]interface{}{}
	}
	return c.do(ctx, resty.MethodPost, "/api/v1/tools/"+name, args, out)
}

func (c *Client) Tools(ctx context.Context) ([]catalog.Tool, error) {
	var tools []catalog.Tool
	if err := c.do(ctx, resty.MethodGet, "/api/v1/tools", nil, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

func (c *Client) Recommend(ctx context.Context, text string, limit int) ([]catalog.Tool, error) {
	var tools []catalog.Tool
	body := map[string]interface{}{"text": text, "limit": limit}
	if err := c.do(ctx, resty.MethodPost, "/api/v1/tools/recommend", body, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

func (c *Client) UsageStats(ctx context.Context) ([]models.ToolUsageStat, error) {
	var stats []models.ToolUsageStat
	if err := c.do(ctx, resty.MethodGet, "/api/v1/usage", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// ExportVaccination downloads the schedule spreadsheet for the given
// vaccination_schedule arguments.
func (c *Client) ExportVaccination(ctx context.Context, args map[string]interface{}) ([]byte, error) {
	var failure envelope
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet").
		SetBody(args).
		SetError(&failure).
		Post("/api/v1/vaccination/export")
	if err != nil {
		return nil, fmt.Errorf("failed to export vaccination schedule: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Message: failure.Error}
	}
	return resp.Body(), nil
}
