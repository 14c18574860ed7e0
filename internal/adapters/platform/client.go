package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/bizassist-cli/internal/domain"
	"github.com/bnema/bizassist-cli/internal/platform/logger"
	"github.com/bnema/bizassist-cli/internal/ports"
)

const (
	maxResponseBytes      = 1 << 20
	defaultRequestTimeout = 30 * time.Second

	healthScorePath     = "/health/score"
	carbonEstimatePath  = "/carbon/estimate"
	recommendationsPath = "/recommendations"
	askPath             = "/ai/ask"
)

// Client talks to the business platform API. It serves module data, the
// platform-wide metrics and the assistant endpoint.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Credentials    ports.Credentials
	Log            *logger.Logger
	UserAgent      string
}

var (
	_ ports.ModuleSource   = (*Client)(nil)
	_ ports.PlatformSource = (*Client)(nil)
	_ ports.Assistant      = (*Client)(nil)
)

// StatusError is returned for any non-2xx response other than 401.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Detail)
}

type askRequest struct {
	Question   string                  `json:"question"`
	ModuleData domain.AggregateContext `json:"module_data"`
}

type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

func (c *Client) Status(ctx context.Context, module domain.ModuleID) (domain.ModuleStatus, error) {
	if !module.Valid() {
		return domain.ModuleStatus{}, fmt.Errorf("%w: %q", domain.ErrUnknownModule, module)
	}

	var status domain.ModuleStatus
	if err := c.getJSON(ctx, module.StatusPath(), &status); err != nil {
		return domain.ModuleStatus{}, fmt.Errorf("%s status: %w", module, err)
	}
	return status, nil
}

func (c *Client) Summary(ctx context.Context, module domain.ModuleID) (domain.Snapshot, error) {
	if !module.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownModule, module)
	}

	snapshot, err := c.getSnapshot(ctx, module.SummaryPath())
	if err != nil {
		return nil, fmt.Errorf("%s summary: %w", module, err)
	}
	return snapshot, nil
}

func (c *Client) HealthScore(ctx context.Context) (domain.Snapshot, error) {
	snapshot, err := c.getSnapshot(ctx, healthScorePath)
	if err != nil {
		return nil, fmt.Errorf("health score: %w", err)
	}
	return snapshot, nil
}

func (c *Client) CarbonEstimate(ctx context.Context) (domain.Snapshot, error) {
	snapshot, err := c.getSnapshot(ctx, carbonEstimatePath)
	if err != nil {
		return nil, fmt.Errorf("carbon estimate: %w", err)
	}
	return snapshot, nil
}

func (c *Client) Recommendations(ctx context.Context) (domain.Snapshot, error) {
	snapshot, err := c.getSnapshot(ctx, recommendationsPath)
	if err != nil {
		return nil, fmt.Errorf("recommendations: %w", err)
	}
	return snapshot, nil
}

// Ask sends one question with the aggregate context. A rejected credential
// surfaces as domain.ErrSessionExpired.
func (c *Client) Ask(ctx context.Context, question string, moduleData domain.AggregateContext) (domain.Answer, error) {
	if moduleData.Recommendations == nil {
		moduleData.Recommendations = domain.EmptyList()
	}

	body, err := json.Marshal(askRequest{Question: question, ModuleData: moduleData})
	if err != nil {
		return domain.Answer{}, fmt.Errorf("encode ask request: %w", err)
	}

	raw, err := c.do(ctx, http.MethodPost, askPath, body)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("ask assistant: %w", err)
	}

	var answer domain.Answer
	if err := json.Unmarshal(raw, &answer); err != nil {
		return domain.Answer{}, fmt.Errorf("decode ask response: %w", err)
	}
	return answer, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) getSnapshot(ctx context.Context, path string) (domain.Snapshot, error) {
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	snapshot, err := domain.NormalizeSnapshot(raw)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return snapshot, nil
}

func (c *Client) do(ctx context.Context, method string, path string, body []byte) ([]byte, error) {
	endpoint, err := BuildAPIURL(c.BaseURL, path)
	if err != nil {
		return nil, err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if c.Credentials != nil {
		if token := c.Credentials.Bearer(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	started := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.Log.OrNop().Debug("platform request", "method", method, "path", path, "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidate(ctx)
		return nil, fmt.Errorf("%w: status %d", domain.ErrSessionExpired, resp.StatusCode)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode, Detail: decodeDetail(raw)}
	}

	return raw, nil
}

func (c *Client) invalidate(ctx context.Context) {
	if c.Credentials == nil {
		return
	}
	// The request context may already be done; invalidation must still run.
	if err := c.Credentials.Invalidate(context.WithoutCancel(ctx)); err != nil {
		c.Log.OrNop().Warn("invalidate session after 401 failed", "error", err)
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := c.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// decodeDetail extracts the backend's "detail" field, which is either a
// string or a validation error list.
func decodeDetail(raw []byte) string {
	var payload errorResponse
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Detail) == 0 {
		return strings.TrimSpace(string(raw))
	}

	var text string
	if err := json.Unmarshal(payload.Detail, &text); err == nil {
		return text
	}
	return string(payload.Detail)
}

// BuildAPIURL joins an absolute http(s) base URL with an API path.
func BuildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	parsed.Path = strings.TrimRight(parsed.Path, "/") + "/" + strings.TrimLeft(path, "/")
	return parsed.String(), nil
}
