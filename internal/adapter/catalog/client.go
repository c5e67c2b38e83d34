package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	activitiesPath     = "/api/v2/whiteboard-activities"
	roleplayAgentsPath = "/api/v2/clasing-ai/roleplay-agents"

	defaultTimeout = 10 * time.Second
)

// Client talks to the remote whiteboard-activities catalog.
//
// Every method degrades failures to a safe default (empty slice, nil, false)
// and logs the cause; callers branch on the result instead of an error.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the catalog rooted at baseURL
// (e.g. http://localhost:9090).
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "catalog"),
	}
}

// NewClientWithHTTP creates a Client with a custom http.Client (for testing).
func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        logger.With("adapter", "catalog"),
	}
}

// ListRaw fetches endpoint (relative to the whiteboard-activities root) and
// returns its records normalized. Failures yield an empty slice.
func (c *Client) ListRaw(ctx context.Context, endpoint string) []map[string]any {
	records, err := c.listRaw(ctx, c.activitiesURL(endpoint))
	if err != nil {
		c.log.ErrorContext(ctx, "catalog list failed",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()),
		)
		return []map[string]any{}
	}
	return records
}

// List fetches endpoint and decodes its normalized records into T.
// Records that do not decode are skipped and logged.
func List[T any](ctx context.Context, c *Client, endpoint string) []T {
	items, skipped := decodeRecords[T](c.ListRaw(ctx, endpoint))
	if skipped > 0 {
		c.log.WarnContext(ctx, "catalog records skipped",
			slog.String("endpoint", endpoint),
			slog.Int("skipped", skipped),
		)
	}
	return items
}

// Create POSTs body to endpoint and reports whether the catalog accepted it.
func (c *Client) Create(ctx context.Context, endpoint string, body any) bool {
	return c.mutate(ctx, http.MethodPost, c.activitiesURL(endpoint), body, endpoint)
}

// Update PATCHes endpoint/id with body.
func (c *Client) Update(ctx context.Context, endpoint, id string, body any) bool {
	return c.mutate(ctx, http.MethodPatch, c.activitiesURL(endpoint, id), body, endpoint)
}

// Remove DELETEs endpoint/id.
func (c *Client) Remove(ctx context.Context, endpoint, id string) bool {
	return c.mutate(ctx, http.MethodDelete, c.activitiesURL(endpoint, id), nil, endpoint)
}

// Ping reports whether the catalog answers at all. Any HTTP response counts.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.activitiesURL("languages"), nil)
	if err != nil {
		return fmt.Errorf("catalog: create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog: ping: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode >= 500 {
		return fmt.Errorf("catalog: ping: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) listRaw(ctx context.Context, reqURL string) ([]map[string]any, error) {
	status, body, err := c.do(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", status)
	}

	var records []map[string]any
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode json array: %w", err)
	}
	return NormalizeCollection(records), nil
}

func (c *Client) mutate(ctx context.Context, method, reqURL string, body any, endpoint string) bool {
	status, _, err := c.do(ctx, method, reqURL, body)
	if err != nil {
		c.log.ErrorContext(ctx, "catalog mutation failed",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()),
		)
		return false
	}
	if status < 200 || status > 299 {
		c.log.ErrorContext(ctx, "catalog mutation rejected",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.Int("status", status),
		)
		return false
	}
	return true
}

// do executes one request and returns the status and full body.
// There are no retries: a failed admin action is retried by the admin.
func (c *Client) do(ctx context.Context, method, reqURL string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	c.log.DebugContext(ctx, "catalog request", slog.String("method", method), slog.String("url", reqURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, data, nil
}

func (c *Client) activitiesURL(segments ...string) string {
	return c.join(activitiesPath, segments...)
}

func (c *Client) agentsURL(segments ...string) string {
	return c.join(roleplayAgentsPath, segments...)
}

func (c *Client) join(root string, segments ...string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteString(root)
	for _, s := range segments {
		for _, part := range strings.Split(strings.Trim(s, "/"), "/") {
			if part == "" {
				continue
			}
			b.WriteByte('/')
			b.WriteString(url.PathEscape(part))
		}
	}
	return b.String()
}
