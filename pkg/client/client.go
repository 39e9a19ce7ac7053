// Package client is the shopdeck client for the SmartShop platform API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the platform API client. The token, when set, is sent as a
// bearer credential on every request.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client. token may be empty for unauthenticated use.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken installs the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// ClearToken drops the in-memory bearer token.
func (c *Client) ClearToken() {
	c.token = ""
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body any, out any) error {
	return c.doRequest(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &APIError{StatusCode: resp.StatusCode, Detail: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		return parseAPIError(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// parseAPIError maps an error body onto an APIError. The backend answers
// either {"detail": "..."} or a per-field map like {"email": ["taken"]};
// "non_field_errors" counts as a detail, not a field.
func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var payload map[string]json.RawMessage
	if json.Unmarshal(body, &payload) != nil || len(payload) == 0 {
		apiErr.Detail = strings.TrimSpace(string(body))
		if apiErr.Detail == "" {
			apiErr.Detail = http.StatusText(status)
		}
		return apiErr
	}

	for key, raw := range payload {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			if key == "detail" || key == "error" {
				apiErr.Detail = s
			} else {
				apiErr.addField(key, s)
			}
			continue
		}
		var list []string
		if json.Unmarshal(raw, &list) == nil && len(list) > 0 {
			if key == "non_field_errors" {
				apiErr.Detail = list[0]
			} else {
				apiErr.addField(key, list...)
			}
		}
	}

	if apiErr.Detail == "" {
		for field, msgs := range apiErr.Fields {
			if len(msgs) > 0 {
				apiErr.Detail = field + ": " + msgs[0]
				break
			}
		}
	}
	if apiErr.Detail == "" {
		apiErr.Detail = http.StatusText(status)
	}
	return apiErr
}
