package smoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient wraps http.Client with the service routes.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

func (c *HTTPClient) do(ctx context.Context, method, target string, body any) (int, []byte, error) {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		r = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+target, r)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, data, nil
}

// Health performs GET /healthz.
func (c *HTTPClient) Health(ctx context.Context) (int, error) {
	status, _, err := c.do(ctx, http.MethodGet, "/healthz", nil)
	return status, err
}

// Activities performs GET /activities.
func (c *HTTPClient) Activities(ctx context.Context) (map[string]Activity, error) {
	status, data, err := c.do(ctx, http.MethodGet, "/activities", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: GET /activities returned %d", ErrUnexpectedStatus, status)
	}
	var catalog map[string]Activity
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return catalog, nil
}

// Signup performs POST /activities/{name}/signup.
func (c *HTTPClient) Signup(ctx context.Context, activity, email, token string) (int, Response, error) {
	target := "/activities/" + url.PathEscape(activity) + "/signup?email=" + url.QueryEscape(email)
	return c.message(ctx, http.MethodPost, target, map[string]string{"recaptcha_token": token})
}

// Remove performs DELETE /activities/{name}/participants.
func (c *HTTPClient) Remove(ctx context.Context, activity, email string) (int, Response, error) {
	target := "/activities/" + url.PathEscape(activity) + "/participants?email=" + url.QueryEscape(email)
	return c.message(ctx, http.MethodDelete, target, nil)
}

func (c *HTTPClient) message(ctx context.Context, method, target string, body any) (int, Response, error) {
	var out Response
	status, data, err := c.do(ctx, method, target, body)
	if err != nil {
		return status, out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return status, out, fmt.Errorf("failed to decode response: %w", err)
	}
	return status, out, nil
}
