package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hotel_gateway/config"
)

// Client talks to the remote hotel API. The gateway owns no durable state;
// every room, reservation, payment and rating lives behind this client.
type Client struct {
	BaseURL    string
	StorageURL string
	HTTP       *http.Client
}

func New() *Client {
	return &Client{
		BaseURL:    strings.TrimRight(config.Config("UPSTREAM_API_URL"), "/"),
		StorageURL: strings.TrimRight(config.Config("UPSTREAM_STORAGE_URL"), "/"),
		HTTP:       &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError carries the upstream HTTP status so handlers can map it back
// onto their own responses.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream: status %d", e.StatusCode)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// StatusOf maps an upstream error onto a response status; anything that is
// not an APIError counts as the upstream being unreachable.
func StatusOf(err error) int {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}

// ImageURL absolutizes a storage-relative image path.
func (c *Client) ImageURL(path string) string {
	if path == "" || strings.HasPrefix(path, "http") {
		return path
	}
	return c.StorageURL + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("upstream: decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = strings.NewReader(string(raw))
	}
	return c.do(ctx, http.MethodPost, path, token, body, "application/json", out)
}

func readErrorMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
